package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-order/models"
	"food-order/repositories"
)

func newAuthService() (*AuthService, *fakeUserRepo, *TokenService) {
	repo := newFakeUserRepo()
	tokens := NewTokenService("test-secret", 30*time.Minute, 7*24*time.Hour)
	return NewAuthService(repo, tokens, nil), repo, tokens
}

func registerRequest(email string) models.RegisterRequest {
	return models.RegisterRequest{
		Name:     "Maria",
		Email:    email,
		Password: "s3cret",
	}
}

func TestRegister_Defaults(t *testing.T) {
	svc, _, _ := newAuthService()

	user, err := svc.Register(context.Background(), registerRequest("maria@example.com"))
	require.NoError(t, err)

	assert.True(t, user.Active)
	assert.False(t, user.Admin)
	assert.NotEqual(t, "s3cret", user.Password, "plaintext must never be stored")
}

func TestRegister_ExplicitOverrides(t *testing.T) {
	svc, _, _ := newAuthService()

	inactive := false
	isAdmin := true
	req := registerRequest("root@example.com")
	req.Active = &inactive
	req.Admin = &isAdmin

	user, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, user.Active)
	assert.True(t, user.Admin)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest("maria@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest("maria@example.com"))
	assert.ErrorIs(t, err, ErrConflict)
}

// raceUserRepo reports every email as free so the insert itself has to trip
// the uniqueness constraint, as when two registrations race.
type raceUserRepo struct {
	*fakeUserRepo
}

func (r *raceUserRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}

func TestRegister_ConcurrentDuplicate(t *testing.T) {
	repo := &raceUserRepo{fakeUserRepo: newFakeUserRepo()}
	tokens := NewTokenService("test-secret", 30*time.Minute, 7*24*time.Hour)
	svc := NewAuthService(repo, tokens, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest("maria@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest("maria@example.com"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, registerRequest("maria@example.com"))
	require.NoError(t, err)

	pair, err := svc.Login(ctx, "maria@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)

	accessID, err := tokens.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, accessID)

	refreshID, err := tokens.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshID)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest("maria@example.com"))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "maria@example.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "s3cret")

	assert.ErrorIs(t, wrongPassword, ErrNotFound)
	assert.ErrorIs(t, unknownEmail, ErrNotFound)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestRefresh(t *testing.T) {
	svc, _, tokens := newAuthService()

	pair, err := svc.Refresh(7)
	require.NoError(t, err)

	userID, err := tokens.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)

	userID, err = tokens.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}
