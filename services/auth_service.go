package services

import (
	"context"
	"errors"
	"log"

	"food-order/models"
	"food-order/repositories"
	"food-order/utils"
)

type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
	mailer   *EmailService
}

// NewAuthService wires the registration/login flow. mailer may be nil when
// SMTP is not configured.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, mailer *EmailService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
	}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Active:   true,
		Admin:    false,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.Admin != nil {
		user.Admin = *req.Admin
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can pass the lookup above and still hit
		// the unique email constraint on insert.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
			}
		}()
	}

	return user, nil
}

// Login collapses an unknown email and a wrong password into the same
// ErrNotFound so the response never reveals which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	ok, err := utils.VerifyPassword(user.Password, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	return s.issuePair(user.ID)
}

// Refresh issues a fresh token pair for an already-verified actor.
func (s *AuthService) Refresh(userID int) (*models.TokenResponse, error) {
	return s.issuePair(userID)
}

func (s *AuthService) issuePair(userID int) (*models.TokenResponse, error) {
	accessToken, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}
