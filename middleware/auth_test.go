package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"food-order/models"
	"food-order/repositories"
	"food-order/services"
)

type stubUserRepo struct {
	user *models.User
}

func (r *stubUserRepo) Create(context.Context, *models.User) error { return nil }

func (r *stubUserRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*models.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, repositories.ErrNotFound
}

func newAuthRouter(tokens *services.TokenService, users repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, users), func(c *gin.Context) {
		actor := CurrentUser(c)
		c.JSON(200, gin.H{"actor_id": actor.ID})
	})
	router.GET("/admin", AuthMiddleware(tokens, users), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Minute, time.Hour)
	users := &stubUserRepo{user: &models.User{ID: 1, Active: true}}
	router := newAuthRouter(tokens, users)

	valid, err := tokens.IssueAccessToken(1)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	unknown, err := tokens.IssueAccessToken(99)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "unknown subject", header: "Bearer " + unknown, wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Minute, time.Hour)

	regular := &stubUserRepo{user: &models.User{ID: 1, Active: true}}
	adminRepo := &stubUserRepo{user: &models.User{ID: 2, Active: true, Admin: true}}

	regularToken, _ := tokens.IssueAccessToken(1)
	adminToken, _ := tokens.IssueAccessToken(2)

	t.Run("regular user denied", func(t *testing.T) {
		router := newAuthRouter(tokens, regular)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+regularToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		router := newAuthRouter(tokens, adminRepo)
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})
}
