package controllers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"food-order/middleware"
	"food-order/models"
	"food-order/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register new user
// @Description Create a new account. Defaults to active=true, admin=false unless overridden.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /auth/user [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	_, err := ctrl.auth.Register(c.Request.Context(), req)
	if errors.Is(err, services.ErrConflict) {
		c.JSON(400, models.ErrorResponse{
			Kind:    "conflict",
			Message: "Email already registered",
		})
		return
	}
	if err != nil {
		internalError(c, "Registration failed", err)
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "User created successfully",
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password. An unknown email and a wrong password produce the same response.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.TokenResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(422, models.ErrorResponse{
			Kind:    "validation_error",
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	tokens, err := ctrl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(404, models.ErrorResponse{
			Kind:    "not_found",
			Message: "User not found or invalid credentials",
		})
		return
	}
	if err != nil {
		internalError(c, "Login failed", err)
		return
	}

	c.JSON(200, tokens)
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Issue a fresh access and refresh token pair for the authenticated caller.
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh [get]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.JSON(401, models.ErrorResponse{
			Kind:    "invalid_token",
			Message: "Invalid or expired token",
		})
		return
	}

	tokens, err := ctrl.auth.Refresh(actor.ID)
	if err != nil {
		internalError(c, "Token refresh failed", err)
		return
	}

	c.JSON(200, tokens)
}

// internalError logs the failure with request context and answers with a
// generic message that leaks no internals.
func internalError(c *gin.Context, message string, err error) {
	log.Printf("request_id=%s %s %s: %s: %v",
		c.GetString(middleware.RequestIDKey), c.Request.Method, c.Request.URL.Path, message, err)
	c.JSON(500, models.ErrorResponse{
		Kind:    "internal_error",
		Message: message,
	})
}
