package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"food-order/models"
	"food-order/repositories"
	"food-order/services"
)

const actorKey = "actor"

// AuthMiddleware verifies the bearer token and loads the acting user. The
// claim set only carries the subject id, so the actor is fetched from
// storage here once per request.
func AuthMiddleware(tokens *services.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Kind:    "invalid_token",
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Kind:    "invalid_token",
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Kind:    "invalid_token",
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Kind:    "invalid_token",
				Message: "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(actorKey, user)
		c.Next()
	}
}

// AdminMiddleware requires the actor loaded by AuthMiddleware to be an
// administrator.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := CurrentUser(c)
		if actor == nil || !services.IsAdmin(actor) {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Kind:    "forbidden",
				Message: "Access denied. Admin role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the actor set by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	actor, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	user, ok := actor.(*models.User)
	if !ok {
		return nil
	}
	return user
}
