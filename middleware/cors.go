package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the local dev frontend plus an optional deployed
// origin from configuration.
func CORSMiddleware(extraOrigin string) gin.HandlerFunc {
	allowedOrigins := []string{
		"http://localhost:5173",
	}

	if extraOrigin != "" {
		allowedOrigins = append(allowedOrigins, extraOrigin)
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	})
}
