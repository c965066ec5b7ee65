package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"food-order/config"
	"food-order/controllers"
	_ "food-order/docs"
	"food-order/middleware"
	"food-order/repositories"
	"food-order/routes"
	"food-order/services"
	"food-order/utils"
)

// @title Food Order API
// @version 1.0
// @description Food ordering backend with JWT authentication and order lifecycle management.
// @host localhost:8082
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer config.CloseDB()
	config.RunMigrations()

	utils.SetHashCost(
		config.AppConfig.Argon2TimeCost,
		config.AppConfig.Argon2MemoryKiB,
		config.AppConfig.Argon2Parallelism,
	)

	config.InitRedis()
	defer config.CloseRedis()

	userRepo := repositories.NewUserRepository(config.DB)
	orderRepo := repositories.NewOrderRepository(config.DB)

	tokens := services.NewTokenService(
		config.AppConfig.JWTSecret,
		time.Duration(config.AppConfig.AccessTokenMinutes)*time.Minute,
		time.Duration(config.AppConfig.RefreshTokenDays)*24*time.Hour,
	)

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
	}

	authService := services.NewAuthService(userRepo, tokens, mailer)
	orderService := services.NewOrderService(orderRepo, config.RedisClient)

	authCtrl := controllers.NewAuthController(authService)
	orderCtrl := controllers.NewOrderController(orderService)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())
	routes.SetupRoutes(router, authCtrl, orderCtrl, tokens, userRepo)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
