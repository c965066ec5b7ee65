package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"food-order/controllers"
	"food-order/middleware"
	"food-order/repositories"
	"food-order/services"
)

func SetupRoutes(
	router *gin.Engine,
	authCtrl *controllers.AuthController,
	orderCtrl *controllers.OrderController,
	tokens *services.TokenService,
	users repositories.UserRepository,
) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/metrics", middleware.MetricsHandler())

	router.POST("/auth/user", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(tokens, users))
	{
		auth.GET("/auth/refresh", authCtrl.Refresh)

		auth.GET("/orders/order", middleware.AdminMiddleware(), orderCtrl.List)
		auth.POST("/orders/order", orderCtrl.Create)
		auth.GET("/orders/order/:id", orderCtrl.GetByID)
		auth.POST("/orders/order/cancel/:id", orderCtrl.Cancel)
		auth.POST("/orders/order/add-item/:id", orderCtrl.AddItem)
		auth.DELETE("/orders/order/remove-item/:item_id", orderCtrl.RemoveItem)
	}
}
