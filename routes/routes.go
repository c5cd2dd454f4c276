package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodie-finder/config"
	"foodie-finder/controllers"
	"foodie-finder/libs"
	"foodie-finder/middleware"
	"foodie-finder/repositories"
	"foodie-finder/services"
)

func SetupRoutes(router *gin.Engine) {
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	catalogRepo := repositories.NewCatalogRepository()

	gateway := services.SimulatedGateway{Delay: config.AppConfig.PaymentSimDelay}

	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo, sessionRepo))
	catalogCtrl := controllers.NewCatalogController(services.NewCatalogService(catalogRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(sessionRepo))
	checkoutCtrl := controllers.NewCheckoutController(services.NewCheckoutService(
		sessionRepo, gateway, config.AppConfig.DeliveryFee, config.AppConfig.TaxRate))
	notificationCtrl := controllers.NewNotificationController(services.NewNotificationService(sessionRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(sessionRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(libs.MetricsHandler()))

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/google", authCtrl.GoogleLogin)

	router.GET("/restaurants", catalogCtrl.GetRestaurants)
	router.GET("/restaurants/:id", catalogCtrl.GetRestaurantByID)
	router.GET("/restaurants/:id/menu", catalogCtrl.GetMenu)
	router.GET("/deals", catalogCtrl.GetDeals)
	router.GET("/pickup-locations", catalogCtrl.GetPickupLocations)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/checkout", checkoutCtrl.Start)
		auth.GET("/checkout", checkoutCtrl.Current)
		auth.PUT("/checkout/address", checkoutCtrl.SetAddress)
		auth.PUT("/checkout/payment", checkoutCtrl.SelectPayment)
		auth.POST("/checkout/advance", checkoutCtrl.Advance)
		auth.POST("/checkout/back", checkoutCtrl.Back)
		auth.POST("/checkout/confirm", checkoutCtrl.Confirm)
		auth.POST("/checkout/pay", checkoutCtrl.Pay)
		auth.POST("/checkout/retry", checkoutCtrl.Retry)
		auth.DELETE("/checkout", checkoutCtrl.Cancel)

		auth.GET("/notifications", notificationCtrl.List)
		auth.POST("/notifications", notificationCtrl.Add)
		auth.PATCH("/notifications/:id/read", notificationCtrl.MarkAsRead)

		auth.GET("/orders", orderCtrl.List)
	}
}
