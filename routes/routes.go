package routes

import (
	"github.com/VivekWar/ABRC/config"
	"github.com/VivekWar/ABRC/controllers"
	"github.com/VivekWar/ABRC/middleware"
	"github.com/VivekWar/ABRC/services"
	"github.com/VivekWar/ABRC/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter builds the gin.Engine with every route registered. The store
// and mailer are wired from the globals set up in main.
func SetupRouter(cfg *config.Config) *gin.Engine {
	store := services.NewStore(utils.GetDB())
	mailer := services.NewSMTPMailer(cfg)
	return SetupRouterWith(cfg, store, mailer)
}

// SetupRouterWith lets tests inject an in-memory store and a fake mailer.
func SetupRouterWith(cfg *config.Config, store services.Store, mailer services.Mailer) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RecoveryMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.AppURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	travelService := services.NewTravelService(store)
	rideService := services.NewRideService(store, mailer)

	authController := controllers.NewAuthController(cfg, store, mailer)
	travelController := controllers.NewTravelController(travelService)
	rideController := controllers.NewRideController(rideService)
	profileController := controllers.NewProfileController(cfg, store)

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/signup", authController.Signup)
		api.POST("/auth/login", authController.Login)
		api.GET("/auth/google", authController.GoogleLogin)
		api.GET("/auth/google/callback", authController.GoogleCallback)

		// public listing; everything mutating sits behind JWT
		api.GET("/travels", travelController.List)

		authed := api.Group("", middleware.JWTAuthMiddleware())
		{
			authed.POST("/travels", travelController.Create)
			authed.PUT("/travels", travelController.Update)
			authed.DELETE("/travels", travelController.Delete)

			authed.POST("/ride-requests", rideController.Create)

			authed.GET("/user/profile", profileController.GetProfile)
			authed.PUT("/user/profile", profileController.UpdateProfile)
			authed.POST("/user/logout", profileController.Logout)
		}
	}

	return r
}
