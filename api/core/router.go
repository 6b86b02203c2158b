package core

import (
	"carlot/api"
	handlerAdmin "carlot/api/handler/admin"
	handlerPublic "carlot/api/handler/public"
	"carlot/api/middleware"
	"carlot/internal/app"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every route of the site onto the engine.
func RegisterRoutes(router *gin.Engine, application *app.App) {
	healthHandler := NewHealthHandler(application.DB)
	router.GET("/health", healthHandler.Handle)

	publicHandler := handlerPublic.NewHandler(application.Cars, application.Uploads)
	loginHandler := api.NewLoginHandler(application.Auth)
	adminHandler := handlerAdmin.NewHandler(application.Cars, application.Uploads, application.Log)

	// Public pages
	router.GET("/", publicHandler.Home)
	router.GET("/cars", publicHandler.ListCars)
	router.GET("/cars/:id", publicHandler.CarDetail)
	router.GET("/favorites", publicHandler.Favorites)

	// JSON API used by the client-side favorites page
	apiGroup := router.Group("/api")
	apiGroup.Use(apiCORS())
	{
		apiGroup.GET("/cars", publicHandler.CarsByIDs)
	}

	// Auth
	cfg := application.Config
	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRateRPS, cfg.LoginRateBurst)
	router.GET("/login", loginHandler.LoginPageHandlerFunc)
	router.POST("/login", loginLimiter.Middleware(), loginHandler.LoginHandlerFunc)
	router.POST("/logout", loginHandler.LogoutHandlerFunc)

	// Admin
	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(application.Auth))
	{
		adminGroup.GET("/cars", adminHandler.ListCars)
		adminGroup.GET("/cars/new", adminHandler.NewCarForm)
		adminGroup.POST("/cars", adminHandler.CreateCar)
		adminGroup.GET("/cars/:id/edit", adminHandler.EditCarForm)
		adminGroup.POST("/cars/:id", adminHandler.UpdateCar)
		adminGroup.POST("/cars/:id/delete", adminHandler.DeleteCar)
		adminGroup.POST("/cars/:id/images/:imageId/delete", adminHandler.DeleteImage)

		adminGroup.GET("/owner-photo", adminHandler.OwnerPhotoForm)
		adminGroup.POST("/owner-photo", adminHandler.UploadOwnerPhoto)
	}
}
