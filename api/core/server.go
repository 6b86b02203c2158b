package core

import (
	"net/http"
	"time"

	"carlot/config"
	"carlot/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter builds the gin engine with global middleware, templates, and
// static serving for the uploads directory.
func setupRouter(application *app.App) *gin.Engine {
	cfg := application.Config

	if config.CommitHash != "n/a" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.SetTrustedProxies(nil)
	router.MaxMultipartMemory = int64(cfg.UploadMaxSizeMB) << 20

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")
	router.Static("/uploads", application.Uploads.BasePath())

	RegisterRoutes(router, application)

	return router
}

// StartServer creates the http.Server around the configured router.
func StartServer(application *app.App) *http.Server {
	cfg := application.Config
	router := setupRouter(application)

	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}
}

// apiCORS allows the favorites page (or any front end) to call the JSON API
// from other origins with plain GETs.
func apiCORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
		MaxAge:       12 * time.Hour,
	})
}
