// Package app wires the application context: configuration, database,
// repositories, and services. Handlers receive this explicitly instead of
// reaching for package-level globals.
package app

import (
	"fmt"

	"carlot/config"
	"carlot/database"
	"carlot/database/repo/cars"
	"carlot/database/repo/sessions"
	"carlot/internal/auth"
	"carlot/internal/uploads"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the per-process application context.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	Cars     *cars.Repository
	Sessions *sessions.Repository
	Auth     *auth.Service
	Uploads  *uploads.Store
}

// New opens the database, applies pending migrations, and builds every
// dependency. Any failure here aborts startup.
func New(cfg *config.Config) (*App, error) {
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	applied, err := database.Migrate(db)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if applied > 0 {
		log.Info("applied database migrations", zap.Int("count", applied))
	}

	store, err := uploads.NewStore(cfg.UploadDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize uploads directory: %w", err)
	}

	carRepo := cars.NewRepository(db)
	sessionRepo := sessions.NewRepository(db)
	authSvc := auth.NewService(sessionRepo, cfg.AdminPassword, cfg.SessionSecret, cfg.SessionTTL, log)

	return &App{
		Config:   cfg,
		DB:       db,
		Log:      log,
		Cars:     carRepo,
		Sessions: sessionRepo,
		Auth:     authSvc,
		Uploads:  store,
	}, nil
}

// Close releases the database connection and flushes the logger.
func (a *App) Close() error {
	_ = a.Log.Sync()

	sqlDB, err := a.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying DB instance: %w", err)
	}
	return sqlDB.Close()
}

func newLogger() (*zap.Logger, error) {
	if config.CommitHash == "n/a" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
