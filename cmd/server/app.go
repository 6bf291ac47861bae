package main

import (
	"fmt"
	"log/slog"

	"github.com/rkarlsb/taskline/internal/config"
	"github.com/rkarlsb/taskline/internal/platform/logger"
	"github.com/rkarlsb/taskline/internal/service/auth"
	"github.com/rkarlsb/taskline/internal/store"
	"github.com/rkarlsb/taskline/internal/store/memory"
)

// application holds all the shared application dependencies to simplify
// management and ensure a single ownership point per process. Stores are
// referenced through their interfaces so the backing storage can later move
// to a real database without touching the handlers.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Auth services
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication loads configuration and constructs every dependency the
// server needs. All state is created here and passed explicitly; nothing
// references module-level collections.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           log,
		userStore:        memory.NewUserStore(),
		taskStore:        memory.NewTaskStore(),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases application resources on shutdown. The in-memory stores
// hold nothing that outlives the process, so this is currently a log point.
func (app *application) cleanup() {
	app.logger.Info("application cleanup complete")
}
