// Package main implements the entry point for the taskline API server,
// a personal task tracker backed by process-memory storage.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
)

// main is the entry point for the taskline server. It loads configuration,
// sets up logging, wires the in-memory stores and auth services together,
// and starts the HTTP server.
func main() {
	// Load a .env file if one is present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env file")
	}

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
