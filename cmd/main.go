package main

import (
	"log/slog"
	"os"

	"github.com/asistio/asistio-api/config"
	"github.com/asistio/asistio-api/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	slog.SetDefault(config.NewLogger())

	if err := godotenv.Load(".env"); err != nil {
		slog.Warn("no .env file loaded, using process environment")
	}

	if err := server.Start(); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
