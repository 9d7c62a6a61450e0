package main

import (
	"context"
	"log/slog"
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	utils.SetupLogging()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	mailer, err := utils.NewSESMailer(context.Background(), cfg.AWSRegion, cfg.SESEmail)
	if err != nil {
		slog.Error("mailer init failed", "error", err)
		os.Exit(1)
	}

	r := routes.SetupRouter(cfg, db, mailer)
	slog.Info("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
