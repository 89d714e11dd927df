package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"FindThemAPI/internal/bootstrap"
	"FindThemAPI/internal/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	s3Client := config.NewS3Client(cfg)
	if cfg.StorageMode == "s3" && s3Client == nil {
		slog.Error("Failed to initialize S3 client")
		os.Exit(1)
	}

	validate := config.NewValidator()
	chiMux := config.NewChi(cfg)

	bootstrap.Init(cfg, validate, s3Client, chiMux)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting FindThemAPI", "port", cfg.AppPort)

	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
