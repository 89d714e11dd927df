package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"FindThemAPI/internal/config"
	"FindThemAPI/internal/repository"
	"FindThemAPI/internal/scheduler"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	s3Client := config.NewS3Client(cfg)
	repo := repository.NewRepository(cfg)

	srv := scheduler.New(cfg, repo, s3Client)

	srv.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down scheduler...")
	srv.Stop()
}
