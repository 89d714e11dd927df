package scheduler

import (
	"context"
	"log/slog"

	"FindThemAPI/internal/adapter"
	"FindThemAPI/internal/config"
	"FindThemAPI/internal/repository"
	"FindThemAPI/internal/scheduler/job"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cfg            *config.AppConfig
	repo           *repository.Repository
	cron           *cron.Cron
	storageAdapter *adapter.StorageAdapter
}

func New(cfg *config.AppConfig, repo *repository.Repository, s3Client *s3.Client) *Scheduler {
	return &Scheduler{
		cfg:            cfg,
		repo:           repo,
		cron:           cron.New(),
		storageAdapter: adapter.NewStorageAdapter(cfg, s3Client),
	}
}

func (s *Scheduler) Start() {
	slog.Info("Starting Scheduler...")

	s.registerJobs()

	s.cron.Start()
	slog.Info("Scheduler started successfully")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) registerJobs() {
	_, err := s.cron.AddFunc(s.cfg.UploadCleanupCron, func() {
		slog.Info("Starting Upload Cleanup Job")
		ctx := context.Background()
		if err := job.RunUploadCleanup(ctx, s.repo, s.storageAdapter, s.cfg); err != nil {
			slog.Error("Upload Cleanup Job failed", "error", err)
		} else {
			slog.Info("Upload Cleanup Job completed")
		}
	})
	if err != nil {
		slog.Error("Failed to register Upload Cleanup job", "error", err)
	} else {
		slog.Info("Registered Upload Cleanup Job", "schedule", s.cfg.UploadCleanupCron)
	}
}
