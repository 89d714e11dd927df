package repository

import (
	"FindThemAPI/internal/config"
)

type Repository struct {
	Report *ReportRepository
	Info   *InfoRepository
	User   *UserRepository
}

func NewRepository(cfg *config.AppConfig) *Repository {
	return &Repository{
		Report: NewReportRepository(cfg.DataDir),
		Info:   NewInfoRepository(cfg.DataDir),
		User:   NewUserRepository(cfg.DataDir),
	}
}
