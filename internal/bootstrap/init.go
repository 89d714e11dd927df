package bootstrap

import (
	"FindThemAPI/internal/adapter"
	"FindThemAPI/internal/config"
	"FindThemAPI/internal/controller"
	"FindThemAPI/internal/repository"
	"FindThemAPI/internal/service"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

func Init(cfg *config.AppConfig, validator *validator.Validate, s3Client *s3.Client, chiMux *chi.Mux) {
	storageAdapter := adapter.NewStorageAdapter(cfg, s3Client)
	repo := repository.NewRepository(cfg)

	authService := service.NewAuthService(repo, cfg, validator)
	authController := controller.NewAuthController(authService)

	reportService := service.NewReportService(repo, cfg, validator, storageAdapter)
	reportController := controller.NewReportController(reportService)

	infoService := service.NewInfoService(repo, cfg, validator)
	infoController := controller.NewInfoController(infoService)

	route := NewRoute(cfg, chiMux, authController, reportController, infoController)
	route.Register()
}
