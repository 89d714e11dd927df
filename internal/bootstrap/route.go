package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"FindThemAPI/internal/config"
	"FindThemAPI/internal/controller"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg              *config.AppConfig
	chi              *chi.Mux
	authController   *controller.AuthController
	reportController *controller.ReportController
	infoController   *controller.InfoController
}

func NewRoute(cfg *config.AppConfig, chi *chi.Mux, authController *controller.AuthController, reportController *controller.ReportController, infoController *controller.InfoController) *Route {
	return &Route{
		cfg:              cfg,
		chi:              chi,
		authController:   authController,
		reportController: reportController,
		infoController:   infoController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to FindThemAPI"))
	})

	if route.cfg.StorageMode == "local" {
		route.serveStatic(route.cfg.StorageUpload)
	}

	// Legacy HTML-form submission path, unmoderated.
	route.chi.Post("/submit-details", route.reportController.SubmitLegacy)

	route.chi.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", route.authController.Signup)
		r.Post("/auth/login", route.authController.Login)
		r.Post("/auth/admin-login", route.authController.AdminLogin)

		r.Get("/reports", route.reportController.List)
		r.Post("/reports/submit", route.reportController.Submit)
		r.Get("/reports/pending", route.reportController.ListPending)
		r.Post("/reports/approve/{id}", route.reportController.Approve)
		r.Post("/reports/reject/{id}", route.reportController.Reject)

		r.Get("/admin/reports", route.reportController.AdminList)
		r.Put("/admin/reports/{id}", route.reportController.AdminUpdate)
		r.Delete("/admin/reports/{id}", route.reportController.AdminDelete)

		r.Post("/report-info/submit", route.infoController.Submit)
		r.Post("/report-info/approve/{id}", route.infoController.Approve)
		r.Post("/report-info/reject/{id}", route.infoController.Reject)
		r.Get("/report-info/{report_id}", route.infoController.ListForReport)
		r.Get("/pending-info", route.infoController.ListPending)

		r.Post("/admin/report-info/add", route.infoController.AdminAdd)
		r.Delete("/admin/report-info/{id}", route.infoController.AdminDelete)
	})
}

func (route *Route) serveStatic(pathFromConfig string) {
	if pathFromConfig == "" {
		return
	}
	cleanInput := strings.TrimLeft(pathFromConfig, "/\\.")

	physicalPath := filepath.Join(".", cleanInput)

	urlPath := filepath.ToSlash(physicalPath)

	routePattern := fmt.Sprintf("/%s/*", urlPath)
	prefix := fmt.Sprintf("/%s", urlPath)

	route.chi.Handle(routePattern, http.StripPrefix(prefix, http.FileServer(http.Dir(physicalPath))))
}
