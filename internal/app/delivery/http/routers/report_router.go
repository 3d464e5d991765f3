package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequirePermission(models.ModuleReports, models.ActionView)).Get("/stock", reportController.StockByBloodType)
	router.With(middlewares.RequirePermission(models.ModuleReports, models.ActionView)).Get("/donations", reportController.DonationSummary)
	router.With(middlewares.RequirePermission(models.ModuleReports, models.ActionView)).Get("/turnaround", reportController.RequestTurnaround)

	router.With(
		middlewares.RequirePermission(models.ModuleReports, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleReports, models.ActionCreate, "report exported"),
	).Post("/export", reportController.Export)
}
