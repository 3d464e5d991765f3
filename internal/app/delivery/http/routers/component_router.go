package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachComponentRoutes(router chi.Router, middlewares *middlewares.Middlewares, componentController *controllers.ComponentController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleComponents, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleComponents, models.ActionCreate, "donation processed into components"),
	).Post("/process", componentController.Process)

	router.With(middlewares.RequirePermission(models.ModuleComponents, models.ActionView)).Get("/", componentController.List)
	router.With(middlewares.RequirePermission(models.ModuleComponents, models.ActionView)).Get("/{componentID}", componentController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleComponents, models.ActionApprove),
		middlewares.AuditTrail(models.ModuleComponents, models.ActionApprove, "component QC decided"),
	).Post("/{componentID}/qc", componentController.QCDecision)
}
