package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachLabTestRoutes(router chi.Router, middlewares *middlewares.Middlewares, labTestController *controllers.LabTestController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleLabTests, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleLabTests, models.ActionCreate, "lab panel recorded"),
	).Post("/", labTestController.Create)

	router.With(middlewares.RequirePermission(models.ModuleLabTests, models.ActionView)).Get("/", labTestController.List)
	router.With(middlewares.RequirePermission(models.ModuleLabTests, models.ActionView)).Get("/{labTestID}", labTestController.GetByID)
}
