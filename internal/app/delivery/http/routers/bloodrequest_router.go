package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachBloodRequestRoutes(router chi.Router, middlewares *middlewares.Middlewares, bloodRequestController *controllers.BloodRequestController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleRequests, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleRequests, models.ActionCreate, "blood request created"),
	).Post("/", bloodRequestController.Create)

	router.With(middlewares.RequirePermission(models.ModuleRequests, models.ActionView)).Get("/", bloodRequestController.List)
	router.With(middlewares.RequirePermission(models.ModuleRequests, models.ActionView)).Get("/{requestID}", bloodRequestController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleRequests, models.ActionApprove),
		middlewares.AuditTrail(models.ModuleRequests, models.ActionApprove, "blood request decided"),
	).Post("/{requestID}/decision", bloodRequestController.Decide)

	router.With(
		middlewares.RequirePermission(models.ModuleRequests, models.ActionUpdate),
		middlewares.AuditTrail(models.ModuleRequests, models.ActionUpdate, "blood request cancelled"),
	).Post("/{requestID}/cancel", bloodRequestController.Cancel)
}
