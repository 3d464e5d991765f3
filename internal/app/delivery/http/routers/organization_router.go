package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachOrganizationRoutes(router chi.Router, middlewares *middlewares.Middlewares, organizationController *controllers.OrganizationController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleOrganizations, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleOrganizations, models.ActionCreate, "organization created"),
	).Post("/", organizationController.Create)

	router.With(middlewares.RequirePermission(models.ModuleOrganizations, models.ActionView)).Get("/", organizationController.List)
	router.With(middlewares.RequirePermission(models.ModuleOrganizations, models.ActionView)).Get("/{orgID}", organizationController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleOrganizations, models.ActionUpdate),
		middlewares.AuditTrail(models.ModuleOrganizations, models.ActionUpdate, "organization updated"),
	).Put("/{orgID}", organizationController.Update)

	router.With(
		middlewares.RequirePermission(models.ModuleOrganizations, models.ActionDelete),
		middlewares.AuditTrail(models.ModuleOrganizations, models.ActionDelete, "organization deactivated"),
	).Delete("/{orgID}", organizationController.Deactivate)
}
