package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachRoleRoutes(router chi.Router, middlewares *middlewares.Middlewares, roleController *controllers.RoleController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleRoles, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleRoles, models.ActionCreate, "custom role created"),
	).Post("/", roleController.Create)

	router.With(middlewares.RequirePermission(models.ModuleRoles, models.ActionView)).Get("/", roleController.List)
	router.With(middlewares.RequirePermission(models.ModuleRoles, models.ActionView)).Get("/{roleID}", roleController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleRoles, models.ActionUpdate),
		middlewares.AuditTrail(models.ModuleRoles, models.ActionUpdate, "custom role updated"),
	).Put("/{roleID}", roleController.Update)

	router.With(
		middlewares.RequirePermission(models.ModuleRoles, models.ActionDelete),
		middlewares.AuditTrail(models.ModuleRoles, models.ActionDelete, "custom role deleted"),
	).Delete("/{roleID}", roleController.Delete)
}
