package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleUsers, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleUsers, models.ActionCreate, "user created"),
	).Post("/", userController.Create)

	router.With(middlewares.RequirePermission(models.ModuleUsers, models.ActionView)).Get("/", userController.List)
	router.With(middlewares.RequirePermission(models.ModuleUsers, models.ActionView)).Get("/{userID}", userController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleUsers, models.ActionUpdate),
		middlewares.AuditTrail(models.ModuleUsers, models.ActionUpdate, "user updated"),
	).Put("/{userID}", userController.Update)

	router.With(
		middlewares.RequirePermission(models.ModuleUsers, models.ActionDelete),
		middlewares.AuditTrail(models.ModuleUsers, models.ActionDelete, "user deactivated"),
	).Delete("/{userID}", userController.Deactivate)
}
