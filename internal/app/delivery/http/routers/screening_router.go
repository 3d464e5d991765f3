package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachScreeningRoutes(router chi.Router, middlewares *middlewares.Middlewares, screeningController *controllers.ScreeningController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleScreenings, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleScreenings, models.ActionCreate, "screening recorded"),
	).Post("/", screeningController.Create)

	router.With(middlewares.RequirePermission(models.ModuleScreenings, models.ActionView)).Get("/", screeningController.List)
	router.With(middlewares.RequirePermission(models.ModuleScreenings, models.ActionView)).Get("/{screeningID}", screeningController.GetByID)
}
