package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachAuditRoutes(router chi.Router, middlewares *middlewares.Middlewares, auditController *controllers.AuditController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequirePermission(models.ModuleAudit, models.ActionView)).Get("/", auditController.List)
}
