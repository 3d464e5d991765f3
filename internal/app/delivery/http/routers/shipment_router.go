package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachShipmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, shipmentController *controllers.ShipmentController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleLogistics, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleLogistics, models.ActionCreate, "shipment dispatched"),
	).Post("/", shipmentController.Dispatch)

	router.With(middlewares.RequirePermission(models.ModuleLogistics, models.ActionView)).Get("/", shipmentController.List)
	router.With(middlewares.RequirePermission(models.ModuleLogistics, models.ActionView)).Get("/{shipmentID}", shipmentController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleLogistics, models.ActionUpdate),
		middlewares.AuditTrail(models.ModuleLogistics, models.ActionUpdate, "shipment status updated"),
	).Put("/{shipmentID}/status", shipmentController.UpdateStatus)

	router.With(
		middlewares.RequirePermission(models.ModuleLogistics, models.ActionUpdate),
	).Post("/{shipmentID}/temperature", shipmentController.AddTemperatureReading)
}
