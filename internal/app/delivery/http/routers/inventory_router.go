package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachInventoryRoutes(router chi.Router, middlewares *middlewares.Middlewares, inventoryController *controllers.InventoryController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequirePermission(models.ModuleInventory, models.ActionView)).Get("/", inventoryController.List)
	router.With(middlewares.RequirePermission(models.ModuleInventory, models.ActionView)).Get("/summary", inventoryController.StockSummary)
	router.With(middlewares.RequirePermission(models.ModuleInventory, models.ActionView)).Get("/{itemID}", inventoryController.GetByID)

	router.With(
		middlewares.RequirePermission(models.ModuleInventory, models.ActionUpdate),
		middlewares.AuditTrail(models.ModuleInventory, models.ActionUpdate, "inventory status updated"),
	).Put("/{itemID}/status", inventoryController.UpdateStatus)

	router.With(
		middlewares.RequirePermission(models.ModuleInventory, models.ActionDelete),
		middlewares.AuditTrail(models.ModuleInventory, models.ActionDelete, "expired units discarded"),
	).Post("/discard-expired", inventoryController.DiscardExpired)
}
