package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDonationRoutes(router chi.Router, middlewares *middlewares.Middlewares, donationController *controllers.DonationController) {
	router.Use(middlewares.Authenticate)

	router.With(
		middlewares.RequirePermission(models.ModuleDonations, models.ActionCreate),
		middlewares.AuditTrail(models.ModuleDonations, models.ActionCreate, "donation recorded"),
	).Post("/", donationController.Create)

	router.With(middlewares.RequirePermission(models.ModuleDonations, models.ActionView)).Get("/", donationController.List)
	router.With(middlewares.RequirePermission(models.ModuleDonations, models.ActionView)).Get("/{donationID}", donationController.GetByID)
}
