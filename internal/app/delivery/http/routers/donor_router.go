package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachDonorRoutes(router chi.Router, middlewares *middlewares.Middlewares, donorController *controllers.DonorController) {
	// Public endpoints: self-registration by org code and donor status lookup
	// by donor code. No session required.
	router.Post("/register/{orgCode}", donorController.RegisterPublic)
	router.Get("/status/{donorCode}", donorController.StatusByDonorCode)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.With(
			middlewares.RequirePermission(models.ModuleDonors, models.ActionCreate),
			middlewares.AuditTrail(models.ModuleDonors, models.ActionCreate, "donor registered"),
		).Post("/", donorController.Register)

		r.With(middlewares.RequirePermission(models.ModuleDonors, models.ActionView)).Get("/", donorController.List)
		r.With(middlewares.RequirePermission(models.ModuleDonors, models.ActionView)).Get("/{donorID}", donorController.GetByID)

		r.With(
			middlewares.RequirePermission(models.ModuleDonors, models.ActionUpdate),
			middlewares.AuditTrail(models.ModuleDonors, models.ActionUpdate, "donor updated"),
		).Put("/{donorID}", donorController.Update)
	})
}
