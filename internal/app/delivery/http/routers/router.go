package routers

import (
	"fmt"
	"hemolink-service/internal/app/config"
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	organizationController *controllers.OrganizationController,
	userController *controllers.UserController,
	roleController *controllers.RoleController,
	donorController *controllers.DonorController,
	donationController *controllers.DonationController,
	screeningController *controllers.ScreeningController,
	labTestController *controllers.LabTestController,
	componentController *controllers.ComponentController,
	inventoryController *controllers.InventoryController,
	bloodRequestController *controllers.BloodRequestController,
	shipmentController *controllers.ShipmentController,
	reportController *controllers.ReportController,
	auditController *controllers.AuditController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestLogger)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/organizations", func(r chi.Router) {
				attachOrganizationRoutes(r, middlewares, organizationController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/roles", func(r chi.Router) {
				attachRoleRoutes(r, middlewares, roleController)
			})

			r.Route("/donors", func(r chi.Router) {
				attachDonorRoutes(r, middlewares, donorController)
			})

			r.Route("/donations", func(r chi.Router) {
				attachDonationRoutes(r, middlewares, donationController)
			})

			r.Route("/screenings", func(r chi.Router) {
				attachScreeningRoutes(r, middlewares, screeningController)
			})

			r.Route("/lab-tests", func(r chi.Router) {
				attachLabTestRoutes(r, middlewares, labTestController)
			})

			r.Route("/components", func(r chi.Router) {
				attachComponentRoutes(r, middlewares, componentController)
			})

			r.Route("/inventory", func(r chi.Router) {
				attachInventoryRoutes(r, middlewares, inventoryController)
			})

			r.Route("/requests", func(r chi.Router) {
				attachBloodRequestRoutes(r, middlewares, bloodRequestController)
			})

			r.Route("/shipments", func(r chi.Router) {
				attachShipmentRoutes(r, middlewares, shipmentController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})

			r.Route("/audit-logs", func(r chi.Router) {
				attachAuditRoutes(r, middlewares, auditController)
			})
		})
	})
}
