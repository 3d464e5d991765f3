package routers

import (
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Post("/heartbeat", authController.Heartbeat)
	router.With(middlewares.Authenticate).Get("/sessions", authController.ListSessions)
	router.With(middlewares.Authenticate).Delete("/sessions/{sessionID}", authController.TerminateSession)
	router.With(middlewares.Authenticate).Delete("/sessions", authController.TerminateAllSessions)
	router.With(middlewares.Authenticate).Post("/switch-context", authController.SwitchContext)
	router.With(middlewares.Authenticate).Post("/exit-context", authController.ExitContext)
}
