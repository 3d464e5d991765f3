package middlewares

import (
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"net/http"
)

// RequirePermission gates a route on a single module/action pair. It assumes
// Authenticate already ran; a missing identity is treated as an unauthorized
// request, not a server bug.
func (m *Middlewares) RequirePermission(module models.Module, action models.Action) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			allowed, err := m.PermissionResolver.HasPermission(r.Context(), identity, module, action)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !allowed {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) RequireAnyPermission(module models.Module, actions ...models.Action) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			allowed, err := m.PermissionResolver.HasAnyPermission(r.Context(), identity, module, actions...)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !allowed {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) RequireModuleAccess(module models.Module) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.IdentityFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}

			allowed, err := m.PermissionResolver.HasModuleAccess(r.Context(), identity, module)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !allowed {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
