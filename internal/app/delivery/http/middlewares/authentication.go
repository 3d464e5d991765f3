package middlewares

import (
	"context"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

// Authenticate rebuilds the caller identity from the bearer token and the
// backing session row, then stores it on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		identity, tokenHash, err := m.AuthUsecase.ResolveIdentity(ctx, token)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		requestCtx := utils.ContextWithIdentity(r.Context(), identity)
		requestCtx = utils.ContextWithTokenHash(requestCtx, tokenHash)
		next.ServeHTTP(w, r.WithContext(requestCtx))
	})
}

// OptionalAuthenticate attaches an identity when a valid token is present and
// lets the request through anonymously otherwise. Public endpoints use it so
// staff hitting them keep their audit identity.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		identity, tokenHash, err := m.AuthUsecase.ResolveIdentity(ctx, token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		requestCtx := utils.ContextWithIdentity(r.Context(), identity)
		requestCtx = utils.ContextWithTokenHash(requestCtx, tokenHash)
		next.ServeHTTP(w, r.WithContext(requestCtx))
	})
}
