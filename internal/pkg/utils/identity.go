package utils

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
)

func IdentityFromContext(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	return identity, ok
}

func ContextWithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_IDENTITY_KEY, identity)
}

func TokenHashFromContext(ctx context.Context) (string, bool) {
	tokenHash, ok := ctx.Value(constvars.CONTEXT_TOKEN_HASH_KEY).(string)
	return tokenHash, ok
}

func ContextWithTokenHash(ctx context.Context, tokenHash string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_TOKEN_HASH_KEY, tokenHash)
}

func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID, ok
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}
