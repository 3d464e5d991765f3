package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	FindActiveByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	FindActiveByUser(ctx context.Context, userID string) ([]models.Session, error)
	FindMostRecentActiveByUser(ctx context.Context, userID string) (*models.Session, error)
	UpdateLastActivity(ctx context.Context, sessionID string, at time.Time) error
	Terminate(ctx context.Context, sessionID, terminatedBy, reason string, at time.Time) error
	TerminateAllForUser(ctx context.Context, userID, exceptSessionID, terminatedBy, reason string, at time.Time) (int64, error)
	FindActiveIdleSince(ctx context.Context, cutoff time.Time) ([]models.Session, error)
	TerminateIdleSince(ctx context.Context, cutoff time.Time, reason string) (int64, error)
	FindUserIDsOverCap(ctx context.Context, cap int) ([]string, error)
}
