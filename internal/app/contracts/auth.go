package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, identity *models.Identity, tokenHash string) error
	Heartbeat(ctx context.Context, identity *models.Identity) error
	ListSessions(ctx context.Context, identity *models.Identity) ([]models.Session, error)
	TerminateSession(ctx context.Context, identity *models.Identity, sessionID string) error
	TerminateAllSessions(ctx context.Context, identity *models.Identity, exceptCurrent bool, tokenHash string) (int64, error)
	SwitchContext(ctx context.Context, identity *models.Identity, request *requests.SwitchContext) (*responses.ContextSwitch, error)
	ExitContext(ctx context.Context, identity *models.Identity) (*responses.ContextSwitch, error)

	// ResolveIdentity rebuilds the caller identity from a bearer token,
	// verifying the backing session row is still active.
	ResolveIdentity(ctx context.Context, token string) (*models.Identity, string, error)

	// Maintenance entry points driven by the background sweeper, never by the
	// request path.
	SweepExpiredSessions(ctx context.Context) (int64, error)
	EnforceSessionCap(ctx context.Context) (int64, error)
}
