package contracts

import (
	"context"
	"hemolink-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AuditSink is fire-and-forget: Log never blocks the caller and never
// surfaces a failure to it.
type AuditSink interface {
	Log(entry models.AuditLog)
	Close()
}

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.AuditLog, int64, error)
}

type AuditUsecase interface {
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.AuditLog, int64, error)
}
