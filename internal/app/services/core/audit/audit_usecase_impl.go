package audit

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/pkg/exceptions"
)

type auditUsecase struct {
	AuditLogRepository contracts.AuditLogRepository
	ScopeResolver      contracts.ScopeResolver
}

func NewAuditUsecase(auditLogRepository contracts.AuditLogRepository, scopeResolver contracts.ScopeResolver) contracts.AuditUsecase {
	return &auditUsecase{
		AuditLogRepository: auditLogRepository,
		ScopeResolver:      scopeResolver,
	}
}

func (uc *auditUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.AuditLog, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := access.BuildScopeFilter(scope, nil)
	return uc.AuditLogRepository.FindWithFilter(ctx, filter, page, pageSize)
}
