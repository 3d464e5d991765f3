package middlewares

import (
	"hemolink-service/internal/app/config"
	"hemolink-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                *zap.Logger
	AuthUsecase        contracts.AuthUsecase
	PermissionResolver contracts.PermissionResolver
	AuditSink          contracts.AuditSink
	InternalConfig     *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	permissionResolver contracts.PermissionResolver,
	auditSink contracts.AuditSink,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:                logger,
		AuthUsecase:        authUsecase,
		PermissionResolver: permissionResolver,
		AuditSink:          auditSink,
		InternalConfig:     internalConfig,
	}
}
