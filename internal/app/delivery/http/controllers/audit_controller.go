package controllers

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AuditController struct {
	Log          *zap.Logger
	AuditUsecase contracts.AuditUsecase
}

func NewAuditController(logger *zap.Logger, auditUsecase contracts.AuditUsecase) *AuditController {
	return &AuditController{
		Log:          logger,
		AuditUsecase: auditUsecase,
	}
}

func (ctrl *AuditController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	logs, total, err := ctrl.AuditUsecase.List(ctx, identity, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSuccessMessage, pagination, logs)
}
