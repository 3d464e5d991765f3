package controllers

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BloodRequestController struct {
	Log                 *zap.Logger
	BloodRequestUsecase contracts.BloodRequestUsecase
}

func NewBloodRequestController(logger *zap.Logger, bloodRequestUsecase contracts.BloodRequestUsecase) *BloodRequestController {
	return &BloodRequestController{
		Log:                 logger,
		BloodRequestUsecase: bloodRequestUsecase,
	}
}

func (ctrl *BloodRequestController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.CreateBloodRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bloodRequest, err := ctrl.BloodRequestUsecase.Create(ctx, identity, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuccessMessage, bloodRequest)
}

func (ctrl *BloodRequestController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bloodRequests, total, err := ctrl.BloodRequestUsecase.List(ctx, identity, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSuccessMessage, pagination, bloodRequests)
}

func (ctrl *BloodRequestController) GetByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	requestID := chi.URLParam(r, "requestID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bloodRequest, err := ctrl.BloodRequestUsecase.GetByID(ctx, identity, requestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSuccessMessage, bloodRequest)
}

func (ctrl *BloodRequestController) Decide(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	requestID := chi.URLParam(r, "requestID")

	request := new(requests.DecideBloodRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bloodRequest, err := ctrl.BloodRequestUsecase.Decide(ctx, identity, requestID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestDecisionSuccessMessage, bloodRequest)
}

func (ctrl *BloodRequestController) Cancel(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	requestID := chi.URLParam(r, "requestID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bloodRequest, err := ctrl.BloodRequestUsecase.Cancel(ctx, identity, requestID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSuccessMessage, bloodRequest)
}
