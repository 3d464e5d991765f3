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

type DonationController struct {
	Log             *zap.Logger
	DonationUsecase contracts.DonationUsecase
}

func NewDonationController(logger *zap.Logger, donationUsecase contracts.DonationUsecase) *DonationController {
	return &DonationController{
		Log:             logger,
		DonationUsecase: donationUsecase,
	}
}

func (ctrl *DonationController) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.CreateDonation)
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

	donation, err := ctrl.DonationUsecase.Create(ctx, identity, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSuccessMessage, donation)
}

func (ctrl *DonationController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	donations, total, err := ctrl.DonationUsecase.List(ctx, identity, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSuccessMessage, pagination, donations)
}

func (ctrl *DonationController) GetByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	donationID := chi.URLParam(r, "donationID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	donation, err := ctrl.DonationUsecase.GetByID(ctx, identity, donationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSuccessMessage, donation)
}
