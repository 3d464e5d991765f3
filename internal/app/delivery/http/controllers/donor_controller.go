package controllers

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DonorController struct {
	Log          *zap.Logger
	DonorUsecase contracts.DonorUsecase
}

func NewDonorController(logger *zap.Logger, donorUsecase contracts.DonorUsecase) *DonorController {
	return &DonorController{
		Log:          logger,
		DonorUsecase: donorUsecase,
	}
}

func (ctrl *DonorController) Register(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.RegisterDonor)
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

	donor, err := ctrl.DonorUsecase.Register(ctx, identity, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DonorRegisterSuccessMessage, donor)
}

// RegisterPublic is the unauthenticated self-registration endpoint. The org
// is addressed by its public org code, never by internal id.
func (ctrl *DonorController) RegisterPublic(w http.ResponseWriter, r *http.Request) {
	orgCode := chi.URLParam(r, "orgCode")

	request := new(requests.RegisterDonor)
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

	donor, err := ctrl.DonorUsecase.RegisterPublic(ctx, orgCode, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DonorRegisterSuccessMessage, donor)
}

func (ctrl *DonorController) StatusByDonorCode(w http.ResponseWriter, r *http.Request) {
	donorCode := chi.URLParam(r, "donorCode")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	status, err := ctrl.DonorUsecase.StatusByDonorCode(ctx, donorCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DonorStatusSuccessMessage, status)
}

func (ctrl *DonorController) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	page, pageSize := utils.ParsePagination(r)

	search := &requests.SearchDonors{
		BloodType: r.URL.Query().Get("bloodType"),
		Phone:     r.URL.Query().Get("phone"),
	}
	if v := r.URL.Query().Get("eligible"); v != "" {
		if eligible, err := strconv.ParseBool(v); err == nil {
			search.Eligible = &eligible
		}
	}

	err := utils.ValidateStruct(search)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	donors, total, err := ctrl.DonorUsecase.List(ctx, identity, search, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetSuccessMessage, pagination, donors)
}

func (ctrl *DonorController) GetByID(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	donorID := chi.URLParam(r, "donorID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	donor, err := ctrl.DonorUsecase.GetByID(ctx, identity, donorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSuccessMessage, donor)
}

func (ctrl *DonorController) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}
	donorID := chi.URLParam(r, "donorID")

	request := new(requests.UpdateDonor)
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

	donor, err := ctrl.DonorUsecase.Update(ctx, identity, donorID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSuccessMessage, donor)
}
