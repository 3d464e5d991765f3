package labtests

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type labTestUsecase struct {
	LabTestRepository  contracts.LabTestRepository
	DonationRepository contracts.DonationRepository
	ScopeResolver      contracts.ScopeResolver
}

func NewLabTestUsecase(
	labTestRepository contracts.LabTestRepository,
	donationRepository contracts.DonationRepository,
	scopeResolver contracts.ScopeResolver,
) contracts.LabTestUsecase {
	return &labTestUsecase{
		LabTestRepository:  labTestRepository,
		DonationRepository: donationRepository,
		ScopeResolver:      scopeResolver,
	}
}

// Create records the serology panel for a collected donation. A reactive
// overall result discards the donation; a passed result marks it tested.
func (uc *labTestUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateLabTest) (*models.LabTest, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	donation, err := uc.DonationRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": request.DonationID}))
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if donation.Status != models.DonationStatusCollected {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	existing, err := uc.LabTestRepository.FindOneWithFilter(ctx, bson.M{"donation_id": donation.ID})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	labTest := &models.LabTest{
		ID:         utils.GenerateUUID(),
		OrgID:      donation.OrgID,
		DonationID: donation.ID,
		HIV:        request.HIV,
		HBsAg:      request.HBsAg,
		HCV:        request.HCV,
		Syphilis:   request.Syphilis,
		Malaria:    request.Malaria,
		TestedBy:   identity.UserID,
		TimeModel:  models.NewTimeModel(time.Now().UTC()),
	}
	labTest.Overall = labTest.ComputeOverall()

	if err := uc.LabTestRepository.Create(ctx, labTest); err != nil {
		return nil, err
	}

	nextStatus := models.DonationStatusTested
	if labTest.Overall == models.LabTestOverallReactive {
		nextStatus = models.DonationStatusDiscarded
	}
	if err := uc.DonationRepository.UpdateStatus(ctx, donation.ID, nextStatus); err != nil {
		return nil, err
	}

	return labTest, nil
}

func (uc *labTestUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.LabTest, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := access.BuildScopeFilter(scope, nil)
	return uc.LabTestRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *labTestUsecase) GetByID(ctx context.Context, identity *models.Identity, labTestID string) (*models.LabTest, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	labTest, err := uc.LabTestRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": labTestID}))
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return labTest, nil
}
