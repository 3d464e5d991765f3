package donations

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

type donationUsecase struct {
	DonationRepository contracts.DonationRepository
	DonorRepository    contracts.DonorRepository
	ScopeResolver      contracts.ScopeResolver
}

func NewDonationUsecase(
	donationRepository contracts.DonationRepository,
	donorRepository contracts.DonorRepository,
	scopeResolver contracts.ScopeResolver,
) contracts.DonationUsecase {
	return &donationUsecase{
		DonationRepository: donationRepository,
		DonorRepository:    donorRepository,
		ScopeResolver:      scopeResolver,
	}
}

// Create records a collected unit. The donor must be eligible, not deferred
// and inside the caller's write scope.
func (uc *donationUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateDonation) (*models.Donation, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	donor, err := uc.DonorRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": request.DonorID}))
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	now := time.Now().UTC()
	if !donor.IsEligible || (donor.DeferredUntil != nil && donor.DeferredUntil.After(now)) {
		return nil, exceptions.ErrDonorNotEligible(nil)
	}

	donationCode, err := utils.GenerateDonationCode(now)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	donation := &models.Donation{
		ID:             utils.GenerateUUID(),
		OrgID:          donor.OrgID,
		DonorID:        donor.ID,
		DonationCode:   donationCode,
		BloodType:      donor.BloodType,
		VolumeML:       request.VolumeML,
		Status:         models.DonationStatusCollected,
		CollectedAt:    now,
		PhlebotomistID: identity.UserID,
		TimeModel:      models.NewTimeModel(now),
	}
	if err := uc.DonationRepository.Create(ctx, donation); err != nil {
		return nil, err
	}

	donor.LastDonation = &now
	donor.Touch(now)
	if err := uc.DonorRepository.Update(ctx, donor); err != nil {
		return nil, err
	}

	return donation, nil
}

func (uc *donationUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Donation, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := access.BuildScopeFilter(scope, nil)
	return uc.DonationRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *donationUsecase) GetByID(ctx context.Context, identity *models.Identity, donationID string) (*models.Donation, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	donation, err := uc.DonationRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": donationID}))
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return donation, nil
}
