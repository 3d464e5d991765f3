package screenings

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

type screeningUsecase struct {
	ScreeningRepository contracts.ScreeningRepository
	DonorRepository     contracts.DonorRepository
	ScopeResolver       contracts.ScopeResolver
}

func NewScreeningUsecase(
	screeningRepository contracts.ScreeningRepository,
	donorRepository contracts.DonorRepository,
	scopeResolver contracts.ScopeResolver,
) contracts.ScreeningUsecase {
	return &screeningUsecase{
		ScreeningRepository: screeningRepository,
		DonorRepository:     donorRepository,
		ScopeResolver:       scopeResolver,
	}
}

// Create records a pre-donation screening. A deferred outcome stamps the
// donor's deferral window; a passed outcome clears it.
func (uc *screeningUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateScreening) (*models.Screening, error) {
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
	screening := &models.Screening{
		ID:            utils.GenerateUUID(),
		OrgID:         donor.OrgID,
		DonorID:       donor.ID,
		HemoglobinGDL: request.HemoglobinGDL,
		BloodPressure: request.BloodPressure,
		PulseBPM:      request.PulseBPM,
		TemperatureC:  request.TemperatureC,
		WeightKG:      request.WeightKG,
		Outcome:       request.Outcome,
		DeferralDays:  request.DeferralDays,
		Notes:         request.Notes,
		ScreenedBy:    identity.UserID,
		TimeModel:     models.NewTimeModel(now),
	}
	if err := uc.ScreeningRepository.Create(ctx, screening); err != nil {
		return nil, err
	}

	switch request.Outcome {
	case models.ScreeningOutcomeDeferred:
		deferredUntil := now.AddDate(0, 0, request.DeferralDays)
		donor.IsEligible = false
		donor.DeferredUntil = &deferredUntil
	case models.ScreeningOutcomePassed:
		donor.IsEligible = true
		donor.DeferredUntil = nil
	}
	donor.Touch(now)
	if err := uc.DonorRepository.Update(ctx, donor); err != nil {
		return nil, err
	}

	return screening, nil
}

func (uc *screeningUsecase) List(ctx context.Context, identity *models.Identity, donorID string, page, pageSize int) ([]models.Screening, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	extra := bson.M{}
	if donorID != "" {
		extra["donor_id"] = donorID
	}
	filter := access.BuildScopeFilter(scope, extra)
	return uc.ScreeningRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *screeningUsecase) GetByID(ctx context.Context, identity *models.Identity, screeningID string) (*models.Screening, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	screening, err := uc.ScreeningRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": screeningID}))
	if err != nil {
		return nil, err
	}
	if screening == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return screening, nil
}
