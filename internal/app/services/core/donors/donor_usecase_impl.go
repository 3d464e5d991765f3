package donors

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/dto/responses"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type donorUsecase struct {
	DonorRepository        contracts.DonorRepository
	OrganizationRepository contracts.OrganizationRepository
	ScopeResolver          contracts.ScopeResolver
}

func NewDonorUsecase(
	donorRepository contracts.DonorRepository,
	organizationRepository contracts.OrganizationRepository,
	scopeResolver contracts.ScopeResolver,
) contracts.DonorUsecase {
	return &donorUsecase{
		DonorRepository:        donorRepository,
		OrganizationRepository: organizationRepository,
		ScopeResolver:          scopeResolver,
	}
}

func (uc *donorUsecase) buildDonor(orgID string, request *requests.RegisterDonor) (*models.Donor, error) {
	donorCode, err := utils.GenerateDonorCode()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	dateOfBirth, err := time.Parse("2006-01-02", request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return &models.Donor{
		ID:          utils.GenerateUUID(),
		OrgID:       orgID,
		DonorCode:   donorCode,
		FullName:    request.FullName,
		BloodType:   request.BloodType,
		Phone:       request.Phone,
		Email:       request.Email,
		DateOfBirth: dateOfBirth,
		Gender:      request.Gender,
		IsEligible:  true,
		TimeModel:   models.NewTimeModel(time.Now().UTC()),
	}, nil
}

func (uc *donorUsecase) Register(ctx context.Context, identity *models.Identity, request *requests.RegisterDonor) (*models.Donor, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !writable.Contains(identity.OrgID) {
		return nil, exceptions.ErrScopeForbidden(nil)
	}

	donor, err := uc.buildDonor(identity.OrgID, request)
	if err != nil {
		return nil, err
	}
	if err := uc.DonorRepository.Create(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// RegisterPublic is the unauthenticated self-registration path. The org is
// addressed by its public code, never by id.
func (uc *donorUsecase) RegisterPublic(ctx context.Context, orgCode string, request *requests.RegisterDonor) (*models.Donor, error) {
	org, err := uc.OrganizationRepository.FindByOrgCode(ctx, orgCode)
	if err != nil {
		return nil, err
	}
	if org == nil || !org.IsActive {
		return nil, exceptions.ErrOrgNotExist(nil)
	}

	donor, err := uc.buildDonor(org.ID, request)
	if err != nil {
		return nil, err
	}
	if err := uc.DonorRepository.Create(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}

// StatusByDonorCode is public: donors check their own eligibility with the
// code they received at registration. It exposes no org or internal ids.
func (uc *donorUsecase) StatusByDonorCode(ctx context.Context, donorCode string) (*responses.DonorStatus, error) {
	donor, err := uc.DonorRepository.FindByDonorCode(ctx, donorCode)
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, exceptions.ErrDonorCodeNotFound(nil)
	}

	return &responses.DonorStatus{
		DonorCode:     donor.DonorCode,
		FullName:      donor.FullName,
		BloodType:     donor.BloodType,
		IsEligible:    donor.IsEligible,
		DeferredUntil: donor.DeferredUntil,
		LastDonation:  donor.LastDonation,
	}, nil
}

func (uc *donorUsecase) List(ctx context.Context, identity *models.Identity, search *requests.SearchDonors, page, pageSize int) ([]models.Donor, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	extra := bson.M{}
	if search != nil {
		if search.BloodType != "" {
			extra["blood_type"] = search.BloodType
		}
		if search.Phone != "" {
			extra["phone"] = search.Phone
		}
		if search.Eligible != nil {
			extra["is_eligible"] = *search.Eligible
		}
	}

	filter := access.BuildScopeFilter(scope, extra)
	return uc.DonorRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *donorUsecase) GetByID(ctx context.Context, identity *models.Identity, donorID string) (*models.Donor, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	donor, err := uc.DonorRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": donorID}))
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return donor, nil
}

func (uc *donorUsecase) Update(ctx context.Context, identity *models.Identity, donorID string, request *requests.UpdateDonor) (*models.Donor, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	donor, err := uc.DonorRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": donorID}))
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.FullName != "" {
		donor.FullName = request.FullName
	}
	if request.Phone != "" {
		donor.Phone = request.Phone
	}
	if request.Email != "" {
		donor.Email = request.Email
	}
	donor.Touch(time.Now().UTC())

	if err := uc.DonorRepository.Update(ctx, donor); err != nil {
		return nil, err
	}
	return donor, nil
}
