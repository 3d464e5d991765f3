package organizations

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"hemolink-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type organizationUsecase struct {
	OrganizationRepository contracts.OrganizationRepository
	ScopeResolver          contracts.ScopeResolver
	AuditSink              contracts.AuditSink
}

func NewOrganizationUsecase(
	organizationRepository contracts.OrganizationRepository,
	scopeResolver contracts.ScopeResolver,
	auditSink contracts.AuditSink,
) contracts.OrganizationUsecase {
	return &organizationUsecase{
		OrganizationRepository: organizationRepository,
		ScopeResolver:          scopeResolver,
		AuditSink:              auditSink,
	}
}

func (uc *organizationUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateOrganization) (*models.Organization, error) {
	existing, err := uc.OrganizationRepository.FindByOrgCode(ctx, request.OrgCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrOrgCodeAlreadyExists(nil)
	}

	org := &models.Organization{
		ID:        utils.GenerateUUID(),
		Name:      request.Name,
		OrgCode:   request.OrgCode,
		IsParent:  request.ParentOrgID == "",
		IsActive:  true,
		Address:   request.Address,
		Phone:     request.Phone,
		TimeModel: models.NewTimeModel(time.Now().UTC()),
	}

	if request.ParentOrgID != "" {
		parent, err := uc.OrganizationRepository.FindByID(ctx, request.ParentOrgID)
		if err != nil {
			return nil, err
		}
		if parent == nil || !parent.IsActive || !parent.IsParent {
			return nil, exceptions.ErrParentOrgNotFound(nil)
		}
		org.ParentOrgID = &parent.ID
	}

	if err := uc.OrganizationRepository.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// List scopes by the organization's own id, not an org_id field, since the
// organizations collection is the scope source itself.
func (uc *organizationUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Organization, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := bson.M{"id": bson.M{"$in": scope.ToSlice()}}
	return uc.OrganizationRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *organizationUsecase) GetByID(ctx context.Context, identity *models.Identity, orgID string) (*models.Organization, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(orgID) {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	org, err := uc.OrganizationRepository.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return org, nil
}

func (uc *organizationUsecase) Update(ctx context.Context, identity *models.Identity, orgID string, request *requests.UpdateOrganization) (*models.Organization, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if !writable.Contains(orgID) {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	org, err := uc.OrganizationRepository.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	if request.Name != "" {
		org.Name = request.Name
	}
	if request.Address != "" {
		org.Address = request.Address
	}
	if request.Phone != "" {
		org.Phone = request.Phone
	}
	org.Touch(time.Now().UTC())

	if err := uc.OrganizationRepository.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Deactivate flips is_active; the org then drops out of every scope
// computation, including its own members'.
func (uc *organizationUsecase) Deactivate(ctx context.Context, identity *models.Identity, orgID string) error {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return err
	}
	if !writable.Contains(orgID) {
		return exceptions.ErrRecordNotFound(nil)
	}

	org, err := uc.OrganizationRepository.FindByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return exceptions.ErrRecordNotFound(nil)
	}

	org.IsActive = false
	org.Touch(time.Now().UTC())
	return uc.OrganizationRepository.Update(ctx, org)
}
