package components

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

type componentUsecase struct {
	ComponentRepository contracts.ComponentRepository
	DonationRepository  contracts.DonationRepository
	InventoryRepository contracts.InventoryRepository
	ScopeResolver       contracts.ScopeResolver
}

func NewComponentUsecase(
	componentRepository contracts.ComponentRepository,
	donationRepository contracts.DonationRepository,
	inventoryRepository contracts.InventoryRepository,
	scopeResolver contracts.ScopeResolver,
) contracts.ComponentUsecase {
	return &componentUsecase{
		ComponentRepository: componentRepository,
		DonationRepository:  donationRepository,
		InventoryRepository: inventoryRepository,
		ScopeResolver:       scopeResolver,
	}
}

// Process separates a tested donation into components. Each component starts
// in QC pending; units only reach inventory after QC approval.
func (uc *componentUsecase) Process(ctx context.Context, identity *models.Identity, request *requests.ProcessComponents) ([]models.BloodComponent, error) {
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
	if donation.Status != models.DonationStatusTested {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	now := time.Now().UTC()
	componentsList := make([]models.BloodComponent, 0, len(request.Components))
	for _, spec := range request.Components {
		componentsList = append(componentsList, models.BloodComponent{
			ID:            utils.GenerateUUID(),
			OrgID:         donation.OrgID,
			DonationID:    donation.ID,
			ComponentType: spec.ComponentType,
			BloodType:     donation.BloodType,
			VolumeML:      spec.VolumeML,
			ExpiresAt:     now.AddDate(0, 0, spec.ShelfLifeDays),
			QCStatus:      models.QCStatusPending,
			TimeModel:     models.NewTimeModel(now),
		})
	}

	if err := uc.ComponentRepository.CreateMany(ctx, componentsList); err != nil {
		return nil, err
	}
	if err := uc.DonationRepository.UpdateStatus(ctx, donation.ID, models.DonationStatusProcessed); err != nil {
		return nil, err
	}
	return componentsList, nil
}

func (uc *componentUsecase) List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.BloodComponent, int64, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, 0, err
	}
	if len(scope) == 0 {
		return nil, 0, exceptions.ErrScopeEmpty(nil)
	}

	filter := access.BuildScopeFilter(scope, nil)
	return uc.ComponentRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *componentUsecase) GetByID(ctx context.Context, identity *models.Identity, componentID string) (*models.BloodComponent, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	component, err := uc.ComponentRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": componentID}))
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return component, nil
}

// QCDecision settles a pending component. Approval creates the inventory
// unit; rejection is final.
func (uc *componentUsecase) QCDecision(ctx context.Context, identity *models.Identity, componentID string, request *requests.QCDecision) (*models.BloodComponent, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	component, err := uc.ComponentRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": componentID}))
	if err != nil {
		return nil, err
	}
	if component == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	if component.QCStatus != models.QCStatusPending {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	now := time.Now().UTC()
	component.QCStatus = request.Decision
	component.QCNote = request.Note
	component.QCBy = identity.UserID
	component.Touch(now)

	if err := uc.ComponentRepository.Update(ctx, component); err != nil {
		return nil, err
	}

	if request.Decision == models.QCStatusApproved {
		item := &models.InventoryItem{
			ID:            utils.GenerateUUID(),
			OrgID:         component.OrgID,
			ComponentID:   component.ID,
			BloodType:     component.BloodType,
			ComponentType: component.ComponentType,
			Status:        models.InventoryStatusAvailable,
			ExpiresAt:     component.ExpiresAt,
			TimeModel:     models.NewTimeModel(now),
		}
		if err := uc.InventoryRepository.Create(ctx, item); err != nil {
			return nil, err
		}
	}

	return component, nil
}
