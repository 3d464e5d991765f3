package inventory

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type inventoryUsecase struct {
	InventoryRepository   contracts.InventoryRepository
	ScopeResolver         contracts.ScopeResolver
	NotificationPublisher contracts.NotificationPublisher
	Logger                *zap.Logger
}

func NewInventoryUsecase(
	inventoryRepository contracts.InventoryRepository,
	scopeResolver contracts.ScopeResolver,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.InventoryUsecase {
	return &inventoryUsecase{
		InventoryRepository:   inventoryRepository,
		ScopeResolver:         scopeResolver,
		NotificationPublisher: notificationPublisher,
		Logger:                logger,
	}
}

const lowStockThreshold = 5

func (uc *inventoryUsecase) List(ctx context.Context, identity *models.Identity, search *requests.SearchInventory, page, pageSize int) ([]models.InventoryItem, int64, error) {
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
		if search.ComponentType != "" {
			extra["component_type"] = search.ComponentType
		}
		if search.Status != "" {
			extra["status"] = search.Status
		}
	}

	filter := access.BuildScopeFilter(scope, extra)
	return uc.InventoryRepository.FindWithFilter(ctx, filter, page, pageSize)
}

func (uc *inventoryUsecase) GetByID(ctx context.Context, identity *models.Identity, itemID string) (*models.InventoryItem, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	item, err := uc.InventoryRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(scope, bson.M{"id": itemID}))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}
	return item, nil
}

func (uc *inventoryUsecase) UpdateStatus(ctx context.Context, identity *models.Identity, itemID string, request *requests.UpdateInventoryStatus) (*models.InventoryItem, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}

	item, err := uc.InventoryRepository.FindOneWithFilter(ctx, access.BuildScopeFilter(writable, bson.M{"id": itemID}))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, exceptions.ErrRecordNotFound(nil)
	}

	// Discarded and expired units are terminal.
	if item.Status == models.InventoryStatusDiscarded || item.Status == models.InventoryStatusExpired {
		return nil, exceptions.ErrInvalidStateTransition(nil)
	}

	item.Status = request.Status
	if request.Status != models.InventoryStatusReserved {
		item.ReservedFor = ""
	}
	item.Touch(time.Now().UTC())

	if err := uc.InventoryRepository.Update(ctx, item); err != nil {
		return nil, err
	}

	uc.notifyIfLowStock(ctx, item)
	return item, nil
}

func (uc *inventoryUsecase) StockSummary(ctx context.Context, identity *models.Identity) ([]models.StockSummary, error) {
	scope, err := uc.ScopeResolver.ResolveAccessibleOrgs(ctx, identity)
	if err != nil {
		return nil, err
	}
	if len(scope) == 0 {
		return nil, exceptions.ErrScopeEmpty(nil)
	}

	return uc.InventoryRepository.AggregateStock(ctx, bson.M{"org_id": bson.M{"$in": scope.ToSlice()}})
}

// DiscardExpired flips expired available units to discarded, limited to the
// caller's write scope. Triggered from the API only.
func (uc *inventoryUsecase) DiscardExpired(ctx context.Context, identity *models.Identity) (int64, error) {
	writable, err := uc.ScopeResolver.ResolveWritableOrgs(ctx, identity)
	if err != nil {
		return 0, err
	}
	if len(writable) == 0 {
		return 0, exceptions.ErrScopeEmpty(nil)
	}

	return uc.InventoryRepository.DiscardExpired(ctx, bson.M{"org_id": bson.M{"$in": writable.ToSlice()}})
}

func (uc *inventoryUsecase) notifyIfLowStock(ctx context.Context, item *models.InventoryItem) {
	summary, err := uc.InventoryRepository.AggregateStock(ctx, bson.M{
		"org_id":         item.OrgID,
		"blood_type":     item.BloodType,
		"component_type": item.ComponentType,
	})
	if err != nil {
		uc.Logger.Warn("low stock check failed", zap.Error(err))
		return
	}

	units := 0
	if len(summary) > 0 {
		units = summary[0].Units
	}
	if units >= lowStockThreshold {
		return
	}

	err = uc.NotificationPublisher.Publish(ctx, constvars.NotificationEventLowStock, map[string]interface{}{
		"orgId":         item.OrgID,
		"bloodType":     item.BloodType,
		"componentType": item.ComponentType,
		"units":         units,
	})
	if err != nil {
		uc.Logger.Warn("low stock notification failed", zap.Error(err))
	}
}
