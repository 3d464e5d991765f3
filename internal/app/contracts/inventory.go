package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.InventoryItem, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.InventoryItem, int64, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	ReserveAvailable(ctx context.Context, orgID, bloodType, componentType, requestID string, quantity int) (int64, error)
	IssueReserved(ctx context.Context, requestID string) (int64, error)
	ReleaseReserved(ctx context.Context, requestID string) (int64, error)
	DiscardExpired(ctx context.Context, filter bson.M) (int64, error)
	AggregateStock(ctx context.Context, filter bson.M) ([]models.StockSummary, error)
}

type InventoryUsecase interface {
	List(ctx context.Context, identity *models.Identity, search *requests.SearchInventory, page, pageSize int) ([]models.InventoryItem, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, itemID string) (*models.InventoryItem, error)
	UpdateStatus(ctx context.Context, identity *models.Identity, itemID string, request *requests.UpdateInventoryStatus) (*models.InventoryItem, error)
	StockSummary(ctx context.Context, identity *models.Identity) ([]models.StockSummary, error)
	DiscardExpired(ctx context.Context, identity *models.Identity) (int64, error)
}
