package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type BloodRequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.BloodRequest, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.BloodRequest, int64, error)
	Update(ctx context.Context, request *models.BloodRequest) error
	AggregateTurnaround(ctx context.Context, filter bson.M) (int64, float64, error)
}

type BloodRequestUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateBloodRequest) (*models.BloodRequest, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.BloodRequest, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, requestID string) (*models.BloodRequest, error)
	Decide(ctx context.Context, identity *models.Identity, requestID string, request *requests.DecideBloodRequest) (*models.BloodRequest, error)
	Cancel(ctx context.Context, identity *models.Identity, requestID string) (*models.BloodRequest, error)
}
