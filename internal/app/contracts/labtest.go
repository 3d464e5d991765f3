package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type LabTestRepository interface {
	Create(ctx context.Context, labTest *models.LabTest) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.LabTest, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.LabTest, int64, error)
}

type LabTestUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateLabTest) (*models.LabTest, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.LabTest, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, labTestID string) (*models.LabTest, error)
}
