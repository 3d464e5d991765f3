package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type ScreeningRepository interface {
	Create(ctx context.Context, screening *models.Screening) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Screening, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Screening, int64, error)
}

type ScreeningUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateScreening) (*models.Screening, error)
	List(ctx context.Context, identity *models.Identity, donorID string, page, pageSize int) ([]models.Screening, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, screeningID string) (*models.Screening, error)
}
