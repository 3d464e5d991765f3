package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type ComponentRepository interface {
	CreateMany(ctx context.Context, components []models.BloodComponent) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.BloodComponent, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.BloodComponent, int64, error)
	Update(ctx context.Context, component *models.BloodComponent) error
	UpdateManyStatusByDonation(ctx context.Context, donationID, qcStatus string) error
}

type ComponentUsecase interface {
	Process(ctx context.Context, identity *models.Identity, request *requests.ProcessComponents) ([]models.BloodComponent, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.BloodComponent, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, componentID string) (*models.BloodComponent, error)
	QCDecision(ctx context.Context, identity *models.Identity, componentID string, request *requests.QCDecision) (*models.BloodComponent, error)
}
