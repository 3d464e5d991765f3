package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Donation, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Donation, int64, error)
	Update(ctx context.Context, donation *models.Donation) error
	UpdateStatus(ctx context.Context, donationID, status string) error
	AggregateSummary(ctx context.Context, filter bson.M) ([]models.DonationSummaryRow, error)
}

type DonationUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateDonation) (*models.Donation, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Donation, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, donationID string) (*models.Donation, error)
}
