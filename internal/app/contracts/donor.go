package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"
	"hemolink-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type DonorRepository interface {
	Create(ctx context.Context, donor *models.Donor) error
	FindByID(ctx context.Context, id string) (*models.Donor, error)
	FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Donor, error)
	FindByDonorCode(ctx context.Context, donorCode string) (*models.Donor, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Donor, int64, error)
	Update(ctx context.Context, donor *models.Donor) error
}

type DonorUsecase interface {
	Register(ctx context.Context, identity *models.Identity, request *requests.RegisterDonor) (*models.Donor, error)
	RegisterPublic(ctx context.Context, orgCode string, request *requests.RegisterDonor) (*models.Donor, error)
	StatusByDonorCode(ctx context.Context, donorCode string) (*responses.DonorStatus, error)
	List(ctx context.Context, identity *models.Identity, search *requests.SearchDonors, page, pageSize int) ([]models.Donor, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, donorID string) (*models.Donor, error)
	Update(ctx context.Context, identity *models.Identity, donorID string, request *requests.UpdateDonor) (*models.Donor, error)
}
