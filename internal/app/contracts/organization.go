package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	FindByID(ctx context.Context, id string) (*models.Organization, error)
	FindByOrgCode(ctx context.Context, orgCode string) (*models.Organization, error)
	FindAllActive(ctx context.Context) ([]models.Organization, error)
	FindActiveChildren(ctx context.Context, parentOrgID string) ([]models.Organization, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Organization, int64, error)
	Update(ctx context.Context, org *models.Organization) error
}

type OrganizationUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateOrganization) (*models.Organization, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Organization, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, orgID string) (*models.Organization, error)
	Update(ctx context.Context, identity *models.Identity, orgID string, request *requests.UpdateOrganization) (*models.Organization, error)
	Deactivate(ctx context.Context, identity *models.Identity, orgID string) error
}
