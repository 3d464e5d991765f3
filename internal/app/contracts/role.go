package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	FindByID(ctx context.Context, id string) (*models.Role, error)
	FindSystemRoleByKey(ctx context.Context, roleKey string) (*models.Role, error)
	FindByNameInOrg(ctx context.Context, name, orgID string) (*models.Role, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Role, int64, error)
	Update(ctx context.Context, role *models.Role) error
	DeleteByID(ctx context.Context, id string) error
}

type RoleUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateRole) (*models.Role, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.Role, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, roleID string) (*models.Role, error)
	Update(ctx context.Context, identity *models.Identity, roleID string, request *requests.UpdateRole) (*models.Role, error)
	Delete(ctx context.Context, identity *models.Identity, roleID string) error
}
