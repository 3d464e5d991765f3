package contracts

import (
	"context"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, login string) (*models.User, error)
	FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.User, int64, error)
	CountByCustomRoleID(ctx context.Context, roleID string) (int64, error)
	Update(ctx context.Context, user *models.User) error
}

type UserUsecase interface {
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateUser) (*models.User, error)
	List(ctx context.Context, identity *models.Identity, page, pageSize int) ([]models.User, int64, error)
	GetByID(ctx context.Context, identity *models.Identity, userID string) (*models.User, error)
	Update(ctx context.Context, identity *models.Identity, userID string, request *requests.UpdateUser) (*models.User, error)
	Deactivate(ctx context.Context, identity *models.Identity, userID string) error
}
