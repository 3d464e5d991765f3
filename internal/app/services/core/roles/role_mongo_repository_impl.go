package roles

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoleMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoleMongoRepository(db *mongo.Client, dbName string) contracts.RoleRepository {
	return &RoleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRoles),
	}
}

func (r *RoleMongoRepository) Create(ctx context.Context, role *models.Role) error {
	_, err := r.Collection.InsertOne(ctx, role)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *RoleMongoRepository) FindByID(ctx context.Context, id string) (*models.Role, error) {
	var role models.Role
	err := r.Collection.FindOne(ctx, bson.M{"id": id}).Decode(&role)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &role, nil
}

func (r *RoleMongoRepository) FindSystemRoleByKey(ctx context.Context, roleKey string) (*models.Role, error) {
	var role models.Role
	err := r.Collection.FindOne(ctx, bson.M{"role_key": roleKey, "is_system_role": true}).Decode(&role)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &role, nil
}

func (r *RoleMongoRepository) FindByNameInOrg(ctx context.Context, name, orgID string) (*models.Role, error) {
	var role models.Role
	err := r.Collection.FindOne(ctx, bson.M{"name": name, "org_id": orgID}).Decode(&role)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &role, nil
}

func (r *RoleMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Role, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"name": 1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Role
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (r *RoleMongoRepository) Update(ctx context.Context, role *models.Role) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": role.ID}, bson.M{"$set": role})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *RoleMongoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
