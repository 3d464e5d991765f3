package screenings

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

type ScreeningMongoRepository struct {
	Collection *mongo.Collection
}

func NewScreeningMongoRepository(db *mongo.Client, dbName string) contracts.ScreeningRepository {
	return &ScreeningMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionScreenings),
	}
}

func (r *ScreeningMongoRepository) Create(ctx context.Context, screening *models.Screening) error {
	_, err := r.Collection.InsertOne(ctx, screening)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ScreeningMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Screening, error) {
	var screening models.Screening
	err := r.Collection.FindOne(ctx, filter).Decode(&screening)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &screening, nil
}

func (r *ScreeningMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Screening, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Screening
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}
