package labtests

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

type LabTestMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabTestMongoRepository(db *mongo.Client, dbName string) contracts.LabTestRepository {
	return &LabTestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabTests),
	}
}

func (r *LabTestMongoRepository) Create(ctx context.Context, labTest *models.LabTest) error {
	_, err := r.Collection.InsertOne(ctx, labTest)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *LabTestMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.LabTest, error) {
	var labTest models.LabTest
	err := r.Collection.FindOne(ctx, filter).Decode(&labTest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &labTest, nil
}

func (r *LabTestMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.LabTest, int64, error) {
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

	var result []models.LabTest
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}
