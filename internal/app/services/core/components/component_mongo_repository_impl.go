package components

import (
	"context"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ComponentMongoRepository struct {
	Collection *mongo.Collection
}

func NewComponentMongoRepository(db *mongo.Client, dbName string) contracts.ComponentRepository {
	return &ComponentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBloodComponents),
	}
}

func (r *ComponentMongoRepository) CreateMany(ctx context.Context, components []models.BloodComponent) error {
	docs := make([]interface{}, len(components))
	for i := range components {
		docs[i] = components[i]
	}
	_, err := r.Collection.InsertMany(ctx, docs)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ComponentMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.BloodComponent, error) {
	var component models.BloodComponent
	err := r.Collection.FindOne(ctx, filter).Decode(&component)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &component, nil
}

func (r *ComponentMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.BloodComponent, int64, error) {
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

	var result []models.BloodComponent
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (r *ComponentMongoRepository) Update(ctx context.Context, component *models.BloodComponent) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": component.ID}, bson.M{"$set": component})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ComponentMongoRepository) UpdateManyStatusByDonation(ctx context.Context, donationID, qcStatus string) error {
	_, err := r.Collection.UpdateMany(ctx,
		bson.M{"donation_id": donationID},
		bson.M{"$set": bson.M{"qc_status": qcStatus, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
