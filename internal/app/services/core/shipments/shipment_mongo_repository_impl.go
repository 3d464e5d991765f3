package shipments

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

type ShipmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewShipmentMongoRepository(db *mongo.Client, dbName string) contracts.ShipmentRepository {
	return &ShipmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionShipments),
	}
}

func (r *ShipmentMongoRepository) Create(ctx context.Context, shipment *models.Shipment) error {
	_, err := r.Collection.InsertOne(ctx, shipment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ShipmentMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.Collection.FindOne(ctx, filter).Decode(&shipment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &shipment, nil
}

func (r *ShipmentMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Shipment, int64, error) {
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

	var result []models.Shipment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (r *ShipmentMongoRepository) Update(ctx context.Context, shipment *models.Shipment) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": shipment.ID}, bson.M{"$set": shipment})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ShipmentMongoRepository) AppendTemperatureReading(ctx context.Context, shipmentID string, reading models.TemperatureReading) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"id": shipmentID},
		bson.M{
			"$push": bson.M{"temperature_log": reading},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
