package inventory

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

type InventoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewInventoryMongoRepository(db *mongo.Client, dbName string) contracts.InventoryRepository {
	return &InventoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInventoryItems),
	}
}

func (r *InventoryMongoRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	_, err := r.Collection.InsertOne(ctx, item)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *InventoryMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.Collection.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *InventoryMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.InventoryItem, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"expires_at": 1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.InventoryItem
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (r *InventoryMongoRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// ReserveAvailable flips up to quantity matching available units to reserved,
// oldest expiry first, and reports how many it actually reserved.
func (r *InventoryMongoRepository) ReserveAvailable(ctx context.Context, orgID, bloodType, componentType, requestID string, quantity int) (int64, error) {
	filter := bson.M{
		"org_id":         orgID,
		"blood_type":     bloodType,
		"component_type": componentType,
		"status":         models.InventoryStatusAvailable,
		"expires_at":     bson.M{"$gt": time.Now().UTC()},
	}
	findOptions := options.Find().
		SetSort(bson.M{"expires_at": 1}).
		SetLimit(int64(quantity)).
		SetProjection(bson.M{"id": 1})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := r.Collection.UpdateMany(ctx,
		bson.M{"id": bson.M{"$in": ids}, "status": models.InventoryStatusAvailable},
		bson.M{"$set": bson.M{
			"status":       models.InventoryStatusReserved,
			"reserved_for": requestID,
			"updatedAt":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *InventoryMongoRepository) IssueReserved(ctx context.Context, requestID string) (int64, error) {
	result, err := r.Collection.UpdateMany(ctx,
		bson.M{"reserved_for": requestID, "status": models.InventoryStatusReserved},
		bson.M{"$set": bson.M{
			"status":    models.InventoryStatusIssued,
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

// ReleaseReserved returns a request's still-reserved units to the available
// pool, clearing the reservation marker.
func (r *InventoryMongoRepository) ReleaseReserved(ctx context.Context, requestID string) (int64, error) {
	result, err := r.Collection.UpdateMany(ctx,
		bson.M{"reserved_for": requestID, "status": models.InventoryStatusReserved},
		bson.M{
			"$set": bson.M{
				"status":    models.InventoryStatusAvailable,
				"updatedAt": time.Now().UTC(),
			},
			"$unset": bson.M{"reserved_for": ""},
		},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *InventoryMongoRepository) DiscardExpired(ctx context.Context, filter bson.M) (int64, error) {
	merged := bson.M{
		"status":     models.InventoryStatusAvailable,
		"expires_at": bson.M{"$lt": time.Now().UTC()},
	}
	for key, value := range filter {
		merged[key] = value
	}

	result, err := r.Collection.UpdateMany(ctx, merged, bson.M{"$set": bson.M{
		"status":    models.InventoryStatusExpired,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *InventoryMongoRepository) AggregateStock(ctx context.Context, filter bson.M) ([]models.StockSummary, error) {
	match := bson.M{"status": models.InventoryStatusAvailable}
	for key, value := range filter {
		match[key] = value
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"blood_type": "$blood_type", "component_type": "$component_type"},
			"units": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"blood_type":     "$_id.blood_type",
			"component_type": "$_id.component_type",
			"units":          1,
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var summary []models.StockSummary
	if err := cursor.All(ctx, &summary); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return summary, nil
}
