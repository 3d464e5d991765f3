package bloodrequests

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

type BloodRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewBloodRequestMongoRepository(db *mongo.Client, dbName string) contracts.BloodRequestRepository {
	return &BloodRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBloodRequests),
	}
}

func (r *BloodRequestMongoRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	_, err := r.Collection.InsertOne(ctx, request)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *BloodRequestMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := r.Collection.FindOne(ctx, filter).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &request, nil
}

func (r *BloodRequestMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.BloodRequest, int64, error) {
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

	var result []models.BloodRequest
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (r *BloodRequestMongoRepository) Update(ctx context.Context, request *models.BloodRequest) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": request.ID}, bson.M{"$set": request})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BloodRequestMongoRepository) AggregateTurnaround(ctx context.Context, filter bson.M) (int64, float64, error) {
	match := bson.M{"decided_at": bson.M{"$ne": nil}}
	for key, value := range filter {
		match[key] = value
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$project", Value: bson.M{
			"decision_ms": bson.M{"$subtract": bson.A{"$decided_at", "$createdAt"}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":             nil,
			"total":           bson.M{"$sum": 1},
			"avg_decision_ms": bson.M{"$avg": "$decision_ms"},
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Total         int64   `bson:"total"`
		AvgDecisionMS float64 `bson:"avg_decision_ms"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Total, rows[0].AvgDecisionMS / float64(time.Hour.Milliseconds()), nil
}
