package donations

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

type DonationMongoRepository struct {
	Collection *mongo.Collection
}

func NewDonationMongoRepository(db *mongo.Client, dbName string) contracts.DonationRepository {
	return &DonationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDonations),
	}
}

func (r *DonationMongoRepository) Create(ctx context.Context, donation *models.Donation) error {
	_, err := r.Collection.InsertOne(ctx, donation)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *DonationMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Donation, error) {
	var donation models.Donation
	err := r.Collection.FindOne(ctx, filter).Decode(&donation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &donation, nil
}

func (r *DonationMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Donation, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"collected_at": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Donation
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, total, nil
}

func (r *DonationMongoRepository) Update(ctx context.Context, donation *models.Donation) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": donation.ID}, bson.M{"$set": donation})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DonationMongoRepository) UpdateStatus(ctx context.Context, donationID, status string) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"id": donationID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DonationMongoRepository) AggregateSummary(ctx context.Context, filter bson.M) ([]models.DonationSummaryRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":       "$blood_type",
			"count":     bson.M{"$sum": 1},
			"volume_ml": bson.M{"$sum": "$volume_ml"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"blood_type": "$_id",
			"count":      1,
			"volume_ml":  1,
		}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []models.DonationSummaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rows, nil
}
