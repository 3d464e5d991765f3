package donors

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

type DonorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDonorMongoRepository(db *mongo.Client, dbName string) contracts.DonorRepository {
	return &DonorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDonors),
	}
}

func (r *DonorMongoRepository) Create(ctx context.Context, donor *models.Donor) error {
	_, err := r.Collection.InsertOne(ctx, donor)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *DonorMongoRepository) FindByID(ctx context.Context, id string) (*models.Donor, error) {
	return r.FindOneWithFilter(ctx, bson.M{"id": id})
}

func (r *DonorMongoRepository) FindOneWithFilter(ctx context.Context, filter bson.M) (*models.Donor, error) {
	var donor models.Donor
	err := r.Collection.FindOne(ctx, filter).Decode(&donor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &donor, nil
}

func (r *DonorMongoRepository) FindByDonorCode(ctx context.Context, donorCode string) (*models.Donor, error) {
	return r.FindOneWithFilter(ctx, bson.M{"donor_code": donorCode})
}

func (r *DonorMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Donor, int64, error) {
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.M{"full_name": 1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var donorsList []models.Donor
	if err := cursor.All(ctx, &donorsList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return donorsList, total, nil
}

func (r *DonorMongoRepository) Update(ctx context.Context, donor *models.Donor) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": donor.ID}, bson.M{"$set": donor})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
