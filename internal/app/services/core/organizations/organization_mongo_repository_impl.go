package organizations

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

type OrganizationMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrganizationMongoRepository(db *mongo.Client, dbName string) contracts.OrganizationRepository {
	return &OrganizationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOrganizations),
	}
}

func (r *OrganizationMongoRepository) Create(ctx context.Context, org *models.Organization) error {
	_, err := r.Collection.InsertOne(ctx, org)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *OrganizationMongoRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	err := r.Collection.FindOne(ctx, bson.M{"id": id}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &org, nil
}

func (r *OrganizationMongoRepository) FindByOrgCode(ctx context.Context, orgCode string) (*models.Organization, error) {
	var org models.Organization
	err := r.Collection.FindOne(ctx, bson.M{"org_code": orgCode}).Decode(&org)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &org, nil
}

func (r *OrganizationMongoRepository) FindAllActive(ctx context.Context) ([]models.Organization, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orgs, nil
}

func (r *OrganizationMongoRepository) FindActiveChildren(ctx context.Context, parentOrgID string) ([]models.Organization, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"parent_org_id": parentOrgID, "is_active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orgs, nil
}

func (r *OrganizationMongoRepository) FindWithFilter(ctx context.Context, filter bson.M, page, pageSize int) ([]models.Organization, int64, error) {
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

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orgs, total, nil
}

func (r *OrganizationMongoRepository) Update(ctx context.Context, org *models.Organization) error {
	_, err := r.Collection.UpdateOne(ctx, bson.M{"id": org.ID}, bson.M{"$set": org})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
