package auth

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

type SessionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionMongoRepository(db *mongo.Client, dbName string) contracts.SessionRepository {
	return &SessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUserSessions),
	}
}

func (r *SessionMongoRepository) Create(ctx context.Context, session *models.Session) error {
	_, err := r.Collection.InsertOne(ctx, session)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *SessionMongoRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.Collection.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) FindActiveByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	var session models.Session
	err := r.Collection.FindOne(ctx, bson.M{"token_hash": tokenHash, "is_active": true}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) FindActiveByUser(ctx context.Context, userID string) ([]models.Session, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"user_id": userID, "is_active": true}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sessions, nil
}

func (r *SessionMongoRepository) FindMostRecentActiveByUser(ctx context.Context, userID string) (*models.Session, error) {
	findOptions := options.FindOne().SetSort(bson.M{"created_at": -1})
	var session models.Session
	err := r.Collection.FindOne(ctx, bson.M{"user_id": userID, "is_active": true}, findOptions).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) UpdateLastActivity(ctx context.Context, sessionID string, at time.Time) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"id": sessionID, "is_active": true},
		bson.M{"$set": bson.M{"last_activity": at}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SessionMongoRepository) Terminate(ctx context.Context, sessionID, terminatedBy, reason string, at time.Time) error {
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"id": sessionID, "is_active": true},
		bson.M{"$set": bson.M{
			"is_active":          false,
			"terminated_at":      at,
			"terminated_by":      terminatedBy,
			"termination_reason": reason,
		}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SessionMongoRepository) TerminateAllForUser(ctx context.Context, userID, exceptSessionID, terminatedBy, reason string, at time.Time) (int64, error) {
	filter := bson.M{"user_id": userID, "is_active": true}
	if exceptSessionID != "" {
		filter["id"] = bson.M{"$ne": exceptSessionID}
	}
	result, err := r.Collection.UpdateMany(ctx, filter, bson.M{"$set": bson.M{
		"is_active":          false,
		"terminated_at":      at,
		"terminated_by":      terminatedBy,
		"termination_reason": reason,
	}})
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *SessionMongoRepository) FindActiveIdleSince(ctx context.Context, cutoff time.Time) ([]models.Session, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"is_active": true, "last_activity": bson.M{"$lt": cutoff}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessions []models.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sessions, nil
}

func (r *SessionMongoRepository) TerminateIdleSince(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	now := time.Now().UTC()
	result, err := r.Collection.UpdateMany(ctx,
		bson.M{"is_active": true, "last_activity": bson.M{"$lt": cutoff}},
		bson.M{"$set": bson.M{
			"is_active":          false,
			"terminated_at":      now,
			"termination_reason": reason,
		}},
	)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount, nil
}

func (r *SessionMongoRepository) FindUserIDsOverCap(ctx context.Context, cap int) ([]string, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"is_active": true}}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$user_id", "count": bson.M{"$sum": 1}}}},
		bson.D{{Key: "$match", Value: bson.M{"count": bson.M{"$gt": cap}}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		UserID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	userIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}
	return userIDs, nil
}
