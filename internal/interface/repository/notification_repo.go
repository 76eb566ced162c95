package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepository implements the NotificationRepository interface.
// Documents are only ever inserted.
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

// NewMongoNotificationRepository creates a new MongoDB notification repository
func NewMongoNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	collection := db.Collection("notifications")

	ctx := context.Background()

	// Feed reads are always per PNR, newest first
	feedIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "pnr", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	}

	flightIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "airportCode", Value: 1},
			{Key: "flightId", Value: 1},
			{Key: "type", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{feedIndex, flightIndex})

	return &MongoNotificationRepository{
		collection: collection,
	}
}

func prepareNotification(n *entity.Notification, now time.Time) {
	if n.ID == "" {
		n.ID = primitive.NewObjectID().Hex()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
}

// Append stores one notification and returns its id
func (r *MongoNotificationRepository) Append(ctx context.Context, notification *entity.Notification) (string, error) {
	prepareNotification(notification, time.Now().UTC())

	if _, err := r.collection.InsertOne(ctx, notification); err != nil {
		return "", fmt.Errorf("failed to append notification: %w", err)
	}
	return notification.ID, nil
}

// AppendMany stores a fan-out batch in one round trip
func (r *MongoNotificationRepository) AppendMany(ctx context.Context, notifications []*entity.Notification) ([]string, error) {
	if len(notifications) == 0 {
		return []string{}, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(notifications))
	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		prepareNotification(n, now)
		docs = append(docs, n)
		ids = append(ids, n.ID)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to append notifications: %w", err)
	}
	return ids, nil
}

// ListByPNR returns the full history of a PNR, newest first
func (r *MongoNotificationRepository) ListByPNR(ctx context.Context, pnr string) ([]entity.Notification, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{"pnr": pnr}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := make([]entity.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}

// LatestDisruption finds the newest DELAYED or CANCELLED entry of a PNR on a flight
func (r *MongoNotificationRepository) LatestDisruption(ctx context.Context, pnr, airportCode, flightID string) (*entity.Notification, error) {
	filter := bson.M{
		"pnr":         pnr,
		"airportCode": airportCode,
		"flightId":    flightID,
		"type": bson.M{"$in": []entity.NotificationType{
			entity.NotificationDelayed,
			entity.NotificationCancelled,
		}},
	}
	opts := options.FindOne().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})

	var notification entity.Notification
	err := r.collection.FindOne(ctx, filter, opts).Decode(&notification)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("disruption for %s on %s/%s: %w", pnr, airportCode, flightID, entity.ErrNotFound)
		}
		return nil, err
	}
	return &notification, nil
}
