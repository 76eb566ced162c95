package repository

import (
	"context"
	"fmt"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// A delivery that keeps getting stuck in PROCESSING is given up after this many claims
const maxDeliveryAttempts = 5

// MongoDeliveryRepository is the passenger delivery outbox
type MongoDeliveryRepository struct {
	collection *mongo.Collection
}

// NewMongoDeliveryRepository creates the outbox over the "deliveries" collection
func NewMongoDeliveryRepository(db *mongo.Database) repository.DeliveryRepository {
	collection := db.Collection("deliveries")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "processStatus", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "processStatus", Value: 1}, {Key: "processStartedAt", Value: 1}}},
		{Keys: bson.D{{Key: "pnr", Value: 1}, {Key: "notificationId", Value: 1}}},
	})

	return &MongoDeliveryRepository{collection: collection}
}

// SaveMany enqueues deliveries as PENDING
func (r *MongoDeliveryRepository) SaveMany(ctx context.Context, deliveries []*entity.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(deliveries))
	for _, d := range deliveries {
		d.ProcessStatus = entity.StatusPending
		if d.CreatedAt.IsZero() {
			d.CreatedAt = now
		}
		docs = append(docs, d)
	}

	// unordered: one bad document must not hold back the rest of the fan-out
	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to queue deliveries: %w", err)
	}
	return nil
}

// FindUnprocessed returns up to limit PENDING deliveries, oldest first
func (r *MongoDeliveryRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.Delivery, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"processStatus": entity.StatusPending}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending deliveries: %w", err)
	}
	defer cursor.Close(ctx)

	deliveries := make([]*entity.Delivery, 0, limit)
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, fmt.Errorf("failed to decode deliveries: %w", err)
	}
	return deliveries, nil
}

// UpdateStatus moves a delivery to status. Moving to PROCESSING is a claim:
// it only matches a PENDING delivery, so a delivery another dispatcher
// already took yields ErrNotFound.
func (r *MongoDeliveryRepository) UpdateStatus(ctx context.Context, id string, status string, startedAt time.Time) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"processStatus": status}}

	if status == entity.StatusProcessing {
		filter["processStatus"] = entity.StatusPending
		if startedAt.IsZero() {
			startedAt = time.Now().UTC()
		}
		update = bson.M{
			"$set": bson.M{"processStatus": status, "processStartedAt": startedAt},
			"$inc": bson.M{"attempts": 1},
		}
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update delivery %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("delivery %s not claimable: %w", id, entity.ErrNotFound)
	}
	return nil
}

// MarkAsProcessed records the outcome of a send attempt
func (r *MongoDeliveryRepository) MarkAsProcessed(ctx context.Context, id, status, providerRef, errorDetail string) error {
	set := bson.M{
		"processedAt":   time.Now().UTC(),
		"processStatus": status,
		"errorDetail":   errorDetail,
	}
	if providerRef != "" {
		set["providerRef"] = providerRef
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to record delivery %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("delivery %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// ResetProcessingDeliveries returns deliveries stuck in PROCESSING to the
// queue, or fails them once they have used up their attempts
func (r *MongoDeliveryRepository) ResetProcessingDeliveries(ctx context.Context, staleAfter time.Duration) (int64, error) {
	stale := bson.M{
		"processStatus":    entity.StatusProcessing,
		"processStartedAt": bson.M{"$lt": time.Now().UTC().Add(-staleAfter)},
	}

	exhausted := bson.M{"attempts": bson.M{"$gte": maxDeliveryAttempts}}
	for k, v := range stale {
		exhausted[k] = v
	}
	if _, err := r.collection.UpdateMany(ctx, exhausted, bson.M{"$set": bson.M{
		"processStatus": entity.StatusFailed,
		"processedAt":   time.Now().UTC(),
		"errorDetail":   fmt.Sprintf("gave up after %d stale attempts", maxDeliveryAttempts),
	}}); err != nil {
		return 0, fmt.Errorf("failed to expire stale deliveries: %w", err)
	}

	result, err := r.collection.UpdateMany(ctx, stale, bson.M{"$set": bson.M{
		"processStatus": entity.StatusPending,
		"errorDetail":   "reset from stale PROCESSING state",
	}})
	if err != nil {
		return 0, fmt.Errorf("failed to reset stale deliveries: %w", err)
	}
	return result.ModifiedCount, nil
}
