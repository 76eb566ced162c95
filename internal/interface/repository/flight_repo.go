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

// MongoFlightRepository implements FlightRepository
type MongoFlightRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRepository creates a new flight registry repository
func NewMongoFlightRepository(db *mongo.Database) repository.FlightRepository {
	collection := db.Collection("flights")

	ctx := context.Background()
	keyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "airportCode", Value: 1},
			{Key: "flightId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}

	// Route lookups from the search surface
	routeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "source", Value: 1},
			{Key: "destination", Value: 1},
		},
	}

	pnrIndex := mongo.IndexModel{
		Keys: bson.M{"passengers.pnr": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{keyIndex, routeIndex, pnrIndex})

	return &MongoFlightRepository{
		collection: collection,
	}
}

func keyFilter(airportCode, flightID string) bson.M {
	return bson.M{"airportCode": airportCode, "flightId": flightID}
}

// Create registers a new flight; a second registration of the same key fails
func (r *MongoFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	now := time.Now().UTC()
	if flight.ID == "" {
		flight.ID = primitive.NewObjectID().Hex()
	}
	flight.CreatedAt = now
	flight.UpdatedAt = now
	if flight.Passengers == nil {
		flight.Passengers = []entity.Passenger{}
	}

	if _, err := r.collection.InsertOne(ctx, flight); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("flight %s/%s: %w", flight.AirportCode, flight.FlightID, entity.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert flight: %w", err)
	}
	return nil
}

// Upsert loads the schedule and manifest of a flight. Status and departure
// time are written only on insert; an existing flight keeps the state the
// status processor gave it, and a cancelled flight is left untouched.
func (r *MongoFlightRepository) Upsert(ctx context.Context, flight *entity.Flight) error {
	now := time.Now().UTC()
	flight.UpdatedAt = now
	if flight.Passengers == nil {
		flight.Passengers = []entity.Passenger{}
	}

	filter := keyFilter(flight.AirportCode, flight.FlightID)
	filter["status"] = bson.M{"$ne": entity.FlightCancelled}

	opts := options.Update().SetUpsert(true)
	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{
			"$set": bson.M{
				"airline":     flight.Airline,
				"source":      flight.Source,
				"destination": flight.Destination,
				"arrivalTime": flight.ArrivalTime,
				"passengers":  flight.Passengers,
				"updatedAt":   now,
			},
			"$setOnInsert": bson.M{
				"_id":       primitive.NewObjectID().Hex(),
				"status":    flight.Status,
				"depTime":   flight.DepTime,
				"createdAt": now,
			},
		},
		opts,
	)
	if err != nil {
		// The key exists but the status filter excluded it
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("flight %s/%s: %w", flight.AirportCode, flight.FlightID, entity.ErrFlightCancelled)
		}
		return fmt.Errorf("failed to upsert flight: %w", err)
	}

	if result.UpsertedCount > 0 {
		if id, ok := result.UpsertedID.(string); ok {
			flight.ID = id
		}
		flight.CreatedAt = now
	}
	return nil
}

// FindByKey finds a flight by airport and flight id
func (r *MongoFlightRepository) FindByKey(ctx context.Context, airportCode, flightID string) (*entity.Flight, error) {
	var flight entity.Flight
	err := r.collection.FindOne(ctx, keyFilter(airportCode, flightID)).Decode(&flight)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("flight %s/%s: %w", airportCode, flightID, entity.ErrNotFound)
		}
		return nil, err
	}
	return &flight, nil
}

// List returns the flights matching filter ordered by airport and departure
func (r *MongoFlightRepository) List(ctx context.Context, filter entity.FlightFilter) ([]*entity.Flight, error) {
	query := bson.M{}
	if filter.AirportCode != "" {
		query["airportCode"] = filter.AirportCode
	}
	if filter.Source != "" {
		query["source"] = filter.Source
	}
	if filter.Destination != "" {
		query["destination"] = filter.Destination
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "airportCode", Value: 1},
		{Key: "depTime", Value: 1},
		{Key: "flightId", Value: 1},
	})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	defer cursor.Close(ctx)

	flights := make([]*entity.Flight, 0)
	if err := cursor.All(ctx, &flights); err != nil {
		return nil, fmt.Errorf("failed to decode flights: %w", err)
	}
	return flights, nil
}

// UpdateStatus writes a delay or cancellation and returns the updated flight.
// A cancelled flight is never matched, so the write cannot leave the terminal state.
// Concurrent writers to the same flight are last-write-wins.
func (r *MongoFlightRepository) UpdateStatus(ctx context.Context, airportCode, flightID string, update entity.StatusUpdate) (*entity.Flight, error) {
	set := bson.M{
		"status":    update.Status,
		"updatedAt": time.Now().UTC(),
	}
	if update.DepTime != "" {
		set["depTime"] = update.DepTime
	}
	if update.DelayMinutes != nil {
		set["delayMinutes"] = *update.DelayMinutes
	}
	if update.Delay != "" {
		set["delay"] = update.Delay
	}

	filter := keyFilter(airportCode, flightID)
	filter["status"] = bson.M{"$ne": entity.FlightCancelled}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var flight entity.Flight
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&flight)
	if err == nil {
		return &flight, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update flight status: %w", err)
	}

	// Either the flight is unknown or it is already cancelled
	if _, findErr := r.FindByKey(ctx, airportCode, flightID); findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("flight %s/%s: %w", airportCode, flightID, entity.ErrFlightCancelled)
}

// MarkPassengerNotified flips notification_sent for one manifest entry
func (r *MongoFlightRepository) MarkPassengerNotified(ctx context.Context, airportCode, flightID, passengerID string) error {
	filter := keyFilter(airportCode, flightID)
	filter["passengers.passengerId"] = passengerID

	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{"$set": bson.M{
			"passengers.$.notificationSent": true,
			"updatedAt":                     time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark passenger notified: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("passenger %s on %s/%s: %w", passengerID, airportCode, flightID, entity.ErrNotFound)
	}
	return nil
}
