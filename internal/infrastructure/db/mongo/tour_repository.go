package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wildtrails/tours-api/internal/core/domain"
	"github.com/wildtrails/tours-api/internal/core/ports"
)

const toursCollection = "tours"

type TourRepository struct {
	coll *mongo.Collection
}

func NewTourRepository(db *mongo.Database) *TourRepository {
	return &TourRepository{coll: db.Collection(toursCollection)}
}

func (r *TourRepository) Create(ctx context.Context, tour *domain.Tour) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, tour)
	if err != nil {
		return nil, fmt.Errorf("insert tour: %w", err)
	}

	created := *tour
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TourRepository) FindByID(ctx context.Context, id string) (*domain.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var tour domain.Tour
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&tour); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("No tour found with that ID")
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}
	return &tour, nil
}

func (r *TourRepository) FindAll(ctx context.Context, query ports.ListQuery) ([]domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, opts := NewQueryFeatures(query).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Build()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer cursor.Close(ctx)

	tours := make([]domain.Tour, 0)
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("decode tours: %w", err)
	}
	return tours, nil
}

func (r *TourRepository) Update(ctx context.Context, id string, update ports.TourUpdate) (*domain.Tour, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.MaxGroupSize != nil {
		set["max_group_size"] = *update.MaxGroupSize
	}
	if update.Difficulty != nil {
		set["difficulty"] = *update.Difficulty
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Summary != nil {
		set["summary"] = *update.Summary
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	after := options.After
	var tour domain.Tour
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&tour)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("No tour found with that ID")
		}
		return nil, fmt.Errorf("update tour: %w", err)
	}
	return &tour, nil
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("no document found!")
	}
	return nil
}

// Stats groups highly rated tours (ratings_average >= 4.5) by difficulty,
// reporting counts and price spread, hardest difficulties sorted by average
// price descending and EASY excluded.
func (r *TourRepository) Stats(ctx context.Context) ([]domain.TourStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "ratings_average", Value: bson.D{{Key: "$gte", Value: 4.5}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$toUpper", Value: "$difficulty"}}},
			{Key: "num_tours", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "num_ratings", Value: bson.D{{Key: "$sum", Value: "$ratings_quantity"}}},
			{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$ratings_average"}}},
			{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "min_price", Value: bson.D{{Key: "$min", Value: "$price"}}},
			{Key: "max_price", Value: bson.D{{Key: "$max", Value: "$price"}}},
			{Key: "tours", Value: bson.D{{Key: "$push", Value: "$name"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "avg_price", Value: -1}}}},
		{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$ne", Value: "EASY"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("tour stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := make([]domain.TourStats, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode tour stats: %w", err)
	}
	return stats, nil
}

// MonthlyPlan unwinds start dates within the given year and returns the three
// busiest months by number of tour starts.
func (r *TourRepository) MonthlyPlan(ctx context.Context, year int) ([]domain.MonthlyPlanEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$start_dates"}},
		{{Key: "$match", Value: bson.D{
			{Key: "start_dates", Value: bson.D{
				{Key: "$gte", Value: from},
				{Key: "$lte", Value: to},
			}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$month", Value: "$start_dates"}}},
			{Key: "num_tour_starts", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "tours", Value: bson.D{{Key: "$push", Value: "$name"}}},
		}}},
		{{Key: "$addFields", Value: bson.D{{Key: "month", Value: "$_id"}}}},
		{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}}}},
		{{Key: "$sort", Value: bson.D{{Key: "num_tour_starts", Value: -1}}}},
		{{Key: "$limit", Value: 3}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("monthly plan: %w", err)
	}
	defer cursor.Close(ctx)

	plan := make([]domain.MonthlyPlanEntry, 0)
	if err := cursor.All(ctx, &plan); err != nil {
		return nil, fmt.Errorf("decode monthly plan: %w", err)
	}
	return plan, nil
}

// EnsureIndexes creates indexes backing the common list filters and sorts.
func (r *TourRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "ratings_average", Value: -1}}},
		{Keys: bson.D{{Key: "start_dates", Value: 1}}},
	})
	return err
}
