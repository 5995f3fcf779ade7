package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes for every collection. Called once at
// startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := NewTourRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return NewReviewRepository(db).EnsureIndexes(ctx)
}
