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

const usersCollection = "users"

// UserRepository persists users. Every read applies the soft-delete filter:
// documents with active=false are invisible to all default lookups.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Email             string             `bson:"email"`
	Photo             string             `bson:"photo,omitempty"`
	PasswordHash      string             `bson:"password_hash"`
	Role              string             `bson:"role"`
	Active            bool               `bson:"active"`
	PasswordChangedAt time.Time          `bson:"password_changed_at,omitempty"`
	ResetTokenHash    string             `bson:"reset_token_hash,omitempty"`
	ResetTokenExpires time.Time          `bson:"reset_token_expires,omitempty"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Email:             d.Email,
		Photo:             d.Photo,
		PasswordHash:      d.PasswordHash,
		Role:              d.Role,
		Active:            d.Active,
		PasswordChangedAt: d.PasswordChangedAt,
		ResetTokenHash:    d.ResetTokenHash,
		ResetTokenExpires: d.ResetTokenExpires,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// notDeactivated hides soft-deleted users from default reads.
func notDeactivated() bson.M {
	return bson.M{"active": bson.M{"$ne": false}}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Name:              user.Name,
		Email:             user.Email,
		Photo:             user.Photo,
		PasswordHash:      user.PasswordHash,
		Role:              user.Role,
		Active:            user.Active,
		PasswordChangedAt: user.PasswordChangedAt,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// Duplicate email keeps its driver error shape for the classifier.
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := notDeactivated()
	filter["_id"] = oid

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("No user found with that ID")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := notDeactivated()
	filter["email"] = email

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("No user found with that email")
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := notDeactivated()
	filter["reset_token_hash"] = tokenHash
	filter["reset_token_expires"] = bson.M{"$gt": now}

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("no pending reset ticket")
		}
		return nil, fmt.Errorf("find user by reset token: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context, query ports.ListQuery) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, opts := NewQueryFeatures(query).
		Filter().
		Sort().
		LimitFields().
		Paginate().
		Build()
	filter["active"] = bson.M{"$ne": false}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := notDeactivated()
	filter["_id"] = oid

	after := options.After
	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		&options.FindOneAndUpdateOptions{ReturnDocument: &after}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("No user found with that ID")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"password_hash":       passwordHash,
			"password_changed_at": changedAt,
			"updated_at":          time.Now().UTC(),
		},
		"$unset": bson.M{
			"reset_token_hash":    "",
			"reset_token_expires": "",
		},
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("No user found with that ID")
	}
	return nil
}

func (r *UserRepository) SetResetTicket(ctx context.Context, id, tokenHash string, expires time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"reset_token_hash":    tokenHash,
			"reset_token_expires": expires,
		},
	})
	if err != nil {
		return fmt.Errorf("set reset ticket: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("No user found with that ID")
	}
	return nil
}

func (r *UserRepository) ClearResetTicket(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.coll.UpdateByID(ctx, oid, bson.M{
		"$unset": bson.M{
			"reset_token_hash":    "",
			"reset_token_expires": "",
		},
	})
	if err != nil {
		return fmt.Errorf("clear reset ticket: %w", err)
	}
	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"active": false, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("No user found with that ID")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("no document found!")
	}
	return nil
}

// EnsureIndexes creates the unique email index. Email uniqueness is enforced
// here; case-insensitivity comes from lowercasing at every write and lookup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "reset_token_hash", Value: 1}}},
	})
	return err
}

// objectID parses a hex document id, reporting a cast error with the offending
// value when it is malformed.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewCast(fmt.Sprintf("invalid _id: %s", id))
	}
	return oid, nil
}
