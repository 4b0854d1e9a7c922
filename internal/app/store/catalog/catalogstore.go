// Package catalogstore persists the ordered, toggleable catalogs: saving
// schemes, loan schemes, additional facilities and team members. All of
// them share models.CatalogFields, so one generic Store serves every
// collection.
package catalogstore

import (
	"context"
	"time"

	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	SavingSchemes        = "saving_schemes"
	LoanSchemes          = "loan_schemes"
	AdditionalFacilities = "additional_facilities"
	TeamMembers          = "team_members"
)

// Collections lists every catalog collection.
var Collections = []string{SavingSchemes, LoanSchemes, AdditionalFacilities, TeamMembers}

// Entry is satisfied by pointers to catalog documents.
type Entry[T any] interface {
	*T
	Base() *models.CatalogFields
}

type Store[T any, P Entry[T]] struct {
	c *mongo.Collection
}

func New[T any, P Entry[T]](db *mongo.Database, collection string) *Store[T, P] {
	return &Store[T, P]{c: db.Collection(collection)}
}

func NewSavingSchemes(db *mongo.Database) *Store[models.SavingScheme, *models.SavingScheme] {
	return New[models.SavingScheme](db, SavingSchemes)
}

func NewLoanSchemes(db *mongo.Database) *Store[models.LoanScheme, *models.LoanScheme] {
	return New[models.LoanScheme](db, LoanSchemes)
}

func NewFacilities(db *mongo.Database) *Store[models.AdditionalFacility, *models.AdditionalFacility] {
	return New[models.AdditionalFacility](db, AdditionalFacilities)
}

func NewTeamMembers(db *mongo.Database) *Store[models.TeamMember, *models.TeamMember] {
	return New[models.TeamMember](db, TeamMembers)
}

var byOrder = bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func (s *Store[T, P]) find(ctx context.Context, q bson.M) ([]T, error) {
	cur, err := s.c.Find(ctx, q, options.Find().SetSort(byOrder))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive returns active entries by display order.
func (s *Store[T, P]) ListActive(ctx context.Context) ([]T, error) {
	return s.find(ctx, bson.M{"is_active": true})
}

// ListAll returns every entry by display order.
func (s *Store[T, P]) ListAll(ctx context.Context) ([]T, error) {
	return s.find(ctx, bson.M{})
}

// Get returns mongo.ErrNoDocuments if absent.
func (s *Store[T, P]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	var v T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	return v, err
}

// Create inserts v with a fresh id. An unset active flag means active.
func (s *Store[T, P]) Create(ctx context.Context, v T) (T, error) {
	b := P(&v).Base()
	b.ID = primitive.NewObjectID()
	if b.IsActive == nil {
		active := true
		b.IsActive = &active
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now

	if _, err := s.c.InsertOne(ctx, v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Update loads the entry, lets fn modify it and replaces it. The id and
// creation time cannot be changed by fn.
func (s *Store[T, P]) Update(ctx context.Context, id primitive.ObjectID, fn func(*T) error) (T, error) {
	var zero T
	v, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	orig := *P(&v).Base()
	if err := fn(&v); err != nil {
		return zero, err
	}
	b := P(&v).Base()
	b.ID, b.CreatedAt = orig.ID, orig.CreatedAt
	if b.IsActive == nil {
		b.IsActive = orig.IsActive
	}
	b.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, v)
	if err != nil {
		return zero, err
	}
	if res.MatchedCount == 0 {
		return zero, mongo.ErrNoDocuments
	}
	return v, nil
}

// Toggle flips the active flag atomically and returns the updated entry.
func (s *Store[T, P]) Toggle(ctx context.Context, id primitive.ObjectID) (T, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"is_active":  bson.M{"$not": bson.A{"$is_active"}},
			"updated_at": time.Now().UTC(),
		}}},
	}
	var v T
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&v)
	return v, err
}

// Delete removes the entry; mongo.ErrNoDocuments if it did not exist.
func (s *Store[T, P]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
