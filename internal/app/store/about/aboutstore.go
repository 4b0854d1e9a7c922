// internal/app/store/about/aboutstore.go
package aboutstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/coophub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the about collection, which holds exactly one
// document once it has been read.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("about")}
}

var singleton = bson.M{"key": models.AboutKey}

// GetOrCreate returns the About page, inserting the default payload if the
// collection is empty. The insert is an atomic upsert on key; if two first
// reads race, the unique index on key makes the loser fail with a duplicate
// key error and it reads the winner's document instead.
func (s *Store) GetOrCreate(ctx context.Context) (models.AboutPage, error) {
	def := models.DefaultAboutPage()
	def.ID = primitive.NewObjectID()
	def.Key = "" // supplied by the filter on insert

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var page models.AboutPage
	err := s.c.FindOneAndUpdate(ctx, singleton, bson.M{"$setOnInsert": def}, opts).Decode(&page)
	if err != nil && wafflemongo.IsDup(err) {
		err = s.c.FindOne(ctx, singleton).Decode(&page)
	}
	if err != nil {
		return models.AboutPage{}, err
	}
	return page, nil
}

// Save replaces the stored page with page, stamping updated_at. The whole
// document is written; there is no field-level merge at this layer.
func (s *Store) Save(ctx context.Context, page *models.AboutPage) error {
	if page.ID.IsZero() {
		return errors.New("aboutstore: save without id")
	}
	page.Key = models.AboutKey
	page.UpdatedAt = time.Now().UTC()
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": page.ID}, page)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the number of about documents. Used by tests and health
// reporting.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
