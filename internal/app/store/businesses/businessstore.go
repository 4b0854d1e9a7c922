package businessstore

import (
	"context"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/normalize"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/app/system/slug"
	"github.com/dalemusser/coophub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrDuplicateBusiness is returned when the name's slug is already taken.
	ErrDuplicateBusiness = apperr.Duplicate("A business with this name already exists")
	// ErrEmptySlug is returned for names with no letters or digits.
	ErrEmptySlug = apperr.Validation("Validation failed", apperr.FieldError{
		Field:   "name",
		Message: "name must contain at least one letter or digit",
	})
	// ErrInvalidCategory is returned for a category outside
	// models.BusinessCategories.
	ErrInvalidCategory = apperr.Validation("Validation failed", apperr.FieldError{
		Field:   "category",
		Message: "category must be one of the directory categories",
	})
)

// newestFirst is the only ordering the directory uses.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("businesses")}
}

// Create derives the slug, applies defaults and inserts b.
func (s *Store) Create(ctx context.Context, b models.Business) (models.Business, error) {
	b.Name = normalize.Name(b.Name)
	b.Slug = slug.Make(b.Name)
	if b.Slug == "" {
		return models.Business{}, ErrEmptySlug
	}
	if !models.IsValidCategory(b.Category) {
		return models.Business{}, ErrInvalidCategory
	}
	if b.Status == "" {
		b.Status = models.ListingActive
	}
	b.Services = normalize.List(b.Services)
	b.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Business{}, ErrDuplicateBusiness
		}
		return models.Business{}, err
	}
	return b, nil
}

// GetByID returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Business, error) {
	var b models.Business
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	return b, err
}

// GetBySlug returns mongo.ErrNoDocuments if absent.
func (s *Store) GetBySlug(ctx context.Context, sl string) (models.Business, error) {
	var b models.Business
	err := s.c.FindOne(ctx, bson.M{"slug": sl}).Decode(&b)
	return b, err
}

// Update holds the editable fields; nil means keep.
type Update struct {
	Name        *string
	Category    *string
	Description *string
	Services    []string
	Location    *string
	Address     *string
	Phone       *string
	Email       *string
	Website     *string
	OwnerName   *string
	Logo        *string
	Status      *string
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Update applies upd to the business with id. A changed name regenerates
// the slug under the same uniqueness rule as Create.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Business, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Business{}, err
	}

	if upd.Name != nil {
		name := normalize.Name(*upd.Name)
		sl := slug.Make(name)
		if sl == "" {
			return models.Business{}, ErrEmptySlug
		}
		b.Name, b.Slug = name, sl
	}
	if upd.Category != nil {
		if !models.IsValidCategory(*upd.Category) {
			return models.Business{}, ErrInvalidCategory
		}
		b.Category = *upd.Category
	}
	set(&b.Description, upd.Description)
	set(&b.Location, upd.Location)
	set(&b.Address, upd.Address)
	set(&b.Phone, upd.Phone)
	set(&b.Email, upd.Email)
	set(&b.Website, upd.Website)
	set(&b.OwnerName, upd.OwnerName)
	set(&b.Logo, upd.Logo)
	set(&b.Status, upd.Status)
	if upd.Services != nil {
		b.Services = normalize.List(upd.Services)
	}
	b.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, b)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Business{}, ErrDuplicateBusiness
		}
		return models.Business{}, err
	}
	if res.MatchedCount == 0 {
		return models.Business{}, mongo.ErrNoDocuments
	}
	return b, nil
}

// Delete removes the business; mongo.ErrNoDocuments if it did not exist.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// List returns every business matching f, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Business, error) {
	cur, err := s.c.Find(ctx, f.BuildQuery(), options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Business{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Search returns one page of businesses matching f, newest first.
func (s *Store) Search(ctx context.Context, f Filter, p paging.Params) (paging.Page[models.Business], error) {
	q := f.BuildQuery()
	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return paging.Page[models.Business]{}, err
	}
	cur, err := s.c.Find(ctx, q, p.ApplyToFind(options.Find().SetSort(newestFirst)))
	if err != nil {
		return paging.Page[models.Business]{}, err
	}
	defer cur.Close(ctx)
	var docs []models.Business
	if err := cur.All(ctx, &docs); err != nil {
		return paging.Page[models.Business]{}, err
	}
	return paging.NewPage(docs, total, p), nil
}
