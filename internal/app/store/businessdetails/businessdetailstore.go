// internal/app/store/businessdetails/businessdetailstore.go
package businessdetailstore

import (
	"context"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/normalize"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateName = apperr.Duplicate("Business name already exists")
	ErrNotOwner      = apperr.Forbidden("Not authorized to modify this business")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("business_details")}
}

// nameTaken reports whether an active record other than self already uses
// the folded name.
func (s *Store) nameTaken(ctx context.Context, nameCI string, self primitive.ObjectID) (bool, error) {
	q := bson.M{"name_ci": nameCI, "status": models.ListingActive}
	if !self.IsZero() {
		q["_id"] = bson.M{"$ne": self}
	}
	n, err := s.c.CountDocuments(ctx, q, options.Count().SetLimit(1))
	return n > 0, err
}

// Create inserts d owned by d.OwnerID. The name must be unique among
// active records, compared case- and diacritic-insensitively.
func (s *Store) Create(ctx context.Context, d models.BusinessDetail) (models.BusinessDetail, error) {
	d.Name = normalize.Name(d.Name)
	d.NameCI = text.Fold(d.Name)
	if d.Status == "" {
		d.Status = models.ListingActive
	}
	if d.Status == models.ListingActive {
		taken, err := s.nameTaken(ctx, d.NameCI, primitive.NilObjectID)
		if err != nil {
			return models.BusinessDetail{}, err
		}
		if taken {
			return models.BusinessDetail{}, ErrDuplicateName
		}
	}
	d.Services = normalize.List(d.Services)
	if d.Images == nil {
		d.Images = []string{}
	}
	d.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	d.CreatedAt, d.UpdatedAt = now, now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.BusinessDetail{}, err
	}
	return d, nil
}

// GetByID returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.BusinessDetail, error) {
	var d models.BusinessDetail
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	return d, err
}

func (s *Store) find(ctx context.Context, q bson.M) ([]models.BusinessDetail, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.BusinessDetail{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActive returns active records, newest first.
func (s *Store) ListActive(ctx context.Context) ([]models.BusinessDetail, error) {
	return s.find(ctx, bson.M{"status": models.ListingActive})
}

// ListByOwner returns every record owned by owner regardless of status.
func (s *Store) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.BusinessDetail, error) {
	return s.find(ctx, bson.M{"owner_id": owner})
}

// Update carries the editable fields; nil means keep.
type Update struct {
	Name         *string
	Category     *string
	Description  *string
	Address      *string
	Phone        *string
	Email        *string
	Website      *string
	OpeningHours *string
	Services     []string
	Images       []string
	Status       *string
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Update applies upd on behalf of caller. Only the owner may update.
func (s *Store) Update(ctx context.Context, id, caller primitive.ObjectID, upd Update) (models.BusinessDetail, error) {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return models.BusinessDetail{}, err
	}
	if d.OwnerID != caller {
		return models.BusinessDetail{}, ErrNotOwner
	}

	if upd.Name != nil {
		d.Name = normalize.Name(*upd.Name)
		d.NameCI = text.Fold(d.Name)
	}
	set(&d.Category, upd.Category)
	set(&d.Description, upd.Description)
	set(&d.Address, upd.Address)
	set(&d.Phone, upd.Phone)
	set(&d.Email, upd.Email)
	set(&d.Website, upd.Website)
	set(&d.OpeningHours, upd.OpeningHours)
	set(&d.Status, upd.Status)
	if upd.Services != nil {
		d.Services = normalize.List(upd.Services)
	}
	if upd.Images != nil {
		d.Images = normalize.List(upd.Images)
	}

	if d.Status == models.ListingActive && (upd.Name != nil || upd.Status != nil) {
		taken, err := s.nameTaken(ctx, d.NameCI, d.ID)
		if err != nil {
			return models.BusinessDetail{}, err
		}
		if taken {
			return models.BusinessDetail{}, ErrDuplicateName
		}
	}
	d.UpdatedAt = time.Now().UTC()

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id, "owner_id": caller}, d)
	if err != nil {
		return models.BusinessDetail{}, err
	}
	if res.MatchedCount == 0 {
		return models.BusinessDetail{}, mongo.ErrNoDocuments
	}
	return d, nil
}

// Delete removes the record on behalf of caller. Only the owner may delete.
func (s *Store) Delete(ctx context.Context, id, caller primitive.ObjectID) error {
	d, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.OwnerID != caller {
		return ErrNotOwner
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id, "owner_id": caller})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
