package noticestore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notices")}
}

// Filter narrows notice lists. Empty fields match everything.
type Filter struct {
	Type      string
	Status    string
	Important *bool
}

func (f Filter) query() bson.M {
	q := bson.M{}
	if t := strings.TrimSpace(f.Type); t != "" {
		q["type"] = t
	}
	if st := strings.TrimSpace(f.Status); st != "" {
		q["status"] = st
	}
	if f.Important != nil {
		q["important"] = *f.Important
	}
	return q
}

// importantFirst orders important notices ahead of the rest, newest first
// within each group.
var importantFirst = bson.D{
	{Key: "important", Value: -1},
	{Key: "created_at", Value: -1},
	{Key: "_id", Value: -1},
}

// ListPublished returns published notices matching f. f.Status is ignored.
func (s *Store) ListPublished(ctx context.Context, f Filter) ([]models.Notice, error) {
	f.Status = models.NoticePublished
	return s.List(ctx, f)
}

// List returns notices matching f in any status.
func (s *Store) List(ctx context.Context, f Filter) ([]models.Notice, error) {
	cur, err := s.c.Find(ctx, f.query(), options.Find().SetSort(importantFirst))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Notice{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns mongo.ErrNoDocuments if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Notice, error) {
	var n models.Notice
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	return n, err
}

// stampPublished sets PublishedAt the first time n is published.
func stampPublished(n *models.Notice, now time.Time) {
	if n.Status == models.NoticePublished && n.PublishedAt == nil {
		n.PublishedAt = &now
	}
}

// Create applies defaults (announcement, draft) and inserts n.
func (s *Store) Create(ctx context.Context, n models.Notice) (models.Notice, error) {
	if n.Type == "" {
		n.Type = models.NoticeAnnouncement
	}
	if n.Status == "" {
		n.Status = models.NoticeDraft
	}
	n.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	n.CreatedAt, n.UpdatedAt = now, now
	n.PublishedAt = nil
	stampPublished(&n, now)

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notice{}, err
	}
	return n, nil
}

// Update holds the editable fields; nil means keep. ClearDocument removes
// the attachment.
type Update struct {
	Title         *string
	Content       *string
	Type          *string
	Important     *bool
	Status        *string
	Author        *string
	Document      *models.NoticeDocument
	ClearDocument bool
}

// Update applies upd. PublishedAt survives later unpublishing.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (models.Notice, error) {
	n, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Notice{}, err
	}
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Type != nil {
		n.Type = *upd.Type
	}
	if upd.Important != nil {
		n.Important = *upd.Important
	}
	if upd.Status != nil {
		n.Status = *upd.Status
	}
	if upd.Author != nil {
		n.Author = *upd.Author
	}
	switch {
	case upd.ClearDocument:
		n.Document = nil
	case upd.Document != nil:
		n.Document = upd.Document
	}
	now := time.Now().UTC()
	n.UpdatedAt = now
	stampPublished(&n, now)

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": id}, n)
	if err != nil {
		return models.Notice{}, err
	}
	if res.MatchedCount == 0 {
		return models.Notice{}, mongo.ErrNoDocuments
	}
	return n, nil
}

// Delete removes the notice; mongo.ErrNoDocuments if it did not exist.
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
