// internal/app/store/audit/auditstore.go
package audit

import (
	"context"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/paging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Event categories
const (
	CategoryAuth    = "auth"
	CategoryContent = "content"
)

// Auth event types
const (
	EventRegistered            = "registered"
	EventRegisterFailed        = "register_failed"
	EventLoginSuccess          = "login_success"
	EventLoginFailedCredential = "login_failed_credentials"
	EventLoginFailedRateLimit  = "login_failed_rate_limit"
	EventProfileUpdated        = "profile_updated"
)

// Content event types
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
	EventToggled = "toggled"
	EventDenied  = "denied"
)

// Event is one audit record.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`

	Category  string `bson:"category" json:"category"`
	EventType string `bson:"event_type" json:"eventType"`

	// Who: UserID is the affected account, ActorID the caller.
	UserID  *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	ActorID *primitive.ObjectID `bson:"actor_id,omitempty" json:"actorId,omitempty"`

	// What: for content events, the resource path segment and its id.
	Resource   string `bson:"resource,omitempty" json:"resource,omitempty"`
	ResourceID string `bson:"resource_id,omitempty" json:"resourceId,omitempty"`

	IP        string `bson:"ip" json:"ip"`
	UserAgent string `bson:"user_agent,omitempty" json:"userAgent,omitempty"`

	Success       bool   `bson:"success" json:"success"`
	FailureReason string `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`

	Details map[string]string `bson:"details,omitempty" json:"details,omitempty"`
}

// QueryFilter narrows Query. Party matches either the user or the actor.
type QueryFilter struct {
	Party     *primitive.ObjectID
	Category  string
	EventType string
	Resource  string
	Since     *time.Time
	Until     *time.Time
}

func (f QueryFilter) bson() bson.M {
	q := bson.M{}
	if f.Party != nil {
		q["$or"] = []bson.M{{"user_id": *f.Party}, {"actor_id": *f.Party}}
	}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.EventType != "" {
		q["event_type"] = f.EventType
	}
	if f.Resource != "" {
		q["resource"] = f.Resource
	}
	if f.Since != nil || f.Until != nil {
		tq := bson.M{}
		if f.Since != nil {
			tq["$gte"] = *f.Since
		}
		if f.Until != nil {
			tq["$lte"] = *f.Until
		}
		q["timestamp"] = tq
	}
	return q
}

var newestFirst = bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}

// Store manages audit event records.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Log records an event, filling in the id and timestamp when unset.
func (s *Store) Log(ctx context.Context, event Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, event)
	return err
}

// Query returns one page of matching events, newest first.
func (s *Store) Query(ctx context.Context, f QueryFilter, p paging.Params) (paging.Page[Event], error) {
	q := f.bson()
	total, err := s.c.CountDocuments(ctx, q)
	if err != nil {
		return paging.Page[Event]{}, err
	}
	cur, err := s.c.Find(ctx, q, p.ApplyToFind(options.Find().SetSort(newestFirst)))
	if err != nil {
		return paging.Page[Event]{}, err
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return paging.Page[Event]{}, err
	}
	return paging.NewPage(events, total, p), nil
}

// FailedLogins returns failed login attempts since the given time.
func (s *Store) FailedLogins(ctx context.Context, since time.Time, limit int64) ([]Event, error) {
	q := bson.M{
		"category": CategoryAuth,
		"success":  false,
		"event_type": bson.M{"$in": []string{
			EventLoginFailedCredential,
			EventLoginFailedRateLimit,
		}},
		"timestamp": bson.M{"$gte": since},
	}
	cur, err := s.c.Find(ctx, q, options.Find().SetSort(newestFirst).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DeleteBefore removes events older than cutoff and returns how many went.
func (s *Store) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
