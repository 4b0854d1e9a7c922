package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/slug"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Repeated calls on the same request accumulate parameters.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// Fixtures inserts test documents directly, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database { return f.db }

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s failed: %v", coll, err)
	}
}

// CreateUser inserts a regular member whose password is password.
func (f *Fixtures) CreateUser(ctx context.Context, businessName, email, password string) models.User {
	f.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("bcrypt: %v", err)
	}
	now := time.Now().UTC()
	u := models.User{
		ID:             primitive.NewObjectID(),
		BusinessName:   businessName,
		Email:          email,
		PasswordHash:   string(hash),
		MembershipType: models.MembershipRegular,
		JoinedDate:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.insert(ctx, "users", u)
	return u
}

// CreateBusiness inserts a directory listing. created offsets CreatedAt so
// tests can control newest-first ordering.
func (f *Fixtures) CreateBusiness(ctx context.Context, name, category, location, status string, created time.Duration) models.Business {
	f.t.Helper()
	at := time.Now().UTC().Add(created)
	b := models.Business{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Slug:        slug.Make(name),
		Category:    category,
		Description: name + " description",
		Services:    []string{},
		Location:    location,
		Phone:       "01-1111111",
		Email:       "owner@example.com",
		OwnerName:   "Owner",
		Status:      status,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	f.insert(ctx, "businesses", b)
	return b
}

// CreateBusinessDetail inserts an active detail owned by ownerID.
func (f *Fixtures) CreateBusinessDetail(ctx context.Context, name string, ownerID primitive.ObjectID) models.BusinessDetail {
	f.t.Helper()
	now := time.Now().UTC()
	d := models.BusinessDetail{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Category:  "Retail",
		Services:  []string{},
		Images:    []string{},
		Status:    models.ListingActive,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "business_details", d)
	return d
}

// CreateNotice inserts a notice with the given status and importance.
func (f *Fixtures) CreateNotice(ctx context.Context, title, status string, important bool, created time.Duration) models.Notice {
	f.t.Helper()
	at := time.Now().UTC().Add(created)
	n := models.Notice{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Content:   "<p>" + title + "</p>",
		Type:      models.NoticeAnnouncement,
		Important: important,
		Status:    status,
		CreatedAt: at,
		UpdatedAt: at,
	}
	if status == models.NoticePublished {
		n.PublishedAt = &at
	}
	f.insert(ctx, "notices", n)
	return n
}

// CreateTeamMember inserts a team member at order with the given active flag.
func (f *Fixtures) CreateTeamMember(ctx context.Context, name string, order int, active bool) models.TeamMember {
	f.t.Helper()
	now := time.Now().UTC()
	m := models.TeamMember{
		CatalogFields: models.CatalogFields{
			ID:        primitive.NewObjectID(),
			Order:     order,
			IsActive:  &active,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     name,
		Position: "Board Member",
	}
	f.insert(ctx, "team_members", m)
	return m
}
