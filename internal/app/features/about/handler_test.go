package about_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/coophub/internal/app/features/about"
	aboutstore "github.com/dalemusser/coophub/internal/app/store/about"
	userstore "github.com/dalemusser/coophub/internal/app/store/users"
	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/coophub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func open(next http.Handler) http.Handler { return next }

func newRouter(t *testing.T) (chi.Router, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return about.Routes(about.NewHandler(db, zap.NewNop()), open), db
}

func do(router http.Handler, r *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func getPage(t *testing.T, router http.Handler) models.AboutPage {
	t.Helper()
	rec := do(router, testutil.NewJSONRequest(t, "GET", "/", nil))
	rec.AssertStatus(t, http.StatusOK)
	var page models.AboutPage
	rec.Envelope(t, &page)
	return page
}

func TestServeAbout_CreatesOnce(t *testing.T) {
	router, db := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := getPage(t, router)
	second := getPage(t, router)
	if first.ID.IsZero() || first.ID != second.ID {
		t.Errorf("expected one stable document, got %s and %s", first.ID.Hex(), second.ID.Hex())
	}
	n, err := aboutstore.New(db).Count(ctx)
	if err != nil || n != 1 {
		t.Errorf("about count = %d (err %v), want 1", n, err)
	}
}

func TestUpdateSection(t *testing.T) {
	router, db := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := do(router, testutil.NewJSONRequest(t, "PUT", "/section/bogus", map[string]any{}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid section")
	if n, _ := aboutstore.New(db).Count(ctx); n != 0 {
		t.Errorf("invalid section touched the store: count = %d", n)
	}

	before := getPage(t, router)
	rec = do(router, testutil.NewJSONRequest(t, "PUT", "/section/hero", map[string]string{"title": "Who we are"}))
	rec.AssertStatus(t, http.StatusOK)
	var after models.AboutPage
	rec.Envelope(t, &after)
	if after.Hero.Title != "Who we are" || after.Hero.Subtitle != before.Hero.Subtitle {
		t.Errorf("hero not merged: %+v", after.Hero)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) && !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("updatedAt went backwards")
	}
}

func TestUpdateWhole(t *testing.T) {
	router, _ := newRouter(t)

	body := map[string]any{
		"mission":  "Serve members",
		"purposes": []string{"Save", "Lend"},
	}
	rec := do(router, testutil.NewJSONRequest(t, "PUT", "/", body))
	rec.AssertStatus(t, http.StatusOK)

	page := getPage(t, router)
	if page.Mission != "Serve members" || len(page.Purposes) != 2 {
		t.Errorf("patch not applied: mission=%q purposes=%v", page.Mission, page.Purposes)
	}
	if page.Vision == "" {
		t.Error("absent section was cleared")
	}
}

func TestValues_AddThenDelete(t *testing.T) {
	router, _ := newRouter(t)
	before := len(getPage(t, router).Values)

	rec := do(router, testutil.NewJSONRequest(t, "POST", "/values", map[string]string{"title": "Trust", "description": "We keep our word."}))
	rec.AssertStatus(t, http.StatusCreated)
	var values []models.Value
	rec.Envelope(t, &values)
	if len(values) != before+1 {
		t.Fatalf("values = %d, want %d", len(values), before+1)
	}
	added := values[len(values)-1]

	rec = do(router, testutil.NewJSONRequest(t, "PUT", "/values/"+added.ID.Hex(), map[string]string{"icon": "star"}))
	rec.AssertStatus(t, http.StatusOK)
	var updated models.Value
	rec.Envelope(t, &updated)
	if updated.Icon != "star" || updated.Title != "Trust" {
		t.Errorf("update did not merge: %+v", updated)
	}

	do(router, testutil.NewJSONRequest(t, "DELETE", "/values/"+added.ID.Hex(), nil)).AssertStatus(t, http.StatusOK)
	if got := len(getPage(t, router).Values); got != before {
		t.Errorf("values after delete = %d, want %d", got, before)
	}

	rec = do(router, testutil.NewJSONRequest(t, "DELETE", "/values/"+added.ID.Hex(), nil))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Value not found")
}

func TestMilestonesAndImpacts(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(router, testutil.NewJSONRequest(t, "POST", "/milestones", map[string]string{"year": "2024", "event": "Opened a branch"}))
	rec.AssertStatus(t, http.StatusCreated)

	rec = do(router, testutil.NewJSONRequest(t, "POST", "/milestones", map[string]string{"event": "No year"}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = do(router, testutil.NewJSONRequest(t, "POST", "/community-impacts", map[string]string{"title": "Scholarships", "metrics": "40 students"}))
	rec.AssertStatus(t, http.StatusCreated)
	var impacts []models.CommunityImpact
	rec.Envelope(t, &impacts)
	last := impacts[len(impacts)-1]
	if last.Metrics != "40 students" {
		t.Errorf("unexpected impact: %+v", last)
	}

	rec = do(router, testutil.NewJSONRequest(t, "PUT", "/community-impacts/000000000000000000000000", map[string]string{"title": "x"}))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Community impact not found")
}

func TestImages(t *testing.T) {
	router, _ := newRouter(t)

	for _, u := range []string{"https://img.example/a.jpg", "https://img.example/b.jpg"} {
		do(router, testutil.NewJSONRequest(t, "POST", "/images/story", map[string]string{"url": u})).AssertStatus(t, http.StatusOK)
	}

	rec := do(router, testutil.NewJSONRequest(t, "DELETE", "/images/story/5", nil))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid image index")
	if n := len(getPage(t, router).Story.Images); n != 2 {
		t.Errorf("story images = %d after failed removal, want 2", n)
	}

	do(router, testutil.NewJSONRequest(t, "DELETE", "/images/story/abc", nil)).AssertStatus(t, http.StatusBadRequest)

	rec = do(router, testutil.NewJSONRequest(t, "DELETE", "/images/story/0", nil))
	rec.AssertStatus(t, http.StatusOK)
	var imgs []string
	rec.Envelope(t, &imgs)
	if len(imgs) != 1 || imgs[0] != "https://img.example/b.jpg" {
		t.Errorf("unexpected images after removal: %v", imgs)
	}

	rec = do(router, testutil.NewJSONRequest(t, "POST", "/images/story", map[string]string{"url": "  "}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Image URL is required")

	rec = do(router, testutil.NewJSONRequest(t, "POST", "/images/values/000000000000000000000000", map[string]string{"url": "https://img.example/c.jpg"}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Invalid image target")

	value := getPage(t, router).Values[0]
	rec = do(router, testutil.NewJSONRequest(t, "POST", "/images/values/"+value.ID.Hex(), map[string]string{"url": "https://img.example/v.jpg"}))
	rec.AssertStatus(t, http.StatusOK)
	do(router, testutil.NewJSONRequest(t, "DELETE", "/images/values/"+value.ID.Hex()+"/0", nil)).AssertStatus(t, http.StatusOK)
}

func TestMutationsRequireToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	tokens := testutil.NewTokens(t)
	gate := auth.Gate(tokens, userstore.New(db), zap.NewNop())
	router := about.Routes(about.NewHandler(db, zap.NewNop()), gate)

	do(router, testutil.NewJSONRequest(t, "GET", "/", nil)).AssertStatus(t, http.StatusOK)

	rec := do(router, testutil.NewJSONRequest(t, "PUT", "/section/hero", map[string]string{"title": "x"}))
	rec.AssertStatus(t, http.StatusUnauthorized)
	rec.AssertContains(t, auth.MsgNoToken)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	u := testutil.NewFixtures(t, db).CreateUser(ctx, "Admin Co", "admin@coop.test", "secret123")
	req := testutil.Bearer(t, testutil.NewJSONRequest(t, "PUT", "/section/hero", map[string]string{"title": "x"}), tokens, u)
	do(router, req).AssertStatus(t, http.StatusOK)
}
