package businesses_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/features/businesses"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/coophub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func setup(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := businesses.NewHandler(db, 0, zap.NewNop())
	return businesses.Routes(h), testutil.NewFixtures(t, db)
}

func do(router http.Handler, r *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func validBody(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"category":    "Food & Beverage",
		"description": "Fresh local food",
		"location":    "Lakeside",
		"phone":       "061-555",
		"email":       "hello@example.com",
		"ownerName":   "Sita",
		"services":    []string{"Catering", " ", "Delivery"},
	}
}

func TestCreateAndFetch(t *testing.T) {
	router, _ := setup(t)

	rec := do(router, testutil.NewJSONRequest(t, "POST", "/", validBody("Ram's Café!!")))
	rec.AssertStatus(t, http.StatusCreated)
	var b models.Business
	rec.Envelope(t, &b)
	if b.Slug != "rams-cafe" || len(b.Services) != 2 {
		t.Errorf("unexpected business: slug=%q services=%v", b.Slug, b.Services)
	}

	rec = do(router, testutil.NewJSONRequest(t, "GET", "/slug/rams-cafe", nil))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, b.ID.Hex())

	do(router, testutil.NewJSONRequest(t, "GET", "/"+b.ID.Hex(), nil)).AssertStatus(t, http.StatusOK)

	rec = do(router, testutil.NewJSONRequest(t, "GET", "/slug/missing", nil))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Business not found")

	do(router, testutil.NewJSONRequest(t, "GET", "/not-an-id", nil)).AssertStatus(t, http.StatusNotFound)
}

func TestCreate_Rejections(t *testing.T) {
	router, _ := setup(t)
	do(router, testutil.NewJSONRequest(t, "POST", "/", validBody("Green Farm"))).AssertStatus(t, http.StatusCreated)

	rec := do(router, testutil.NewJSONRequest(t, "POST", "/", validBody("GREEN farm")))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "A business with this name already exists")

	body := validBody("Other")
	body["category"] = "Space Mining"
	do(router, testutil.NewJSONRequest(t, "POST", "/", body)).AssertStatus(t, http.StatusBadRequest)

	body = validBody("Other")
	delete(body, "location")
	rec = do(router, testutil.NewJSONRequest(t, "POST", "/", body))
	rec.AssertStatus(t, http.StatusBadRequest)
	env := rec.Envelope(t, nil)
	if len(env.Errors) != 1 || env.Errors[0].Field != "location" {
		t.Errorf("errors = %+v", env.Errors)
	}

	do(router, testutil.NewJSONRequest(t, "POST", "/", `{"name":`)).AssertStatus(t, http.StatusBadRequest)
}

func TestUpdateAndDelete(t *testing.T) {
	router, fx := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	b := fx.CreateBusiness(ctx, "Old Name", "Retail", "Baglung", models.ListingActive, 0)

	rec := do(router, testutil.NewJSONRequest(t, "PUT", "/"+b.ID.Hex(), map[string]string{"name": "New Name"}))
	rec.AssertStatus(t, http.StatusOK)
	var got models.Business
	rec.Envelope(t, &got)
	if got.Slug != "new-name" || got.Location != "Baglung" {
		t.Errorf("unexpected update: %+v", got)
	}

	do(router, testutil.NewJSONRequest(t, "DELETE", "/"+b.ID.Hex(), nil)).AssertStatus(t, http.StatusOK)
	do(router, testutil.NewJSONRequest(t, "DELETE", "/"+b.ID.Hex(), nil)).AssertStatus(t, http.StatusNotFound)
}

func TestDirectoryHidesContactDetails(t *testing.T) {
	router, fx := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateBusiness(ctx, "Visible", "Retail", "Lakeside", models.ListingActive, 0)
	fx.CreateBusiness(ctx, "Pending", "Retail", "Lakeside", models.ListingPending, 0)

	rec := do(router, testutil.NewJSONRequest(t, "GET", "/directory", nil))
	rec.AssertStatus(t, http.StatusOK)
	var list []map[string]any
	env := rec.Envelope(t, &list)
	if env.Count == nil || *env.Count != 1 || len(list) != 1 {
		t.Fatalf("directory = %d entries, want 1", len(list))
	}
	for _, k := range []string{"phone", "email", "ownerName", "status"} {
		if _, ok := list[0][k]; ok {
			t.Errorf("directory entry exposes %q", k)
		}
	}

	rec = do(router, testutil.NewJSONRequest(t, "GET", "/?status=pending", nil))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Pending")
}

func TestSearch(t *testing.T) {
	router, fx := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	for i, name := range []string{"Tea One", "Tea Two", "Tea Three", "Coffee"} {
		fx.CreateBusiness(ctx, name, "Food & Beverage", "Lakeside", models.ListingActive, time.Duration(-i)*time.Hour)
	}

	rec := do(router, testutil.NewJSONRequest(t, "GET", "/search?q=tea&limit=2&page=2", nil))
	rec.AssertStatus(t, http.StatusOK)
	var pg paging.Page[models.DirectoryEntry]
	rec.Envelope(t, &pg)
	if pg.Total != 3 || pg.Pages != 2 || pg.Page != 2 || len(pg.Docs) != 1 || pg.Docs[0].Name != "Tea Three" {
		t.Errorf("unexpected page: %+v", pg)
	}

	var all, sentinel paging.Page[models.DirectoryEntry]
	do(router, testutil.NewJSONRequest(t, "GET", "/search?q=tea", nil)).Envelope(t, &all)
	do(router, testutil.NewJSONRequest(t, "GET", "/search?q=tea&category=All+Categories", nil)).Envelope(t, &sentinel)
	if all.Total != sentinel.Total {
		t.Errorf("All Categories changed total: %d vs %d", all.Total, sentinel.Total)
	}

	rec = do(router, testutil.NewJSONRequest(t, "GET", "/search?limit=500", nil))
	rec.Envelope(t, &pg)
	if pg.Limit != paging.MaxLimit {
		t.Errorf("limit = %d, want %d", pg.Limit, paging.MaxLimit)
	}
}

func TestCategories(t *testing.T) {
	router, _ := setup(t)
	rec := do(router, testutil.NewJSONRequest(t, "GET", "/categories", nil))
	rec.AssertStatus(t, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "Food \\u0026 Beverage") && !strings.Contains(rec.Body.String(), "Food & Beverage") {
		t.Errorf("categories missing: %s", rec.Body.String())
	}
}
