package notices_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/features/notices"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/coophub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func open(next http.Handler) http.Handler { return next }

func setup(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return notices.Routes(notices.NewHandler(db, zap.NewNop()), open), testutil.NewFixtures(t, db)
}

func do(router http.Handler, r *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestCreateSanitizes(t *testing.T) {
	router, _ := setup(t)

	body := map[string]any{
		"title":   "<b>AGM</b> notice",
		"content": `<p onclick="x()">Meeting at <a href="https://coop.test">hall</a></p><script>alert(1)</script>`,
		"status":  "published",
	}
	req := testutil.WithUser(testutil.NewJSONRequest(t, "POST", "/", body), models.User{BusinessName: "Board"})
	rec := do(router, req)
	rec.AssertStatus(t, http.StatusCreated)

	var n models.Notice
	rec.Envelope(t, &n)
	if n.Title != "AGM notice" {
		t.Errorf("title = %q", n.Title)
	}
	if strings.Contains(n.Content, "script") || strings.Contains(n.Content, "onclick") {
		t.Errorf("content not sanitized: %q", n.Content)
	}
	if !strings.Contains(n.Content, "hall</a>") {
		t.Errorf("safe markup dropped: %q", n.Content)
	}
	if n.Type != models.NoticeAnnouncement || n.PublishedAt == nil || n.Author != "Board" {
		t.Errorf("unexpected defaults: %+v", n)
	}

	rec = do(router, testutil.NewJSONRequest(t, "POST", "/", map[string]any{"title": "x", "content": "<script></script>"}))
	rec.AssertStatus(t, http.StatusBadRequest)

	rec = do(router, testutil.NewJSONRequest(t, "POST", "/", map[string]any{
		"title": "x", "content": "y", "document": map[string]string{"url": "https://f.test/a.pdf", "type": "zip"},
	}))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "document.type")
}

func TestListing(t *testing.T) {
	router, fx := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateNotice(ctx, "plain", models.NoticePublished, false, -time.Hour)
	fx.CreateNotice(ctx, "urgent", models.NoticePublished, true, -2*time.Hour)
	fx.CreateNotice(ctx, "draft", models.NoticeDraft, false, 0)

	rec := do(router, testutil.NewJSONRequest(t, "GET", "/", nil))
	rec.AssertStatus(t, http.StatusOK)
	var list []models.Notice
	rec.Envelope(t, &list)
	if len(list) != 2 || list[0].Title != "urgent" {
		t.Errorf("unexpected public list: %+v", list)
	}

	rec = do(router, testutil.NewJSONRequest(t, "GET", "/?important=true", nil))
	rec.Envelope(t, &list)
	if len(list) != 1 {
		t.Errorf("important filter: %d notices", len(list))
	}
	do(router, testutil.NewJSONRequest(t, "GET", "/?important=maybe", nil)).AssertStatus(t, http.StatusBadRequest)

	rec = do(router, testutil.NewJSONRequest(t, "GET", "/all", nil))
	rec.Envelope(t, &list)
	if len(list) != 3 {
		t.Errorf("all = %d, want 3", len(list))
	}
}

func TestUpdateDelete(t *testing.T) {
	router, fx := setup(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	n := fx.CreateNotice(ctx, "draft", models.NoticeDraft, false, 0)

	rec := do(router, testutil.NewJSONRequest(t, "PUT", "/"+n.ID.Hex(), map[string]any{"status": "published", "important": true}))
	rec.AssertStatus(t, http.StatusOK)
	var got models.Notice
	rec.Envelope(t, &got)
	if got.Status != models.NoticePublished || !got.Important || got.PublishedAt == nil {
		t.Errorf("unexpected update: %+v", got)
	}

	do(router, testutil.NewJSONRequest(t, "PUT", "/"+n.ID.Hex(), map[string]any{"status": "live"})).AssertStatus(t, http.StatusBadRequest)
	do(router, testutil.NewJSONRequest(t, "DELETE", "/"+n.ID.Hex(), nil)).AssertStatus(t, http.StatusOK)
	rec = do(router, testutil.NewJSONRequest(t, "GET", "/"+n.ID.Hex(), nil))
	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Notice not found")
}
