package noticestore_test

import (
	"errors"
	"testing"
	"time"

	noticestore "github.com/dalemusser/coophub/internal/app/store/notices"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/coophub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_ListPublishedOrdering(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateNotice(ctx, "old plain", models.NoticePublished, false, -3*time.Hour)
	fx.CreateNotice(ctx, "new plain", models.NoticePublished, false, -1*time.Hour)
	fx.CreateNotice(ctx, "old important", models.NoticePublished, true, -5*time.Hour)
	fx.CreateNotice(ctx, "draft", models.NoticeDraft, true, 0)

	got, err := store.ListPublished(ctx, noticestore.Filter{Status: models.NoticeDraft})
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	want := []string{"old important", "new plain", "old plain"}
	if len(got) != len(want) {
		t.Fatalf("got %d notices, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Title != w {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, w)
		}
	}

	imp := true
	only, _ := store.ListPublished(ctx, noticestore.Filter{Important: &imp})
	if len(only) != 1 || only[0].Title != "old important" {
		t.Errorf("important filter returned %d notices", len(only))
	}

	all, _ := store.List(ctx, noticestore.Filter{})
	if len(all) != 4 {
		t.Errorf("List = %d, want 4", len(all))
	}
}

func TestStore_PublishStamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.Create(ctx, models.Notice{Title: "AGM", Content: "<p>Annual meeting</p>"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if n.Type != models.NoticeAnnouncement || n.Status != models.NoticeDraft || n.PublishedAt != nil {
		t.Fatalf("unexpected defaults: %+v", n)
	}

	pub := models.NoticePublished
	n, err = store.Update(ctx, n.ID, noticestore.Update{Status: &pub})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if n.PublishedAt == nil {
		t.Fatal("expected publishedAt after publishing")
	}
	first := *n.PublishedAt

	arch := models.NoticeArchived
	store.Update(ctx, n.ID, noticestore.Update{Status: &arch})
	n, _ = store.Update(ctx, n.ID, noticestore.Update{Status: &pub})
	if n.PublishedAt == nil || n.PublishedAt.Sub(first).Abs() >= time.Millisecond {
		t.Errorf("publishedAt changed on republish: %v -> %v", first, n.PublishedAt)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := noticestore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n := fx.CreateNotice(ctx, "temp", models.NoticeDraft, false, 0)
	if err := store.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, n.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}
