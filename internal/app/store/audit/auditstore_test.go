package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/store/audit"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_LogAndQueryByParty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	me, other := primitive.NewObjectID(), primitive.NewObjectID()
	events := []audit.Event{
		{Category: audit.CategoryAuth, EventType: audit.EventLoginSuccess, UserID: &me, IP: "10.0.0.1", Success: true},
		{Category: audit.CategoryContent, EventType: audit.EventCreated, ActorID: &me, Resource: "notices", Success: true},
		{Category: audit.CategoryAuth, EventType: audit.EventLoginSuccess, UserID: &other, IP: "10.0.0.2", Success: true},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	pg, err := store.Query(ctx, audit.QueryFilter{Party: &me}, paging.Clamp(1, 10, 50))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if pg.Total != 2 || len(pg.Docs) != 2 {
		t.Fatalf("expected 2 events for party, got total=%d docs=%d", pg.Total, len(pg.Docs))
	}
	for _, e := range pg.Docs {
		if e.ID.IsZero() || e.Timestamp.IsZero() {
			t.Errorf("id and timestamp should be filled in: %+v", e)
		}
	}

	pg, err = store.Query(ctx, audit.QueryFilter{Party: &me, Category: audit.CategoryContent, Resource: "notices"}, paging.Clamp(1, 10, 50))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if pg.Total != 1 || pg.Docs[0].EventType != audit.EventCreated {
		t.Errorf("expected the single content event, got %+v", pg.Docs)
	}
}

func TestStore_QueryNewestFirstWithTimeRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	for i, age := range []time.Duration{3 * time.Hour, time.Hour, 30 * time.Minute} {
		e := audit.Event{
			Category:  audit.CategoryAuth,
			EventType: audit.EventLoginSuccess,
			Timestamp: now.Add(-age),
			Details:   map[string]string{"n": string(rune('a' + i))},
		}
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	since := now.Add(-2 * time.Hour)
	pg, err := store.Query(ctx, audit.QueryFilter{Since: &since}, paging.Clamp(1, 10, 50))
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(pg.Docs) != 2 {
		t.Fatalf("expected 2 recent events, got %d", len(pg.Docs))
	}
	if pg.Docs[0].Details["n"] != "c" || pg.Docs[1].Details["n"] != "b" {
		t.Errorf("expected newest first, got %v then %v", pg.Docs[0].Details, pg.Docs[1].Details)
	}
}

func TestStore_FailedLogins(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, e := range []audit.Event{
		{Category: audit.CategoryAuth, EventType: audit.EventLoginFailedCredential, Success: false},
		{Category: audit.CategoryAuth, EventType: audit.EventLoginFailedRateLimit, Success: false},
		{Category: audit.CategoryAuth, EventType: audit.EventLoginSuccess, Success: true},
		{Category: audit.CategoryContent, EventType: audit.EventDenied, Success: false},
	} {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	failed, err := store.FailedLogins(ctx, time.Now().Add(-time.Minute), 10)
	if err != nil {
		t.Fatalf("FailedLogins failed: %v", err)
	}
	if len(failed) != 2 {
		t.Errorf("expected 2 failed logins, got %d", len(failed))
	}
}
