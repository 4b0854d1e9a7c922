package workers_test

import (
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/store/audit"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/dalemusser/coophub/internal/app/system/workers"
	"github.com/dalemusser/coophub/internal/testutil"
	"go.uber.org/zap"
)

func TestAuditRetention_Prune(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	for _, age := range []time.Duration{100 * 24 * time.Hour, 91 * 24 * time.Hour, time.Hour} {
		e := audit.Event{Category: audit.CategoryAuth, EventType: audit.EventLoginSuccess, Timestamp: now.Add(-age)}
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	w := workers.NewAuditRetention(store, zap.NewNop(), time.Hour, 90*24*time.Hour)
	if n := w.Prune(); n != 2 {
		t.Errorf("Prune() = %d, want 2", n)
	}
	if n := w.Prune(); n != 0 {
		t.Errorf("second Prune() = %d, want 0", n)
	}

	pg, err := store.Query(ctx, audit.QueryFilter{}, paging.Clamp(1, 10, 10))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if pg.Total != 1 {
		t.Errorf("expected 1 event left, got %d", pg.Total)
	}
}

func TestAuditRetention_StartStop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	w := workers.NewAuditRetention(audit.New(db), zap.NewNop(), 10*time.Millisecond, time.Hour)

	done := make(chan struct{})
	go func() {
		w.Start()
		time.Sleep(30 * time.Millisecond)
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}
