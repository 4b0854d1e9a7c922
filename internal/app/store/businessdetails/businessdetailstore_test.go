package businessdetailstore_test

import (
	"errors"
	"testing"

	businessdetailstore "github.com/dalemusser/coophub/internal/app/store/businessdetails"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/dalemusser/coophub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_CreateUniqueAmongActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := businessdetailstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	first, err := store.Create(ctx, models.BusinessDetail{Name: "Café Himal", Category: "Food & Beverage", OwnerID: owner})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if first.Status != models.ListingActive || first.NameCI == "" {
		t.Errorf("defaults not applied: %+v", first)
	}

	_, err = store.Create(ctx, models.BusinessDetail{Name: "cafe  HIMAL", Category: "Retail", OwnerID: primitive.NewObjectID()})
	if !errors.Is(err, businessdetailstore.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	// An inactive record may reuse the name.
	if _, err := store.Create(ctx, models.BusinessDetail{Name: "Cafe Himal", Category: "Retail", Status: models.ListingInactive, OwnerID: owner}); err != nil {
		t.Errorf("inactive create failed: %v", err)
	}
}

func TestStore_OwnershipEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := businessdetailstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	d := fx.CreateBusinessDetail(ctx, "Mountain Crafts", owner)

	desc := "handmade"
	if _, err := store.Update(ctx, d.ID, other, businessdetailstore.Update{Description: &desc}); !errors.Is(err, businessdetailstore.ErrNotOwner) {
		t.Errorf("non-owner update: expected ErrNotOwner, got %v", err)
	}
	if err := store.Delete(ctx, d.ID, other); !errors.Is(err, businessdetailstore.ErrNotOwner) {
		t.Errorf("non-owner delete: expected ErrNotOwner, got %v", err)
	}

	got, err := store.Update(ctx, d.ID, owner, businessdetailstore.Update{Description: &desc})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if got.Description != "handmade" || got.Name != "Mountain Crafts" {
		t.Errorf("unexpected update result: %+v", got)
	}

	if err := store.Delete(ctx, d.ID, owner); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, d.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments after delete, got %v", err)
	}
}

func TestStore_RenameCollision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := businessdetailstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	fx.CreateBusinessDetail(ctx, "Alpha Traders", primitive.NewObjectID())
	mine := fx.CreateBusinessDetail(ctx, "Beta Traders", owner)

	name := "ALPHA traders"
	if _, err := store.Update(ctx, mine.ID, owner, businessdetailstore.Update{Name: &name}); !errors.Is(err, businessdetailstore.ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	same := "beta traders"
	if _, err := store.Update(ctx, mine.ID, owner, businessdetailstore.Update{Name: &same}); err != nil {
		t.Errorf("renaming to own name failed: %v", err)
	}
}

func TestStore_Lists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := businessdetailstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	fx.CreateBusinessDetail(ctx, "One", owner)
	fx.CreateBusinessDetail(ctx, "Two", primitive.NewObjectID())
	if _, err := store.Create(ctx, models.BusinessDetail{Name: "Three", Status: models.ListingPending, OwnerID: owner}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	active, err := store.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("ListActive = %d, want 2", len(active))
	}

	mine, err := store.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("ListByOwner = %d, want 2", len(mine))
	}
}
