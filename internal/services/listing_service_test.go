package services

import (
	"errors"
	"testing"

	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/homefinder-backend/internal/models"
)

func flatRequest() *dto.ListingCreateRequest {
	return &dto.ListingCreateRequest{
		Title:    "Flat",
		Location: "Tel Aviv",
		Price:    3000,
		Type:     "rent",
		Rooms:    2,
		Sqm:      50,
		Lat:      32.0,
		Lng:      34.8,
	}
}

func TestCreateSetsOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")

	listing, err := svc.Create(alice, flatRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if listing.ID == 0 {
		t.Error("created listing has no id")
	}
	if listing.OwnerID != alice.ID {
		t.Errorf("owner_id = %d, want %d", listing.OwnerID, alice.ID)
	}

	all, err := svc.List(0, 100)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 || all[0].ID != listing.ID {
		t.Fatalf("List = %v, want the created listing", all)
	}
}

func TestListPaginationOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(alice, flatRequest()); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	page, err := svc.List(2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("len(page) = %d, want 2", len(page))
	}
	if page[0].ID >= page[1].ID {
		t.Errorf("listings not in ascending id order: %d, %d", page[0].ID, page[1].ID)
	}
	if page[0].ID != 3 {
		t.Errorf("skip=2 starts at id %d, want 3", page[0].ID)
	}
}

func TestListOwnedFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	if _, err := svc.Create(alice, flatRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(bob, flatRequest()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	owned, err := svc.ListOwned(alice.ID, 0, 100)
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(owned) != 1 || owned[0].OwnerID != alice.ID {
		t.Fatalf("ListOwned returned listings not owned by alice: %v", owned)
	}
}

func TestUpdatePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")

	listing, err := svc.Create(alice, flatRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newPrice := 3500
	updated, err := svc.Update(alice, listing.ID, &dto.ListingUpdateRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price != 3500 {
		t.Errorf("price = %d, want 3500", updated.Price)
	}

	// Unspecified fields stay untouched
	var stored models.Listing
	if err := db.First(&stored, listing.ID).Error; err != nil {
		t.Fatalf("reload listing: %v", err)
	}
	if stored.Title != "Flat" || stored.Location != "Tel Aviv" || stored.Rooms != 2 ||
		stored.Sqm != 50 || stored.Type != "rent" || stored.Lat != 32.0 || stored.Lng != 34.8 {
		t.Errorf("partial update touched unrelated fields: %+v", stored)
	}
	if stored.OwnerID != alice.ID {
		t.Errorf("owner_id changed to %d", stored.OwnerID)
	}
}

func TestUpdateNonOwnerRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	listing, err := svc.Create(alice, flatRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newTitle := "Hijacked"
	if _, err := svc.Update(bob, listing.ID, &dto.ListingUpdateRequest{Title: &newTitle}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("non-owner update: err = %v, want ErrNotOwner", err)
	}

	var stored models.Listing
	if err := db.First(&stored, listing.ID).Error; err != nil {
		t.Fatalf("reload listing: %v", err)
	}
	if stored.Title != "Flat" {
		t.Errorf("rejected update mutated the record: title = %q", stored.Title)
	}

	if _, err := svc.Delete(bob, listing.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("non-owner delete: err = %v, want ErrNotOwner", err)
	}
	if err := db.First(&stored, listing.ID).Error; err != nil {
		t.Errorf("listing deleted by non-owner: %v", err)
	}
}

func TestUpdateMissingListing(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")

	newTitle := "Ghost"
	if _, err := svc.Update(alice, 999, &dto.ListingUpdateRequest{Title: &newTitle}); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("update missing: err = %v, want ErrListingNotFound", err)
	}
	if _, err := svc.Delete(alice, 999); !errors.Is(err, ErrListingNotFound) {
		t.Errorf("delete missing: err = %v, want ErrListingNotFound", err)
	}
}

func TestDeleteReturnsLastState(t *testing.T) {
	db := newTestDB(t)
	svc := NewListingService(db)
	alice := createTestUser(t, db, "alice@example.com")

	listing, err := svc.Create(alice, flatRequest())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(alice, listing.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != listing.ID || deleted.Title != "Flat" {
		t.Errorf("deleted record = %+v, want last-known state", deleted)
	}

	var stored models.Listing
	if err := db.First(&stored, listing.ID).Error; err == nil {
		t.Error("listing still present after delete")
	}
}
