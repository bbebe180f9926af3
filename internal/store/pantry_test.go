package store

import (
	"testing"

	"github.com/dukerupert/freshkeep/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func setupPantryTest(t *testing.T) (*PantryStore, *UserStore) {
	t.Helper()
	db := setupTestDB(t)
	return NewPantryStore(db), NewUserStore(db)
}

func TestPantryCreateDefaults(t *testing.T) {
	ps, us := setupPantryTest(t)
	u, _ := us.Create("alice@example.com", "h")

	item, err := ps.Create(u.ID, "Milk", "Dairy", "2026-09-01", 1, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.UserID != u.ID {
		t.Errorf("user_id = %q, want %q", item.UserID, u.ID)
	}
	if item.Status != model.StatusFresh {
		t.Errorf("status = %q, want %q", item.Status, model.StatusFresh)
	}
	if item.Barcode != nil {
		t.Errorf("barcode = %v, want nil", item.Barcode)
	}
	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
}

func TestPantryCreateWithBarcode(t *testing.T) {
	ps, us := setupPantryTest(t)
	u, _ := us.Create("alice@example.com", "h")

	item, err := ps.Create(u.ID, "Pasta", "Pantry", "2027-01-01", 3, strPtr("0123456789"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Barcode == nil || *item.Barcode != "0123456789" {
		t.Errorf("barcode = %v, want 0123456789", item.Barcode)
	}
}

func TestPantryListOrderedByCreation(t *testing.T) {
	ps, us := setupPantryTest(t)
	u, _ := us.Create("alice@example.com", "h")

	first, _ := ps.Create(u.ID, "Milk", "Dairy", "2026-09-01", 1, nil)
	second, _ := ps.Create(u.ID, "Eggs", "Dairy", "2026-09-10", 12, nil)

	items, err := ps.ListByUser(u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("items out of creation order: %q, %q", items[0].Name, items[1].Name)
	}
}

func TestPantryUpdatePartial(t *testing.T) {
	ps, us := setupPantryTest(t)
	u, _ := us.Create("alice@example.com", "h")

	item, _ := ps.Create(u.ID, "Milk", "Dairy", "2026-09-01", 1, nil)

	updated, err := ps.Update(u.ID, item.ID, model.PantryItemPatch{Quantity: intPtr(2)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", updated.Quantity)
	}
	// Omitted fields are unchanged.
	if updated.Name != "Milk" || updated.Category != "Dairy" || updated.Status != model.StatusFresh {
		t.Errorf("unexpected field changes: %+v", updated)
	}

	updated, err = ps.Update(u.ID, item.ID, model.PantryItemPatch{Status: strPtr(model.StatusConsumed)})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != model.StatusConsumed {
		t.Errorf("status = %q, want %q", updated.Status, model.StatusConsumed)
	}
	if updated.Quantity != 2 {
		t.Errorf("quantity = %d, want 2 after unrelated update", updated.Quantity)
	}
}

func TestPantryUpdateMissing(t *testing.T) {
	ps, us := setupPantryTest(t)
	u, _ := us.Create("alice@example.com", "h")

	updated, err := ps.Update(u.ID, "no-such-id", model.PantryItemPatch{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil for missing item, got %+v", updated)
	}
}

func TestPantryDelete(t *testing.T) {
	ps, us := setupPantryTest(t)
	u, _ := us.Create("alice@example.com", "h")

	item, _ := ps.Create(u.ID, "Milk", "Dairy", "2026-09-01", 1, nil)

	deleted, err := ps.Delete(u.ID, item.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("expected delete to report true")
	}

	deleted, err = ps.Delete(u.ID, item.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Error("expected second delete to report false")
	}
}

func TestPantryOwnershipIsolation(t *testing.T) {
	ps, us := setupPantryTest(t)
	alice, _ := us.Create("alice@example.com", "h")
	bob, _ := us.Create("bob@example.com", "h")

	item, _ := ps.Create(alice.ID, "Milk", "Dairy", "2026-09-01", 1, nil)

	// Bob cannot see, update, or delete Alice's item.
	got, err := ps.Get(bob.ID, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for foreign item, got %+v", got)
	}

	updated, err := ps.Update(bob.ID, item.ID, model.PantryItemPatch{Name: strPtr("stolen")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Error("expected update of foreign item to report missing")
	}

	deleted, err := ps.Delete(bob.ID, item.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Error("expected delete of foreign item to report false")
	}

	items, _ := ps.ListByUser(bob.ID)
	if len(items) != 0 {
		t.Errorf("expected empty list for bob, got %d items", len(items))
	}

	// Alice's item is untouched.
	still, _ := ps.Get(alice.ID, item.ID)
	if still == nil || still.Name != "Milk" {
		t.Errorf("alice's item changed: %+v", still)
	}
}
