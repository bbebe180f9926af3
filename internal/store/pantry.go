package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/freshkeep/internal/model"
)

// PantryStore persists pantry items. Every query is scoped to the owning
// user, so another user's items read as not found.
type PantryStore struct {
	db *sql.DB
}

func NewPantryStore(db *sql.DB) *PantryStore {
	return &PantryStore{db: db}
}

func scanPantryItem(scanner interface{ Scan(...any) error }) (*model.PantryItem, error) {
	var item model.PantryItem
	var barcode sql.NullString
	err := scanner.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Category,
		&item.ExpiryDate, &item.Quantity, &barcode, &item.Status, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if barcode.Valid {
		item.Barcode = &barcode.String
	}
	return &item, nil
}

const pantryCols = `id, user_id, name, category, expiry_date, quantity, barcode, status, created_at`

func (s *PantryStore) ListByUser(userID string) ([]model.PantryItem, error) {
	rows, err := s.db.Query(
		`SELECT `+pantryCols+` FROM pantry_items WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pantry items: %w", err)
	}
	defer rows.Close()

	var items []model.PantryItem
	for rows.Next() {
		item, err := scanPantryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pantry item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *PantryStore) Get(userID, id string) (*model.PantryItem, error) {
	row := s.db.QueryRow(
		`SELECT `+pantryCols+` FROM pantry_items WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	item, err := scanPantryItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pantry item: %w", err)
	}
	return item, nil
}

func (s *PantryStore) Create(userID, name, category, expiryDate string, quantity int, barcode *string) (*model.PantryItem, error) {
	var bc sql.NullString
	if barcode != nil {
		bc = sql.NullString{String: *barcode, Valid: true}
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO pantry_items (id, user_id, name, category, expiry_date, quantity, barcode, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, userID, name, category, expiryDate, quantity, bc, model.StatusFresh, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert pantry item: %w", err)
	}
	return s.Get(userID, id)
}

// Update applies the non-nil patch fields to the item and returns the updated
// row. Returns (nil, nil) if the item does not exist or is not owned by userID.
func (s *PantryStore) Update(userID, id string, patch model.PantryItemPatch) (*model.PantryItem, error) {
	existing, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	name := existing.Name
	if patch.Name != nil {
		name = *patch.Name
	}
	category := existing.Category
	if patch.Category != nil {
		category = *patch.Category
	}
	expiryDate := existing.ExpiryDate
	if patch.ExpiryDate != nil {
		expiryDate = *patch.ExpiryDate
	}
	quantity := existing.Quantity
	if patch.Quantity != nil {
		quantity = *patch.Quantity
	}
	status := existing.Status
	if patch.Status != nil {
		status = *patch.Status
	}
	var bc sql.NullString
	if patch.Barcode != nil {
		bc = sql.NullString{String: *patch.Barcode, Valid: true}
	} else if existing.Barcode != nil {
		bc = sql.NullString{String: *existing.Barcode, Valid: true}
	}

	_, err = s.db.Exec(
		`UPDATE pantry_items SET name = ?, category = ?, expiry_date = ?, quantity = ?, barcode = ?, status = ?
		 WHERE id = ? AND user_id = ?`,
		name, category, expiryDate, quantity, bc, status, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update pantry item: %w", err)
	}
	return s.Get(userID, id)
}

// Delete removes the item. Returns false if it does not exist or is not
// owned by userID.
func (s *PantryStore) Delete(userID, id string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM pantry_items WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete pantry item: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return count > 0, nil
}
