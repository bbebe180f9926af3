package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/freshkeep/internal/model"
)

// ShoppingStore persists the per-user shopping list. Duplicate item names are
// allowed; the list is owner-scoped like the pantry.
type ShoppingStore struct {
	db *sql.DB
}

func NewShoppingStore(db *sql.DB) *ShoppingStore {
	return &ShoppingStore{db: db}
}

func scanShoppingItem(scanner interface{ Scan(...any) error }) (*model.ShoppingItem, error) {
	var item model.ShoppingItem
	var purchased int
	err := scanner.Scan(&item.ID, &item.UserID, &item.ItemName, &purchased, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.IsPurchased = purchased != 0
	return &item, nil
}

const shoppingCols = `id, user_id, item_name, is_purchased, created_at`

func (s *ShoppingStore) ListByUser(userID string) ([]model.ShoppingItem, error) {
	rows, err := s.db.Query(
		`SELECT `+shoppingCols+` FROM shopping_list WHERE user_id = ? ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}
	defer rows.Close()

	var items []model.ShoppingItem
	for rows.Next() {
		item, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *ShoppingStore) Get(userID, id string) (*model.ShoppingItem, error) {
	row := s.db.QueryRow(
		`SELECT `+shoppingCols+` FROM shopping_list WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	item, err := scanShoppingItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping item: %w", err)
	}
	return item, nil
}

func (s *ShoppingStore) Create(userID, itemName string) (*model.ShoppingItem, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO shopping_list (id, user_id, item_name, is_purchased, created_at) VALUES (?, ?, ?, 0, ?)`,
		id, userID, itemName, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert shopping item: %w", err)
	}
	return s.Get(userID, id)
}

// Update applies the non-nil patch fields. Returns (nil, nil) if the item
// does not exist or is not owned by userID.
func (s *ShoppingStore) Update(userID, id string, patch model.ShoppingItemPatch) (*model.ShoppingItem, error) {
	existing, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	itemName := existing.ItemName
	if patch.ItemName != nil {
		itemName = *patch.ItemName
	}
	isPurchased := existing.IsPurchased
	if patch.IsPurchased != nil {
		isPurchased = *patch.IsPurchased
	}
	purchased := 0
	if isPurchased {
		purchased = 1
	}

	_, err = s.db.Exec(
		`UPDATE shopping_list SET item_name = ?, is_purchased = ? WHERE id = ? AND user_id = ?`,
		itemName, purchased, id, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	return s.Get(userID, id)
}

// Delete removes the item. Returns false if it does not exist or is not
// owned by userID.
func (s *ShoppingStore) Delete(userID, id string) (bool, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_list WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete shopping item: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return count > 0, nil
}

// ClearPurchased deletes all purchased items for the user and returns the
// number removed. Zero is a valid result, not an error.
func (s *ShoppingStore) ClearPurchased(userID string) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM shopping_list WHERE user_id = ? AND is_purchased = 1`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear purchased: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
