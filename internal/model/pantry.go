package model

import "time"

// Pantry item status values with special meaning. Status is an open-ended
// string; anything else is stored as-is.
const (
	StatusFresh    = "fresh"
	StatusConsumed = "consumed"
	StatusWasted   = "wasted"
)

type PantryItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	ExpiryDate string    `json:"expiry_date"`
	Quantity   int       `json:"quantity"`
	Barcode    *string   `json:"barcode"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// PantryItemPatch is a partial update. A nil field means "leave unchanged";
// there is no way to clear a field through an update.
type PantryItemPatch struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	ExpiryDate *string `json:"expiry_date"`
	Quantity   *int    `json:"quantity"`
	Status     *string `json:"status"`
	Barcode    *string `json:"barcode"`
}
