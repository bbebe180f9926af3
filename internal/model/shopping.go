package model

import "time"

type ShoppingItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ItemName    string    `json:"item_name"`
	IsPurchased bool      `json:"is_purchased"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShoppingItemPatch is a partial update. A nil field means "leave unchanged".
type ShoppingItemPatch struct {
	ItemName    *string `json:"item_name"`
	IsPurchased *bool   `json:"is_purchased"`
}
