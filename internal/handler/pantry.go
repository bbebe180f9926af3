package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/freshkeep/internal/auth"
	"github.com/dukerupert/freshkeep/internal/model"
	"github.com/dukerupert/freshkeep/internal/store"
	ws "github.com/dukerupert/freshkeep/internal/websocket"
)

type PantryHandler struct {
	pantryStore   *store.PantryStore
	shoppingStore *store.ShoppingStore
	hub           *ws.Hub
	logger        *slog.Logger
}

func NewPantryHandler(ps *store.PantryStore, ss *store.ShoppingStore, hub *ws.Hub, logger *slog.Logger) *PantryHandler {
	return &PantryHandler{pantryStore: ps, shoppingStore: ss, hub: hub, logger: logger}
}

type pantryItemRequest struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	ExpiryDate string  `json:"expiry_date"`
	Quantity   *int    `json:"quantity"`
	Barcode    *string `json:"barcode"`
}

func (h *PantryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.pantryStore.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list pantry items", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to list items")
		return
	}
	if items == nil {
		items = []model.PantryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *PantryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req pantryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Category == "" || req.ExpiryDate == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name, category and expiry_date are required")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	userID := auth.UserID(r.Context())
	item, err := h.pantryStore.Create(userID, req.Name, req.Category, req.ExpiryDate, quantity, req.Barcode)
	if err != nil {
		h.logger.Error("create pantry item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	h.hub.Broadcast(userID, ws.NewMessage("pantry_item", "created", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (h *PantryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	existing, err := h.pantryStore.Get(userID, id)
	if err != nil {
		h.logger.Error("get pantry item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to get item")
		return
	}
	if existing == nil {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}

	var patch model.PantryItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	item, err := h.pantryStore.Update(userID, id, patch)
	if err != nil {
		h.logger.Error("update pantry item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	if item == nil {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}

	// Marking an item consumed or wasted re-adds it to the shopping list,
	// named after the item as it was before this update. This fires on every
	// such call, whether or not the status actually changed. Sequential and
	// best-effort: a failure here leaves the pantry updated with no rollback.
	if patch.Status != nil && (*patch.Status == model.StatusConsumed || *patch.Status == model.StatusWasted) {
		shoppingItem, err := h.shoppingStore.Create(userID, existing.Name)
		if err != nil {
			h.logger.Error("add to shopping list", "error", err, "item", existing.Name)
			writeDetail(w, http.StatusInternalServerError, "Failed to update item")
			return
		}
		h.hub.Broadcast(userID, ws.NewMessage("shopping_item", "created", shoppingItem.ID))
	}

	h.hub.Broadcast(userID, ws.NewMessage("pantry_item", "updated", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (h *PantryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	deleted, err := h.pantryStore.Delete(userID, id)
	if err != nil {
		h.logger.Error("delete pantry item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if !deleted {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}

	h.hub.Broadcast(userID, ws.NewMessage("pantry_item", "deleted", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
