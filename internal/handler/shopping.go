package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/freshkeep/internal/auth"
	"github.com/dukerupert/freshkeep/internal/model"
	"github.com/dukerupert/freshkeep/internal/store"
	ws "github.com/dukerupert/freshkeep/internal/websocket"
)

type ShoppingHandler struct {
	shoppingStore *store.ShoppingStore
	hub           *ws.Hub
	logger        *slog.Logger
}

func NewShoppingHandler(ss *store.ShoppingStore, hub *ws.Hub, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{shoppingStore: ss, hub: hub, logger: logger}
}

type shoppingItemRequest struct {
	ItemName string `json:"item_name"`
}

func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.shoppingStore.ListByUser(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list shopping items", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to list items")
		return
	}
	if items == nil {
		items = []model.ShoppingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ShoppingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shoppingItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	req.ItemName = strings.TrimSpace(req.ItemName)
	if req.ItemName == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "item_name is required")
		return
	}

	userID := auth.UserID(r.Context())
	item, err := h.shoppingStore.Create(userID, req.ItemName)
	if err != nil {
		h.logger.Error("create shopping item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	h.hub.Broadcast(userID, ws.NewMessage("shopping_item", "created", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (h *ShoppingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	var patch model.ShoppingItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	item, err := h.shoppingStore.Update(userID, id, patch)
	if err != nil {
		h.logger.Error("update shopping item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	if item == nil {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}

	h.hub.Broadcast(userID, ws.NewMessage("shopping_item", "updated", item.ID))
	writeJSON(w, http.StatusOK, item)
}

func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	deleted, err := h.shoppingStore.Delete(userID, id)
	if err != nil {
		h.logger.Error("delete shopping item", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if !deleted {
		writeDetail(w, http.StatusNotFound, "Item not found")
		return
	}

	h.hub.Broadcast(userID, ws.NewMessage("shopping_item", "deleted", id))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}

// ClearPurchased deletes every purchased item for the caller. Removing
// nothing is a normal outcome, reported as a count of zero.
func (h *ShoppingHandler) ClearPurchased(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	count, err := h.shoppingStore.ClearPurchased(userID)
	if err != nil {
		h.logger.Error("clear purchased", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Failed to clear items")
		return
	}

	h.hub.Broadcast(userID, ws.NewMessage("shopping_item", "cleared", ""))
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Cleared %d purchased items", count),
	})
}
