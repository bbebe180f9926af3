package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dukerupert/freshkeep/internal/quicklist"
)

// QuickListHandler serves the legacy shared shopping list: unauthenticated,
// global, in-memory only. Kept for clients that predate per-user accounts.
type QuickListHandler struct {
	list *quicklist.List
}

func NewQuickListHandler(list *quicklist.List) *QuickListHandler {
	return &QuickListHandler{list: list}
}

type quickListItemRequest struct {
	Name string `json:"name"`
}

func (h *QuickListHandler) List(w http.ResponseWriter, r *http.Request) {
	names := h.list.Names()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *QuickListHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req quickListItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	h.list.Add(req.Name)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Added %s to list", req.Name),
	})
}

func (h *QuickListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.list.Remove(r.PathValue("name"))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted"})
}
