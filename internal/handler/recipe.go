package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dukerupert/freshkeep/internal/recipe"
)

// RecipeHandler serves recipe suggestions. The route is public: suggestions
// are derived purely from the ingredient list in the request.
type RecipeHandler struct{}

func NewRecipeHandler() *RecipeHandler {
	return &RecipeHandler{}
}

type recipeRequest struct {
	Ingredients []string `json:"ingredients"`
}

func (h *RecipeHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, recipe.Select(req.Ingredients))
}
