package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/freshkeep/internal/auth"
	"github.com/dukerupert/freshkeep/internal/model"
	"github.com/dukerupert/freshkeep/internal/store"
	"github.com/dukerupert/freshkeep/internal/token"
)

type AuthHandler struct {
	userStore *store.UserStore
	issuer    *token.Issuer
	logger    *slog.Logger
}

func NewAuthHandler(us *store.UserStore, issuer *token.Issuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{userStore: us, issuer: issuer, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "email and password are required")
		return
	}

	// Pre-check for the friendly error; the unique constraint in the store
	// closes the check-then-insert race.
	existing, err := h.userStore.GetByEmail(req.Email)
	if err != nil {
		h.logger.Error("register lookup", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if existing != nil {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error("hash password", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}

	user, err := h.userStore.Create(req.Email, string(hash))
	if err != nil {
		if err == store.ErrDuplicateEmail {
			writeDetail(w, http.StatusBadRequest, "Email already registered")
			return
		}
		h.logger.Error("create user", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}

	h.respondWithToken(w, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	user, err := h.userStore.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		h.logger.Error("login lookup", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}

	// Same response whether the user is unknown or the password is wrong.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.respondWithToken(w, user)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userStore.GetByID(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("get current user", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if user == nil {
		writeDetail(w, http.StatusUnauthorized, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpgradePremium is a mock purchase: it flips the premium flag. Idempotent.
func (h *AuthHandler) UpgradePremium(w http.ResponseWriter, r *http.Request) {
	user, err := h.userStore.SetPremium(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("upgrade premium", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if user == nil {
		writeDetail(w, http.StatusUnauthorized, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *model.User) {
	accessToken, err := h.issuer.Issue(user.ID)
	if err != nil {
		h.logger.Error("issue token", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal error")
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
