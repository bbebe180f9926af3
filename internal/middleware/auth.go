package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dukerupert/freshkeep/internal/auth"
	"github.com/dukerupert/freshkeep/internal/store"
	"github.com/dukerupert/freshkeep/internal/token"
)

// RequireAuth validates the Bearer token, resolves the user, and populates
// AuthContext. Failures are 401 JSON responses; the error detail
// distinguishes expired from invalid tokens but never more than that.
func RequireAuth(issuer *token.Issuer, userStore *store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "Not authenticated")
				return
			}

			userID, err := issuer.Verify(tokenString)
			if err != nil {
				if err == token.ErrExpired {
					unauthorized(w, "Token expired")
					return
				}
				unauthorized(w, "Invalid token")
				return
			}

			user, err := userStore.GetByID(userID)
			if err != nil || user == nil {
				unauthorized(w, "User not found")
				return
			}

			ac := auth.AuthContext{
				UserID:    user.ID,
				Email:     user.Email,
				IsPremium: user.IsPremium,
			}

			ctx := auth.WithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credentials from an "Authorization: Bearer ..."
// header. The scheme match is case-insensitive.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, credentials, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	credentials = strings.TrimSpace(credentials)
	if credentials == "" {
		return "", false
	}
	return credentials, true
}

func unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
