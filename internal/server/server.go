package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/freshkeep/internal/handler"
	"github.com/dukerupert/freshkeep/internal/middleware"
	"github.com/dukerupert/freshkeep/internal/quicklist"
	"github.com/dukerupert/freshkeep/internal/store"
	"github.com/dukerupert/freshkeep/internal/token"
	ws "github.com/dukerupert/freshkeep/internal/websocket"
)

type Server struct {
	db        *sql.DB
	hub       *ws.Hub
	issuer    *token.Issuer
	userStore *store.UserStore
	authH     *handler.AuthHandler
	pantryH   *handler.PantryHandler
	shoppingH *handler.ShoppingHandler
	recipeH   *handler.RecipeHandler
	quickH    *handler.QuickListHandler
	logger    *slog.Logger
}

func New(db *sql.DB, jwtSecret string, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	issuer := token.NewIssuer(jwtSecret)

	userStore := store.NewUserStore(db)
	pantryStore := store.NewPantryStore(db)
	shoppingStore := store.NewShoppingStore(db)

	return &Server{
		db:        db,
		hub:       hub,
		issuer:    issuer,
		userStore: userStore,
		authH:     handler.NewAuthHandler(userStore, issuer, logger.With("component", "auth")),
		pantryH:   handler.NewPantryHandler(pantryStore, shoppingStore, hub, logger.With("component", "pantry")),
		shoppingH: handler.NewShoppingHandler(shoppingStore, hub, logger.With("component", "shopping")),
		recipeH:   handler.NewRecipeHandler(),
		quickH:    handler.NewQuickListHandler(quicklist.New()),
		logger:    logger,
	}
}

// Hub returns the realtime sync hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/register", s.authH.Register)
	outerMux.HandleFunc("POST /api/auth/login", s.authH.Login)
	outerMux.HandleFunc("POST /api/recipes/generate", s.recipeH.Generate)
	outerMux.HandleFunc("GET /api/shopping-list/", s.quickH.List)
	outerMux.HandleFunc("POST /api/shopping-list/", s.quickH.Add)
	outerMux.HandleFunc("DELETE /api/shopping-list/{name}", s.quickH.Remove)
	outerMux.HandleFunc("GET /api/health", s.healthHandler)
	outerMux.HandleFunc("GET /api/{$}", s.rootHandler)

	// Protected routes, wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.issuer, s.userStore)
	outerMux.Handle("/", authMiddleware(protectedMux))

	// Request logging and CORS outermost
	return middleware.CORS(middleware.RequestLogger(s.logger.With("component", "http"))(outerMux))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "FreshKeep API is running"})
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Current user
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)
	mux.HandleFunc("POST /api/user/upgrade-premium", s.authH.UpgradePremium)

	// Pantry API routes
	mux.HandleFunc("GET /api/pantry", s.pantryH.List)
	mux.HandleFunc("POST /api/pantry", s.pantryH.Create)
	mux.HandleFunc("PUT /api/pantry/{id}", s.pantryH.Update)
	mux.HandleFunc("DELETE /api/pantry/{id}", s.pantryH.Delete)

	// Shopping list API routes
	mux.HandleFunc("GET /api/shopping", s.shoppingH.List)
	mux.HandleFunc("POST /api/shopping", s.shoppingH.Create)
	mux.HandleFunc("PUT /api/shopping/{id}", s.shoppingH.Update)
	mux.HandleFunc("DELETE /api/shopping/{id}", s.shoppingH.Delete)
	mux.HandleFunc("DELETE /api/shopping/clear/purchased", s.shoppingH.ClearPurchased)

	// WebSocket
	mux.HandleFunc("GET /api/ws", ws.HandleWebSocket(s.hub))
}
