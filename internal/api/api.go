// Package api provides the MindTrack HTTP API server.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/mindtrackhq/mindtrack/internal/auth"
	"github.com/mindtrackhq/mindtrack/internal/database"
	"github.com/mindtrackhq/mindtrack/internal/environment"
	"github.com/mindtrackhq/mindtrack/internal/sentiment"
	"github.com/mindtrackhq/mindtrack/internal/wellness"
)

// Server is the API server.
type Server struct {
	db          *database.DB
	authManager *auth.Manager
	analyzer    *sentiment.Analyzer
	classifier  *environment.Classifier
	engine      *wellness.Engine
	limiter     *clientLimiter
	mux         *http.ServeMux
}

// Config holds API server configuration.
type Config struct {
	DB          *database.DB
	AuthManager *auth.Manager
	Analyzer    *sentiment.Analyzer
	Classifier  *environment.Classifier
	Engine      *wellness.Engine

	// Requests per second allowed per client, with the given burst.
	// Zero disables rate limiting.
	RateLimit float64
	RateBurst int
}

// NewServer creates a new API server.
func NewServer(cfg Config) *Server {
	s := &Server{
		db:          cfg.DB,
		authManager: cfg.AuthManager,
		analyzer:    cfg.Analyzer,
		classifier:  cfg.Classifier,
		engine:      cfg.Engine,
		mux:         http.NewServeMux(),
	}
	if cfg.RateLimit > 0 {
		s.limiter = newClientLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	authMiddleware := auth.Middleware(s.authManager)

	// Public endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Protected endpoints
	s.mux.HandleFunc("GET /api/me", s.withAuth(authMiddleware, s.handleGetMe))
	s.mux.HandleFunc("GET /api/users", s.withAuth(authMiddleware, s.handleListUsers))
	s.mux.HandleFunc("GET /api/users/{userID}", s.withAuth(authMiddleware, s.handleGetUser))
	s.mux.HandleFunc("PUT /api/users/{userID}", s.withAuth(authMiddleware, s.handleUpdateUser))
	s.mux.HandleFunc("DELETE /api/users/{userID}", s.withAuth(authMiddleware, s.handleDeleteUser))

	s.mux.HandleFunc("POST /api/moods", s.withAuth(authMiddleware, s.handleCreateMood))
	s.mux.HandleFunc("GET /api/moods", s.withAuth(authMiddleware, s.handleListMoods))
	s.mux.HandleFunc("GET /api/moods/{moodID}", s.withAuth(authMiddleware, s.handleGetMood))
	s.mux.HandleFunc("DELETE /api/moods/{moodID}", s.withAuth(authMiddleware, s.handleDeleteMood))

	s.mux.HandleFunc("POST /api/sprints", s.withAuth(authMiddleware, s.handleCreateSprint))
	s.mux.HandleFunc("GET /api/sprints", s.withAuth(authMiddleware, s.handleListSprints))
	s.mux.HandleFunc("GET /api/sprints/{sprintID}", s.withAuth(authMiddleware, s.handleGetSprint))
	s.mux.HandleFunc("DELETE /api/sprints/{sprintID}", s.withAuth(authMiddleware, s.handleDeleteSprint))

	s.mux.HandleFunc("POST /api/habits", s.withAuth(authMiddleware, s.handleCreateHabit))
	s.mux.HandleFunc("GET /api/habits", s.withAuth(authMiddleware, s.handleListHabits))
	s.mux.HandleFunc("DELETE /api/habits/{habitID}", s.withAuth(authMiddleware, s.handleDeleteHabit))

	s.mux.HandleFunc("POST /api/badges", s.withAuth(authMiddleware, s.handleCreateBadge))
	s.mux.HandleFunc("GET /api/badges", s.withAuth(authMiddleware, s.handleListBadges))
	s.mux.HandleFunc("DELETE /api/badges/{badgeID}", s.withAuth(authMiddleware, s.handleDeleteBadge))
	s.mux.HandleFunc("GET /api/users/{userID}/badges", s.withAuth(authMiddleware, s.handleListUserBadges))
	s.mux.HandleFunc("POST /api/users/{userID}/badges/evaluate", s.withAuth(authMiddleware, s.handleEvaluateBadges))

	s.mux.HandleFunc("GET /api/users/{userID}/alerts", s.withAuth(authMiddleware, s.handleListAlerts))
	s.mux.HandleFunc("GET /api/users/{userID}/wellness", s.withAuth(authMiddleware, s.handleWellness))

	// Analysis endpoints
	s.mux.HandleFunc("POST /api/ml/sentiment", s.withAuth(authMiddleware, s.handleSentiment))
	s.mux.HandleFunc("POST /api/ml/sentiment/batch", s.withAuth(authMiddleware, s.handleSentimentBatch))
	s.mux.HandleFunc("POST /api/ml/environment", s.withAuth(authMiddleware, s.handleEnvironment))
}

func (s *Server) withAuth(middleware func(http.Handler) http.Handler, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware(http.HandlerFunc(handler)).ServeHTTP(w, r)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if s.limiter != nil && !s.limiter.allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
