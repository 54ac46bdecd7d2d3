package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mindtrackhq/mindtrack/internal/auth"
	"github.com/mindtrackhq/mindtrack/internal/database"
	"github.com/mindtrackhq/mindtrack/internal/environment"
	"github.com/mindtrackhq/mindtrack/internal/sentiment"
	"github.com/mindtrackhq/mindtrack/internal/wellness"
)

// testDB returns a connected DB or skips if DATABASE_URL is not set.
// It also ensures migrations are run before tests.
func testDB(t *testing.T) *database.DB {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}

	err := database.Migrate(dbURL)
	require.NoError(t, err)

	ctx := context.Background()
	db, err := database.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

// testServer creates a test API server without auth middleware.
// Tests inject auth via withAuthContext.
func testServer(t *testing.T, db *database.DB) *Server {
	t.Helper()

	analyzer := sentiment.New(sentiment.Config{})
	server := &Server{
		db:         db,
		analyzer:   analyzer,
		classifier: environment.New(environment.Config{}),
		engine:     wellness.NewEngine(analyzer),
		mux:        http.NewServeMux(),
	}

	server.mux.HandleFunc("GET /health", server.handleHealth)
	server.mux.HandleFunc("GET /api/me", server.handleGetMe)
	server.mux.HandleFunc("GET /api/users", server.handleListUsers)
	server.mux.HandleFunc("GET /api/users/{userID}", server.handleGetUser)
	server.mux.HandleFunc("PUT /api/users/{userID}", server.handleUpdateUser)
	server.mux.HandleFunc("DELETE /api/users/{userID}", server.handleDeleteUser)
	server.mux.HandleFunc("POST /api/moods", server.handleCreateMood)
	server.mux.HandleFunc("GET /api/moods", server.handleListMoods)
	server.mux.HandleFunc("GET /api/moods/{moodID}", server.handleGetMood)
	server.mux.HandleFunc("DELETE /api/moods/{moodID}", server.handleDeleteMood)
	server.mux.HandleFunc("POST /api/sprints", server.handleCreateSprint)
	server.mux.HandleFunc("GET /api/sprints", server.handleListSprints)
	server.mux.HandleFunc("POST /api/habits", server.handleCreateHabit)
	server.mux.HandleFunc("GET /api/habits", server.handleListHabits)
	server.mux.HandleFunc("POST /api/badges", server.handleCreateBadge)
	server.mux.HandleFunc("GET /api/badges", server.handleListBadges)
	server.mux.HandleFunc("GET /api/users/{userID}/badges", server.handleListUserBadges)
	server.mux.HandleFunc("POST /api/users/{userID}/badges/evaluate", server.handleEvaluateBadges)
	server.mux.HandleFunc("GET /api/users/{userID}/alerts", server.handleListAlerts)
	server.mux.HandleFunc("GET /api/users/{userID}/wellness", server.handleWellness)
	server.mux.HandleFunc("POST /api/ml/sentiment", server.handleSentiment)
	server.mux.HandleFunc("POST /api/ml/sentiment/batch", server.handleSentimentBatch)
	server.mux.HandleFunc("POST /api/ml/environment", server.handleEnvironment)

	return server
}

// withAuthContext wraps a request with authenticated user claims.
func withAuthContext(r *http.Request, userID uuid.UUID, email string) *http.Request {
	claims := auth.NewTestClaims(userID, email)
	ctx := auth.WithClaims(r.Context(), claims)
	return r.WithContext(ctx)
}

// createTestUser inserts a user with a bcrypt hash and schedules cleanup.
func createTestUser(t *testing.T, db *database.DB, role string) *database.User {
	t.Helper()
	ctx := context.Background()
	email := fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-secreta"), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := db.CreateUser(ctx, "Test User", email, string(hash), role, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteUser(ctx, user.ID) })
	return user
}

func TestHealthEndpoint(t *testing.T) {
	server := testServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestCORS(t *testing.T) {
	server := testServer(t, nil)

	t.Run("OPTIONS request returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
		rec := httptest.NewRecorder()

		server.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("CORS headers on regular request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		server.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}

func TestRateLimit(t *testing.T) {
	server := testServer(t, nil)
	server.limiter = newClientLimiter(1, 2)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])

	// Other clients are unaffected
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "10.0.0.10:1234"
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	server := testServer(t, db)
	server.authManager = newTestAuthManager(t)

	server.mux.HandleFunc("POST /api/auth/register", server.handleRegister)
	server.mux.HandleFunc("POST /api/auth/login", server.handleLogin)

	email := fmt.Sprintf("reg-%s@example.com", uuid.New().String()[:8])

	t.Run("register", func(t *testing.T) {
		body := fmt.Sprintf(`{"name": "Maria", "email": %q, "password": "senha-secreta"}`, email)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp["token"])
	})

	t.Cleanup(func() {
		user, _ := db.GetUserByEmail(ctx, email)
		if user != nil {
			_ = db.DeleteUser(ctx, user.ID)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		body := fmt.Sprintf(`{"name": "Maria", "email": %q, "password": "senha-secreta"}`, email)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		body := `{"name": "X", "email": "x@example.com", "password": "curta"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login with correct password", func(t *testing.T) {
		body := fmt.Sprintf(`{"email": %q, "password": "senha-secreta"}`, email)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("login with wrong password", func(t *testing.T) {
		body := fmt.Sprintf(`{"email": %q, "password": "errada-errada"}`, email)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func newTestAuthManager(t *testing.T) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager(auth.Config{Secret: "test-secret-for-api-tests", TTL: time.Hour})
	require.NoError(t, err)
	return m
}

func TestMoods(t *testing.T) {
	db := testDB(t)
	server := testServer(t, db)
	user := createTestUser(t, db, database.RoleProfessional)

	var moodID uuid.UUID

	t.Run("create mood", func(t *testing.T) {
		body := `{"mood_level": 4, "energy_level": 3, "comment": "Dia produtivo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/moods", bytes.NewBufferString(body))
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp database.Mood
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 4, resp.MoodLevel)
		moodID = resp.ID
	})

	t.Run("rejects out-of-range mood level", func(t *testing.T) {
		body := `{"mood_level": 9, "energy_level": 3}`
		req := httptest.NewRequest(http.MethodPost, "/api/moods", bytes.NewBufferString(body))
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list moods", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/moods", nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string][]database.Mood
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Len(t, resp["moods"], 1)
	})

	t.Run("get mood", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/moods/"+moodID.String(), nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other user cannot see mood", func(t *testing.T) {
		other := createTestUser(t, db, database.RoleProfessional)
		req := httptest.NewRequest(http.MethodGet, "/api/moods/"+moodID.String(), nil)
		req = withAuthContext(req, other.ID, other.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete mood", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/moods/"+moodID.String(), nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestSprints(t *testing.T) {
	db := testDB(t)
	server := testServer(t, db)
	user := createTestUser(t, db, database.RoleProfessional)

	t.Run("create sprint", func(t *testing.T) {
		body := `{"name": "Sprint 12", "started_at": "2026-08-01T00:00:00Z", "productivity": 87.5, "completed_tasks": 9}`
		req := httptest.NewRequest(http.MethodPost, "/api/sprints", bytes.NewBufferString(body))
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp database.Sprint
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Sprint 12", resp.Name)
		require.NotNil(t, resp.Productivity)
		assert.InDelta(t, 87.5, *resp.Productivity, 0.001)
	})

	t.Run("rejects productivity above 100", func(t *testing.T) {
		body := `{"name": "Sprint 13", "started_at": "2026-08-15T00:00:00Z", "productivity": 140}`
		req := httptest.NewRequest(http.MethodPost, "/api/sprints", bytes.NewBufferString(body))
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list sprints", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/sprints", nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string][]database.Sprint
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Len(t, resp["sprints"], 1)
	})
}

func TestHabitsAndBadges(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	server := testServer(t, db)
	user := createTestUser(t, db, database.RoleProfessional)
	manager := createTestUser(t, db, database.RoleManager)

	badgeName := "Hidratado " + uuid.New().String()[:8]
	var badgeID uuid.UUID

	t.Run("professional cannot create badge", func(t *testing.T) {
		body := fmt.Sprintf(`{"name": %q, "required_points": 20}`, badgeName)
		req := httptest.NewRequest(http.MethodPost, "/api/badges", bytes.NewBufferString(body))
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager creates badge", func(t *testing.T) {
		body := fmt.Sprintf(`{"name": %q, "required_points": 20}`, badgeName)
		req := httptest.NewRequest(http.MethodPost, "/api/badges", bytes.NewBufferString(body))
		req = withAuthContext(req, manager.ID, manager.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp database.Badge
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		badgeID = resp.ID
	})

	t.Cleanup(func() {
		if badgeID != uuid.Nil {
			_ = db.DeleteBadge(ctx, badgeID)
		}
	})

	t.Run("record habits", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			body := `{"kind": "hidratacao", "points": 10}`
			req := httptest.NewRequest(http.MethodPost, "/api/habits", bytes.NewBufferString(body))
			req = withAuthContext(req, user.ID, user.Email)
			rec := httptest.NewRecorder()

			server.mux.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusCreated, rec.Code)
		}
	})

	t.Run("list habits totals points", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/habits", nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			TotalPoints int `json:"total_points"`
		}
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 20, resp.TotalPoints)
	})

	t.Run("evaluate awards earned badge", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users/"+user.ID.String()+"/badges/evaluate", nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			TotalPoints int              `json:"total_points"`
			Awarded     []database.Badge `json:"awarded"`
		}
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, 20, resp.TotalPoints)

		found := false
		for _, b := range resp.Awarded {
			if b.ID == badgeID {
				found = true
			}
		}
		assert.True(t, found, "earned badge should be awarded")
	})

	t.Run("user badges listed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.String()+"/badges", nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string][]database.UserBadge
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp["badges"])
	})
}

func TestWellnessEndpoint(t *testing.T) {
	db := testDB(t)
	server := testServer(t, db)
	user := createTestUser(t, db, database.RoleProfessional)

	comment := "Estou muito cansado e estressado com o trabalho"
	_, err := db.CreateMood(context.Background(), user.ID, 1, 2, &comment)
	require.NoError(t, err)
	_, err = db.CreateMood(context.Background(), user.ID, 2, 1, nil)
	require.NoError(t, err)

	t.Run("analysis persists alerts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.String()+"/wellness", nil)
		req = withAuthContext(req, user.ID, user.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp["alerts"])

		stored, err := db.ListAlertsByUser(context.Background(), user.ID, 10)
		require.NoError(t, err)
		assert.NotEmpty(t, stored)
	})

	t.Run("other professional denied", func(t *testing.T) {
		other := createTestUser(t, db, database.RoleProfessional)
		req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.String()+"/wellness", nil)
		req = withAuthContext(req, other.ID, other.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager allowed", func(t *testing.T) {
		boss := createTestUser(t, db, database.RoleManager)
		req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.String()+"/wellness", nil)
		req = withAuthContext(req, boss.ID, boss.Email)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSentimentEndpoints(t *testing.T) {
	server := testServer(t, nil)

	t.Run("single text", func(t *testing.T) {
		body := `{"text": "Estou muito feliz com o projeto"}`
		req := httptest.NewRequest(http.MethodPost, "/api/ml/sentiment", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Positive", resp["category"])
	})

	t.Run("batch", func(t *testing.T) {
		body := `{"texts": ["Dia otimo", "Tudo pessimo", "Dia excelente"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/ml/sentiment/batch", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Positive", resp["category"])
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/ml/sentiment", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEnvironmentEndpoint(t *testing.T) {
	server := testServer(t, nil)

	buildForm := func(t *testing.T, image []byte, description string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("image", "office.jpg")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
		if description != "" {
			require.NoError(t, mw.WriteField("description", description))
		}
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes.Repeat([]byte{0x01}, 64)...)

	t.Run("classifies described environment", func(t *testing.T) {
		buf, contentType := buildForm(t, jpeg, "Escritório bagunçado com muitos papéis")
		req := httptest.NewRequest(http.MethodPost, "/api/ml/environment", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Disorganized", resp["category"])
	})

	t.Run("rejects invalid image", func(t *testing.T) {
		buf, contentType := buildForm(t, []byte("not an image"), "")
		req := httptest.NewRequest(http.MethodPost, "/api/ml/environment", buf)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("description", "sala"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/ml/environment", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()

		server.mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
