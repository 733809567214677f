package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/franciscosanchezn/gin-meal-max/internal/random"
	"github.com/franciscosanchezn/gin-meal-max/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, services.AutoMigrate(db))
	return db
}

func setupRouter(t *testing.T, source random.Source) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mealService := services.NewMealService(setupTestDB(t))
	arena := services.NewBattleArena(mealService, source)

	router := gin.New()
	RegisterRoutes(router, NewMealController(mealService), NewBattleController(mealService, arena))
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createMeal(t *testing.T, router *gin.Engine, name, cuisine string, price float64, difficulty string) models.Meal {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/v1/meals", gin.H{
		"meal": name, "cuisine": cuisine, "price": price, "difficulty": difficulty,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Meal](t, w)
}

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))

	w := doRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]string](t, w)["status"])
}

func TestCreateAndGetMeal(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))

	created := createMeal(t, router, "Peking Duck", "Chinese", 33.98, "HIGH")
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Peking Duck", created.Name)
	assert.Zero(t, created.Battles)

	w := doRequest(router, http.MethodGet, "/api/v1/meals/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chinese", decode[models.Meal](t, w).Cuisine)

	w = doRequest(router, http.MethodGet, "/api/v1/meals?name=Peking%20Duck", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode[models.Meal](t, w).ID)
}

func TestCreateMealErrors(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))
	createMeal(t, router, "Pho", "Vietnamese", 10.2, "LOW")

	testCases := []struct {
		name   string
		body   interface{}
		status int
		code   string
	}{
		{
			name:   "duplicate name",
			body:   gin.H{"meal": "Pho", "cuisine": "Vietnamese", "price": 10.2, "difficulty": "LOW"},
			status: http.StatusConflict,
			code:   models.ErrConflict,
		},
		{
			name:   "negative price",
			body:   gin.H{"meal": "Cheap", "cuisine": "Thai", "price": -1, "difficulty": "LOW"},
			status: http.StatusBadRequest,
			code:   models.ErrValidationFailed,
		},
		{
			name:   "bad difficulty",
			body:   gin.H{"meal": "Odd", "cuisine": "Thai", "price": 5, "difficulty": "EXTREME"},
			status: http.StatusBadRequest,
			code:   models.ErrValidationFailed,
		},
		{
			name:   "malformed body",
			body:   "not an object",
			status: http.StatusBadRequest,
			code:   models.ErrBadRequest,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/api/v1/meals", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode[models.APIError](t, w).Code)
		})
	}
}

func TestGetMealErrors(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))
	createMeal(t, router, "Pho", "Vietnamese", 10.2, "LOW")
	require.Equal(t, http.StatusNoContent, doRequest(router, http.MethodDelete, "/api/v1/meals/1", nil).Code)

	testCases := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{name: "deleted by id", path: "/api/v1/meals/1", status: http.StatusGone, message: "meal with id 1 has been deleted"},
		{name: "deleted by name", path: "/api/v1/meals?name=Pho", status: http.StatusGone, message: "meal with name 'Pho' has been deleted"},
		{name: "missing id", path: "/api/v1/meals/999", status: http.StatusNotFound, message: "meal with id 999 not found"},
		{name: "missing name", path: "/api/v1/meals?name=Ramen", status: http.StatusNotFound, message: "meal with name 'Ramen' not found"},
		{name: "bad id", path: "/api/v1/meals/abc", status: http.StatusBadRequest, message: "Invalid meal ID format"},
		{name: "no name", path: "/api/v1/meals", status: http.StatusBadRequest, message: "Query parameter 'name' is required"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, decode[models.APIError](t, w).Message)
		})
	}

	t.Run("delete twice", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/api/v1/meals/1", nil)
		assert.Equal(t, http.StatusGone, w.Code)
	})
}

func TestClearMeals(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))
	createMeal(t, router, "Pho", "Vietnamese", 10.2, "LOW")

	w := doRequest(router, http.MethodDelete, "/api/v1/meals", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/meals/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBattleFlow(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))
	a := createMeal(t, router, "Meal A", "American", 13.0, "LOW")
	b := createMeal(t, router, "Meal B", "Italian", 20.0, "MED")
	createMeal(t, router, "Meal C", "Greek", 9.0, "HIGH")

	w := doRequest(router, http.MethodPost, "/api/v1/battle", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrInsufficientCombatants, decode[models.APIError](t, w).Code)

	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Meal A"}).Code)
	w = doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Meal B"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Meal](t, w), 2)

	w = doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Meal C"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, models.ErrArenaFull, decode[models.APIError](t, w).Code)

	w = doRequest(router, http.MethodPost, "/api/v1/battle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	winner := decode[BattleResponse](t, w).Winner
	assert.Equal(t, a.ID, winner.ID)
	assert.Equal(t, 1, winner.Wins)

	w = doRequest(router, http.MethodGet, "/api/v1/battle/combatants", nil)
	combatants := decode[[]models.Meal](t, w)
	require.Len(t, combatants, 1)
	assert.Equal(t, a.ID, combatants[0].ID)

	w = doRequest(router, http.MethodGet, "/api/v1/leaderboard?sort=win_pct", nil)
	require.Equal(t, http.StatusOK, w.Code)
	leaderboard := decode[[]models.LeaderboardEntry](t, w)
	require.Len(t, leaderboard, 2)
	assert.Equal(t, "Meal A", leaderboard[0].Name)
	assert.Equal(t, 100.0, leaderboard[0].WinPct)
	assert.Equal(t, "Meal B", leaderboard[1].Name)
	assert.Equal(t, 0.0, leaderboard[1].WinPct)
	assert.Equal(t, b.Cuisine, leaderboard[1].Cuisine)

	require.Equal(t, http.StatusNoContent, doRequest(router, http.MethodDelete, "/api/v1/battle/combatants", nil).Code)
	w = doRequest(router, http.MethodGet, "/api/v1/battle/combatants", nil)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPrepCombatantErrors(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))

	w := doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	createMeal(t, router, "Pho", "Vietnamese", 10.2, "LOW")
	require.Equal(t, http.StatusOK, doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Pho"}).Code)
	w = doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Pho"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ErrValidationFailed, decode[models.APIError](t, w).Code)
}

func TestBattleRandomUnavailable(t *testing.T) {
	router := setupRouter(t, random.Fixed(2))
	createMeal(t, router, "Meal A", "American", 13.0, "LOW")
	createMeal(t, router, "Meal B", "Italian", 20.0, "MED")
	doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Meal A"})
	doRequest(router, http.MethodPost, "/api/v1/battle/combatants", gin.H{"meal": "Meal B"})

	w := doRequest(router, http.MethodPost, "/api/v1/battle", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, models.ErrRandomUnavailable, decode[models.APIError](t, w).Code)

	w = doRequest(router, http.MethodGet, "/api/v1/battle/combatants", nil)
	assert.Len(t, decode[[]models.Meal](t, w), 2)
}

func TestLeaderboardInvalidSort(t *testing.T) {
	router := setupRouter(t, random.Fixed(0.5))

	w := doRequest(router, http.MethodGet, "/api/v1/leaderboard?sort=calories", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid sort_by parameter: calories", decode[models.APIError](t, w).Message)
}
