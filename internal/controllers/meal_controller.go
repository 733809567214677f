package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/franciscosanchezn/gin-meal-max/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// MealController handles HTTP requests related to the meal catalog
type MealController interface {
	// CreateMeal adds a meal to the catalog
	CreateMeal(c *gin.Context)
	// GetMealByID retrieves a meal by its ID
	GetMealByID(c *gin.Context)
	// GetMealByName retrieves a meal by the name query parameter
	GetMealByName(c *gin.Context)
	// DeleteMeal soft-deletes a meal by its ID
	DeleteMeal(c *gin.Context)
	// ClearMeals removes every meal
	ClearMeals(c *gin.Context)
	// GetLeaderboard ranks meals by wins or win percentage
	GetLeaderboard(c *gin.Context)
}

type mealController struct {
	service services.MealService
}

// NewMealController creates a new instance of MealController
func NewMealController(service services.MealService) MealController {
	return &mealController{service: service}
}

// CreateMealRequest is the payload for creating a meal
type CreateMealRequest struct {
	Meal       string            `json:"meal" example:"Pho"`
	Cuisine    string            `json:"cuisine" example:"Vietnamese"`
	Price      decimal.Decimal   `json:"price" swaggertype:"number" example:"10.2"`
	Difficulty models.Difficulty `json:"difficulty" example:"LOW"`
}

// CreateMeal godoc
// @Summary Create a meal
// @Description Add a meal to the catalog. Names are unique among meals that are not deleted.
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body CreateMealRequest true "Meal to create"
// @Success 201 {object} models.Meal
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/meals [post]
func (c *mealController) CreateMeal(ctx *gin.Context) {
	var req CreateMealRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", map[string]interface{}{"error": err.Error()})
		return
	}

	id, err := c.service.CreateMeal(req.Meal, req.Cuisine, req.Price, req.Difficulty)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	meal, err := c.service.GetMealByID(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, meal)
}

// GetMealByID godoc
// @Summary Get meal by ID
// @Description Get a single meal by its ID
// @Tags meals
// @Produce json
// @Param id path int true "Meal ID"
// @Success 200 {object} models.Meal
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 410 {object} models.APIError
// @Router /api/v1/meals/{id} [get]
func (c *mealController) GetMealByID(ctx *gin.Context) {
	id, ok := mealIDParam(ctx)
	if !ok {
		return
	}

	meal, err := c.service.GetMealByID(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// GetMealByName godoc
// @Summary Get meal by name
// @Description Get the active meal with the given name
// @Tags meals
// @Produce json
// @Param name query string true "Meal name"
// @Success 200 {object} models.Meal
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 410 {object} models.APIError
// @Router /api/v1/meals [get]
func (c *mealController) GetMealByName(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		badRequest(ctx, "Query parameter 'name' is required")
		return
	}

	meal, err := c.service.GetMealByName(name)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Description Mark a meal as deleted. Deleted meals keep their id and history.
// @Tags meals
// @Param id path int true "Meal ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 410 {object} models.APIError
// @Router /api/v1/meals/{id} [delete]
func (c *mealController) DeleteMeal(ctx *gin.Context) {
	id, ok := mealIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteMeal(id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ClearMeals godoc
// @Summary Clear the catalog
// @Description Remove every meal and restart id assignment
// @Tags meals
// @Success 204
// @Failure 500 {object} models.APIError
// @Router /api/v1/meals [delete]
func (c *mealController) ClearMeals(ctx *gin.Context) {
	if err := c.service.ClearMeals(); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Meals with at least one battle, ranked by wins or win percentage
// @Tags leaderboard
// @Produce json
// @Param sort query string false "Sort key" Enums(wins, win_pct) default(wins)
// @Success 200 {array} models.LeaderboardEntry
// @Failure 400 {object} models.APIError
// @Router /api/v1/leaderboard [get]
func (c *mealController) GetLeaderboard(ctx *gin.Context) {
	sortBy := models.LeaderboardSort(ctx.DefaultQuery("sort", string(models.SortByWins)))

	leaderboard, err := c.service.GetLeaderboard(sortBy)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, leaderboard)
}

// mealIDParam parses the :id path parameter, writing a 400 when it is malformed
func mealIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		badRequest(ctx, "Invalid meal ID format", map[string]interface{}{"id": ctx.Param("id")})
		return 0, false
	}
	return id, true
}
