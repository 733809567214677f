package controllers

import (
	"net/http"
	"sync"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/franciscosanchezn/gin-meal-max/internal/services"
	"github.com/gin-gonic/gin"
)

// BattleController handles HTTP requests for the battle arena
type BattleController interface {
	// PrepCombatant stages a meal, looked up by name, for the next battle
	PrepCombatant(c *gin.Context)
	// GetCombatants lists the staged meals
	GetCombatants(c *gin.Context)
	// ClearCombatants empties the arena
	ClearCombatants(c *gin.Context)
	// Battle settles the battle between the two staged meals
	Battle(c *gin.Context)
}

// battleController serves one arena; mu serializes requests against it
type battleController struct {
	meals services.MealService
	arena *services.BattleArena
	mu    sync.Mutex
}

// NewBattleController creates a controller over a single battle session
func NewBattleController(meals services.MealService, arena *services.BattleArena) BattleController {
	return &battleController{meals: meals, arena: arena}
}

// PrepCombatantRequest names the meal to stage
type PrepCombatantRequest struct {
	Meal string `json:"meal" binding:"required" example:"Pho"`
}

// PrepCombatant godoc
// @Summary Prep a combatant
// @Description Stage a meal for the next battle. At most two distinct meals can be staged.
// @Tags battle
// @Accept json
// @Produce json
// @Param combatant body PrepCombatantRequest true "Meal to stage"
// @Success 200 {array} models.Meal
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 410 {object} models.APIError
// @Router /api/v1/battle/combatants [post]
func (c *battleController) PrepCombatant(ctx *gin.Context) {
	var req PrepCombatantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", map[string]interface{}{"error": err.Error()})
		return
	}

	meal, err := c.meals.GetMealByName(req.Meal)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.arena.PrepCombatant(meal); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, c.arena.GetCombatants())
}

// GetCombatants godoc
// @Summary List combatants
// @Description List the staged meals in the order they were added
// @Tags battle
// @Produce json
// @Success 200 {array} models.Meal
// @Router /api/v1/battle/combatants [get]
func (c *battleController) GetCombatants(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx.JSON(http.StatusOK, c.arena.GetCombatants())
}

// ClearCombatants godoc
// @Summary Clear combatants
// @Description Remove every staged meal
// @Tags battle
// @Success 204
// @Router /api/v1/battle/combatants [delete]
func (c *battleController) ClearCombatants(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.arena.ClearCombatants()
	ctx.Status(http.StatusNoContent)
}

// Battle godoc
// @Summary Start a battle
// @Description Settle the battle between the two staged meals. The loser leaves the arena.
// @Tags battle
// @Produce json
// @Success 200 {object} BattleResponse
// @Failure 400 {object} models.APIError
// @Failure 410 {object} models.APIError
// @Failure 503 {object} models.APIError
// @Router /api/v1/battle [post]
func (c *battleController) Battle(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	winner, err := c.arena.Battle(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, BattleResponse{Winner: winner})
}

// BattleResponse carries the winning meal with its updated stats
type BattleResponse struct {
	Winner models.Meal `json:"winner"`
}
