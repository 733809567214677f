package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the meal and battle endpoints under /api/v1 and the health check
func RegisterRoutes(router *gin.Engine, meals MealController, battle BattleController) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		mealsAPI := v1.Group("/meals")
		{
			mealsAPI.POST("", meals.CreateMeal)
			mealsAPI.GET("", meals.GetMealByName)
			mealsAPI.DELETE("", meals.ClearMeals)
			mealsAPI.GET("/:id", meals.GetMealByID)
			mealsAPI.DELETE("/:id", meals.DeleteMeal)
		}

		v1.GET("/leaderboard", meals.GetLeaderboard)

		battleAPI := v1.Group("/battle")
		{
			battleAPI.POST("", battle.Battle)
			battleAPI.POST("/combatants", battle.PrepCombatant)
			battleAPI.GET("/combatants", battle.GetCombatants)
			battleAPI.DELETE("/combatants", battle.ClearCombatants)
		}
	}
}

// HealthCheck handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-meal-max",
	})
}
