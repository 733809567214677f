package services

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/franciscosanchezn/gin-meal-max/internal/random"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// MaxCombatants is how many meals an arena holds for one battle
const MaxCombatants = 2

// BattleArena stages two meals and settles a battle between them.
// An arena belongs to a single battle session and is not safe for
// concurrent use.
type BattleArena struct {
	catalog    MealService
	source     random.Source
	combatants []models.Meal
}

// NewBattleArena creates an empty arena that records results in catalog and
// draws upsets from source
func NewBattleArena(catalog MealService, source random.Source) *BattleArena {
	return &BattleArena{
		catalog:    catalog,
		source:     source,
		combatants: make([]models.Meal, 0, MaxCombatants),
	}
}

// PrepCombatant adds a meal to the arena. A meal can hold only one slot.
func (a *BattleArena) PrepCombatant(meal models.Meal) error {
	if len(a.combatants) >= MaxCombatants {
		log.WithField("meal", meal.Name).Error("Attempted to add combatant but combatants list is full")
		return models.NewCapacityError()
	}
	for _, c := range a.combatants {
		if c.ID == meal.ID {
			log.WithField("meal_id", meal.ID).Error("Attempted to prep the same meal twice")
			return models.NewValidationError("meal with id %d is already a combatant", meal.ID)
		}
	}
	a.combatants = append(a.combatants, meal)
	log.WithFields(logrus.Fields{
		"meal":       meal.Name,
		"combatants": len(a.combatants),
	}).Info("Combatant prepped")
	return nil
}

// GetCombatants returns a copy of the prepped meals in the order they were added
func (a *BattleArena) GetCombatants() []models.Meal {
	combatants := make([]models.Meal, len(a.combatants))
	copy(combatants, a.combatants)
	return combatants
}

// ClearCombatants empties the arena
func (a *BattleArena) ClearCombatants() {
	a.combatants = a.combatants[:0]
	log.Info("Combatants cleared")
}

// Score returns the battle score of a meal
func (a *BattleArena) Score(meal models.Meal) float64 {
	return ScoreMeal(meal)
}

// ScoreMeal computes price * len(cuisine) - difficulty penalty. The cuisine
// length counts characters, not bytes.
func ScoreMeal(meal models.Meal) float64 {
	length := decimal.NewFromInt(int64(utf8.RuneCountInString(meal.Cuisine)))
	penalty := decimal.NewFromInt(meal.Difficulty.Penalty())
	return meal.Price.Mul(length).Sub(penalty).InexactFloat64()
}

// Delta is the normalized separation between two scores. Negative scores
// count as zero and a non-positive sum yields 0, a pure coin flip.
func Delta(score1, score2 float64) float64 {
	score1 = math.Max(score1, 0)
	score2 = math.Max(score2, 0)
	sum := score1 + score2
	if sum <= 0 {
		return 0
	}
	return math.Min(math.Max(math.Abs(score1-score2)/sum, 0), 1)
}

// Battle settles the battle between the two prepped meals and returns the
// winner. The loser leaves the arena; the winner stays in the first slot.
// On any error the arena is left as it was.
func (a *BattleArena) Battle(ctx context.Context) (models.Meal, error) {
	if len(a.combatants) != MaxCombatants {
		log.WithField("combatants", len(a.combatants)).Error("Not enough combatants to start a battle")
		return models.Meal{}, models.NewInsufficientCombatantsError(len(a.combatants))
	}

	first, second := a.combatants[0], a.combatants[1]
	score1, score2 := ScoreMeal(first), ScoreMeal(second)
	delta := Delta(score1, score2)

	draw, err := a.source.Next(ctx)
	if err != nil {
		log.WithError(err).Error("Could not draw a random number for the battle")
		return models.Meal{}, err
	}

	// The first combatant is the stronger one on an exact tie.
	stronger, weaker := first, second
	if score2 > score1 {
		stronger, weaker = second, first
	}
	winner, loser := weaker, stronger
	if delta >= draw {
		winner, loser = stronger, weaker
	}

	log.WithFields(logrus.Fields{
		"combatant_1": first.Name,
		"score_1":     score1,
		"combatant_2": second.Name,
		"score_2":     score2,
		"delta":       delta,
		"draw":        draw,
		"winner":      winner.Name,
	}).Info("Battle decided")

	if err := a.catalog.RecordBattle(winner.ID, loser.ID); err != nil {
		log.WithError(err).Error("Failed to record battle outcome")
		return models.Meal{}, err
	}

	if refreshed, err := a.catalog.GetMealByID(winner.ID); err == nil {
		winner = refreshed
	} else {
		log.WithError(err).Warn("Could not refresh winner stats, keeping prepped snapshot")
	}
	a.combatants = append(a.combatants[:0], winner)

	return winner, nil
}
