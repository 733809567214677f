package models

import (
	"github.com/shopspring/decimal"
)

// Difficulty is how hard a meal is to prepare
type Difficulty string

const (
	DifficultyLow  Difficulty = "LOW"
	DifficultyMed  Difficulty = "MED"
	DifficultyHigh Difficulty = "HIGH"
)

// Valid reports whether d is one of LOW, MED or HIGH
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyLow, DifficultyMed, DifficultyHigh:
		return true
	}
	return false
}

// Penalty is subtracted from a meal's battle score. Easier dishes lose more.
func (d Difficulty) Penalty() int64 {
	switch d {
	case DifficultyHigh:
		return 1
	case DifficultyMed:
		return 2
	default:
		return 3
	}
}

// Outcome is the result recorded against a meal after a battle
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// LeaderboardSort selects the ranking key for the leaderboard
type LeaderboardSort string

const (
	SortByWins   LeaderboardSort = "wins"
	SortByWinPct LeaderboardSort = "win_pct"
)

// Meal is a snapshot of a catalog record. Changing a Meal value never
// changes the stored record; counters are only updated through the catalog.
type Meal struct {
	ID         int             `json:"id"`
	Name       string          `json:"meal"`
	Cuisine    string          `json:"cuisine"`
	Price      decimal.Decimal `json:"price" swaggertype:"number"`
	Difficulty Difficulty      `json:"difficulty"`
	Battles    int             `json:"battles"`
	Wins       int             `json:"wins"`
	Deleted    bool            `json:"deleted"`
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Name       string          `json:"meal"`
	Cuisine    string          `json:"cuisine"`
	Price      decimal.Decimal `json:"price" swaggertype:"number"`
	Difficulty Difficulty      `json:"difficulty"`
	Battles    int             `json:"battles"`
	Wins       int             `json:"wins"`
	WinPct     float64         `json:"win_pct"`
}
