package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of this package's logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// mealRecord is the stored form of a meal. It stays unexported so the
// counters can only be written by this package.
type mealRecord struct {
	ID         int               `gorm:"primaryKey;autoIncrement"`
	Meal       string            `gorm:"column:meal;not null;uniqueIndex:idx_meals_active_name,where:deleted = false"`
	Cuisine    string            `gorm:"not null"`
	Price      decimal.Decimal   `gorm:"type:numeric(10,2);not null"`
	Difficulty models.Difficulty `gorm:"type:varchar(4);not null"`
	Battles    int               `gorm:"not null;default:0"`
	Wins       int               `gorm:"not null;default:0"`
	Deleted    bool              `gorm:"not null;default:false;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (mealRecord) TableName() string {
	return "meals"
}

func (r mealRecord) toMeal() models.Meal {
	return models.Meal{
		ID:         r.ID,
		Name:       r.Meal,
		Cuisine:    r.Cuisine,
		Price:      r.Price,
		Difficulty: r.Difficulty,
		Battles:    r.Battles,
		Wins:       r.Wins,
		Deleted:    r.Deleted,
	}
}

// AutoMigrate creates or updates the meals table
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&mealRecord{})
}

// MealService provides methods to interact with the meal catalog
type MealService interface {
	// CreateMeal validates and stores a new meal, returning its id
	CreateMeal(name, cuisine string, price decimal.Decimal, difficulty models.Difficulty) (int, error)
	// GetMealByID retrieves a meal by its ID
	GetMealByID(id int) (models.Meal, error)
	// GetMealByName retrieves the active meal with the given name
	GetMealByName(name string) (models.Meal, error)
	// DeleteMeal soft-deletes a meal by its ID
	DeleteMeal(id int) error
	// UpdateMealStats records one battle outcome for a meal
	UpdateMealStats(id int, outcome models.Outcome) error
	// RecordBattle records a win and a loss in a single transaction
	RecordBattle(winnerID, loserID int) error
	// ClearMeals removes every meal from the catalog
	ClearMeals() error
	// GetLeaderboard ranks meals that have fought at least one battle
	GetLeaderboard(sortBy models.LeaderboardSort) ([]models.LeaderboardEntry, error)
}

// mealService is the implementation of the MealService interface
type mealService struct {
	db *gorm.DB
	// mu serializes writers so check-then-write sequences stay atomic on
	// drivers without row locking (SQLite). Readers share it so they never
	// see the table between ClearMeals dropping and recreating it.
	mu sync.RWMutex
}

// NewMealService creates a new instance of MealService
func NewMealService(db *gorm.DB) MealService {
	return &mealService{db: db}
}

func (s *mealService) CreateMeal(name, cuisine string, price decimal.Decimal, difficulty models.Difficulty) (int, error) {
	name = strings.TrimSpace(name)
	cuisine = strings.TrimSpace(cuisine)
	if name == "" {
		return 0, models.NewValidationError("invalid meal name: name must not be empty")
	}
	if cuisine == "" {
		return 0, models.NewValidationError("invalid cuisine: cuisine must not be empty")
	}
	if !price.IsPositive() {
		return 0, models.NewValidationError("invalid price: %s. price must be a positive number", price.String())
	}
	if !difficulty.Valid() {
		return 0, models.NewValidationError("invalid difficulty level: %s. must be 'LOW', 'MED', or 'HIGH'", difficulty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := mealRecord{
		Meal:       name,
		Cuisine:    cuisine,
		Price:      price,
		Difficulty: difficulty,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&mealRecord{}).Where("meal = ? AND deleted = ?", name, false).Count(&count).Error; err != nil {
			return fmt.Errorf("check meal name: %w", err)
		}
		if count > 0 {
			return models.NewConflictError(name)
		}
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.NewConflictError(name)
			}
			return fmt.Errorf("insert meal: %w", err)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("meal", name).Warn("Failed to create meal")
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"meal_id":    record.ID,
		"meal":       name,
		"cuisine":    cuisine,
		"difficulty": difficulty,
	}).Info("Meal created")
	return record.ID, nil
}

func (s *mealService) GetMealByID(id int) (models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, err := findActiveByID(s.db, id)
	if err != nil {
		return models.Meal{}, err
	}
	return record.toMeal(), nil
}

func (s *mealService) GetMealByName(name string) (models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var record mealRecord
	err := s.db.Where("meal = ? AND deleted = ?", name, false).First(&record).Error
	if err == nil {
		return record.toMeal(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Meal{}, fmt.Errorf("get meal by name: %w", err)
	}

	var deleted int64
	if err := s.db.Model(&mealRecord{}).Where("meal = ? AND deleted = ?", name, true).Count(&deleted).Error; err != nil {
		return models.Meal{}, fmt.Errorf("get meal by name: %w", err)
	}
	if deleted > 0 {
		return models.Meal{}, models.NewGoneError("meal with name '%s' has been deleted", name)
	}
	return models.Meal{}, models.NewNotFoundError("meal with name '%s' not found", name)
}

func (s *mealService) DeleteMeal(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		record, err := findActiveByID(tx, id)
		if err != nil {
			return err
		}
		return tx.Model(&record).Update("deleted", true).Error
	})
	if err != nil {
		return err
	}
	log.WithField("meal_id", id).Info("Meal marked as deleted")
	return nil
}

func (s *mealService) UpdateMealStats(id int, outcome models.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		return updateStats(tx, id, outcome)
	})
}

func (s *mealService) RecordBattle(winnerID, loserID int) error {
	if winnerID == loserID {
		return models.NewValidationError("a meal cannot battle itself (id %d)", winnerID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := updateStats(tx, winnerID, models.OutcomeWin); err != nil {
			return err
		}
		return updateStats(tx, loserID, models.OutcomeLoss)
	})
}

// updateStats is the only code path that changes battles and wins.
func updateStats(tx *gorm.DB, id int, outcome models.Outcome) error {
	var wins int
	switch outcome {
	case models.OutcomeWin:
		wins = 1
	case models.OutcomeLoss:
	default:
		return models.NewValidationError("invalid result: %s. expected 'win' or 'loss'", outcome)
	}

	record, err := findActiveByID(tx, id)
	if err != nil {
		return err
	}

	err = tx.Model(&record).Updates(map[string]interface{}{
		"battles": gorm.Expr("battles + ?", 1),
		"wins":    gorm.Expr("wins + ?", wins),
	}).Error
	if err != nil {
		return fmt.Errorf("update stats for meal %d: %w", id, err)
	}

	log.WithFields(logrus.Fields{
		"meal_id": id,
		"outcome": outcome,
	}).Info("Meal stats updated")
	return nil
}

func (s *mealService) ClearMeals() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Recreating the table also restarts id assignment.
	if err := s.db.Migrator().DropTable(&mealRecord{}); err != nil {
		return fmt.Errorf("drop meals table: %w", err)
	}
	if err := AutoMigrate(s.db); err != nil {
		return fmt.Errorf("recreate meals table: %w", err)
	}
	log.Info("Meal catalog cleared")
	return nil
}

func (s *mealService) GetLeaderboard(sortBy models.LeaderboardSort) ([]models.LeaderboardEntry, error) {
	var less func(a, b mealRecord) bool
	switch sortBy {
	case models.SortByWins:
		less = func(a, b mealRecord) bool { return a.Wins > b.Wins }
	case models.SortByWinPct:
		// Cross-multiplied so equal ratios compare equal.
		less = func(a, b mealRecord) bool { return a.Wins*b.Battles > b.Wins*a.Battles }
	default:
		return nil, models.NewValidationError("invalid sort_by parameter: %s", sortBy)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []mealRecord
	err := s.db.Where("deleted = ? AND battles > ?", false, 0).Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})

	leaderboard := make([]models.LeaderboardEntry, 0, len(records))
	for _, r := range records {
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			Name:       r.Meal,
			Cuisine:    r.Cuisine,
			Price:      r.Price,
			Difficulty: r.Difficulty,
			Battles:    r.Battles,
			Wins:       r.Wins,
			WinPct:     winPct(r.Wins, r.Battles),
		})
	}
	return leaderboard, nil
}

// winPct returns 100*wins/battles rounded to one decimal place
func winPct(wins, battles int) float64 {
	return math.Round(float64(wins)*1000/float64(battles)) / 10
}

func findActiveByID(db *gorm.DB, id int) (mealRecord, error) {
	var record mealRecord
	if err := db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return mealRecord{}, models.NewNotFoundError("meal with id %d not found", id)
		}
		return mealRecord{}, fmt.Errorf("get meal %d: %w", id, err)
	}
	if record.Deleted {
		return mealRecord{}, models.NewGoneError("meal with id %d has been deleted", id)
	}
	return record, nil
}
