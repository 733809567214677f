package main

import (
	"fmt"

	_ "github.com/franciscosanchezn/gin-meal-max/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-meal-max/internal/config"
	"github.com/franciscosanchezn/gin-meal-max/internal/controllers"
	"github.com/franciscosanchezn/gin-meal-max/internal/database"
	"github.com/franciscosanchezn/gin-meal-max/internal/middleware"
	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/franciscosanchezn/gin-meal-max/internal/random"
	"github.com/franciscosanchezn/gin-meal-max/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db               *gorm.DB
	mealService      services.MealService
	mealController   controllers.MealController
	battleController controllers.BattleController
	configuration    *config.Config
)

// @title Meal Max API
// @version 1.0
// @description Meal catalog and head-to-head meal battles
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	applyLogLevel(configuration)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	mealService = services.NewMealService(db)
	arena := services.NewBattleArena(mealService, newRandomSource(configuration))
	mealController = controllers.NewMealController(mealService)
	battleController = controllers.NewBattleController(mealService, arena)

	if configuration.SeedDB {
		seedDatabase()
	}

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// applyLogLevel overrides the APP_ENV log level when LOG_LEVEL is set
func applyLogLevel(conf *config.Config) {
	level, ok := conf.Level()
	if !ok {
		return
	}
	log.SetLevel(level)
	config.SetLogLevel(level)
	database.SetLogLevel(level)
	services.SetLogLevel(level)
	random.SetLogLevel(level)
	controllers.SetLogLevel(level)
	log.Infof("Log level set to %s", level)
}

// setupDatabase opens the configured database and migrates the meals table
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(conf.Database(), services.AutoMigrate)
	checkPanicErr(err)
}

// newRandomSource picks the random source named in the configuration
func newRandomSource(conf *config.Config) random.Source {
	if conf.RandomSource == config.RandomSourceLocal {
		log.Warn("Using local pseudo-random source for battles")
		return random.NewLocalSource()
	}
	return random.NewRandomOrgSource(conf.RandomURL, conf.RandomTimeout)
}

// seedDatabase adds a starter set of meals, skipping names that already exist
func seedDatabase() {
	log.Info("Seeding database with initial data")
	seeds := []struct {
		name       string
		cuisine    string
		price      string
		difficulty models.Difficulty
	}{
		{"Spaghetti Carbonara", "Italian", "14.50", models.DifficultyMed},
		{"Pad Thai", "Thai", "12.00", models.DifficultyLow},
		{"Beef Wellington", "British", "40.80", models.DifficultyHigh},
		{"Peking Duck", "Chinese", "33.98", models.DifficultyHigh},
	}
	for _, seed := range seeds {
		_, err := mealService.CreateMeal(seed.name, seed.cuisine, decimal.RequireFromString(seed.price), seed.difficulty)
		if err != nil {
			log.WithError(err).WithField("meal", seed.name).Warn("Skipping seed meal")
		}
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log.StandardLogger()))

	controllers.RegisterRoutes(router, mealController, battleController)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
