package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/franciscosanchezn/gin-meal-max/internal/database"
	"github.com/franciscosanchezn/gin-meal-max/internal/models"
	"github.com/franciscosanchezn/gin-meal-max/internal/services"
	"github.com/shopspring/decimal"
)

// Imports meals from a CSV file with the columns meal,cuisine,price,difficulty.
// A header row is skipped when its first column is "meal".
func main() {
	// Parse command line flags
	file := flag.String("file", "meals.csv", "CSV file to import")
	dbPath := flag.String("db", "meal_max.sqlite", "SQLite database file")
	clearFirst := flag.Bool("clear", false, "Clear the catalog before importing")
	flag.Parse()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: *dbPath}, services.AutoMigrate)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	mealService := services.NewMealService(db)

	if *clearFirst {
		if err := mealService.ClearMeals(); err != nil {
			log.Fatal("Failed to clear meals:", err)
		}
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("Failed to open file:", err)
	}
	defer f.Close()

	imported, skipped, err := importMeals(csv.NewReader(f), mealService)
	if err != nil {
		log.Fatal("Import failed:", err)
	}
	fmt.Printf("Imported %d meals, skipped %d\n", imported, skipped)
}

// importMeals creates one meal per row. Rows rejected by the catalog are
// reported and skipped; a malformed file stops the import.
func importMeals(reader *csv.Reader, mealService services.MealService) (int, int, error) {
	reader.FieldsPerRecord = 4
	reader.TrimLeadingSpace = true

	imported, skipped := 0, 0
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return imported, skipped, nil
		}
		if err != nil {
			return imported, skipped, err
		}
		if line == 1 && strings.EqualFold(row[0], "meal") {
			continue
		}

		price, err := decimal.NewFromString(row[2])
		if err != nil {
			fmt.Printf("line %d: invalid price %q, skipping\n", line, row[2])
			skipped++
			continue
		}

		difficulty := models.Difficulty(strings.ToUpper(row[3]))
		if _, err := mealService.CreateMeal(row[0], row[1], price, difficulty); err != nil {
			fmt.Printf("line %d: %v, skipping\n", line, err)
			skipped++
			continue
		}
		imported++
	}
}
