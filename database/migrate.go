package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

// Starter menu inserted once on a fresh install.
var seedItems = []models.Menu{
	{Name: "Tea", Price: 10},
	{Name: "Dosai", Price: 45},
	{Name: "Parotta", Price: 20},
}

// Migrate creates the menu/orders/order_items tables if absent, upgrades an
// older menu table that predates the image column, and seeds the starter menu.
// Safe to call on every process start.
func Migrate(db *gorm.DB) error {
	// Installs older than the image column have a menu table without it;
	// add the column in place before AutoMigrate touches the table.
	if db.Migrator().HasTable(&models.Menu{}) {
		EnsureImageColumn(db)
	}

	if err := db.AutoMigrate(
		&models.Menu{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	return SeedMenu(db)
}

// EnsureImageColumn adds the image column to the menu table if it is missing.
// Repeated calls are no-ops, and a failed ALTER is logged rather than failing
// the whole initialization.
func EnsureImageColumn(db *gorm.DB) {
	if db.Migrator().HasColumn(&models.Menu{}, "image") {
		return
	}

	utils.InfoLogger.Println("Adding image column to menu table...")
	if err := db.Migrator().AddColumn(&models.Menu{}, "Image"); err != nil {
		utils.ErrorLogger.Printf("Error adding image column: %v", err)
		return
	}
	utils.InfoLogger.Println("Image column added successfully.")
}

// SeedMenu inserts the starter items when the menu table is empty. Conflicting
// names are skipped silently; a non-empty menu makes this a no-op.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Menu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, item := range seedItems {
		item := item
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&item).Error; err != nil {
			return err
		}
	}
	utils.InfoLogger.Printf("Seeded %d starter menu items", len(seedItems))
	return nil
}
