package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the embedded sqlite database. The store is single-process and
// single-user, so there is no pooling or replica concern here.
func InitDB() (*gorm.DB, error) {
	path := GetEnv("DB_PATH", "restaurant.db")

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetEnv returns the value of key or fallback when unset.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
