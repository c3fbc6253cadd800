package store

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
)

type MenuStore struct {
	DB *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{DB: db}
}

// ListMenuItems returns every menu item ordered by name ascending.
func (s *MenuStore) ListMenuItems() ([]models.Menu, error) {
	var menus []models.Menu
	if err := s.DB.Order("name ASC").Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return menus, nil
}

// GetMenuItem returns one menu row by id.
func (s *MenuStore) GetMenuItem(id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &menu, nil
}

// AddMenuItem inserts a new menu row. A duplicate name yields ErrConflict,
// bad input yields ErrValidation.
func (s *MenuStore) AddMenuItem(name string, price float64, image *string) (*models.Menu, error) {
	name = strings.TrimSpace(name)
	if err := validateMenuInput(name, price); err != nil {
		return nil, err
	}

	menu := models.Menu{Name: name, Price: price, Image: image}
	if err := s.DB.Create(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrConflict, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &menu, nil
}

// UpdateMenuItem replaces name, price and image of an existing menu row.
func (s *MenuStore) UpdateMenuItem(id uint, name string, price float64, image *string) (*models.Menu, error) {
	name = strings.TrimSpace(name)
	if err := validateMenuInput(name, price); err != nil {
		return nil, err
	}

	var menu models.Menu
	if err := s.DB.First(&menu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: menu %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	menu.Name = name
	menu.Price = price
	menu.Image = image

	if err := s.DB.Save(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrConflict, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &menu, nil
}

// DeleteMenuItem removes the row if present. Deleting a missing id is a no-op.
func (s *MenuStore) DeleteMenuItem(id uint) error {
	if err := s.DB.Delete(&models.Menu{}, id).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// ResetMenu wipes the menu table and restarts its identifiers.
func (s *MenuStore) ResetMenu() error {
	if err := s.DB.Exec("DELETE FROM menu").Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	// Best effort: the sequence row only exists once something was inserted.
	s.DB.Exec("DELETE FROM sqlite_sequence WHERE name = 'menu'")
	return nil
}

// CleanupDuplicates keeps the first occurrence of each menu name and deletes
// the rest. Duplicates can only exist on installs that predate the unique
// index on name.
func (s *MenuStore) CleanupDuplicates() error {
	err := s.DB.Exec(`
		DELETE FROM menu
		WHERE id NOT IN (
			SELECT MIN(id)
			FROM menu
			GROUP BY name
		)`).Error
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func validateMenuInput(name string, price float64) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	}
	return nil
}
