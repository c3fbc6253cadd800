package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
)

type OrderStore struct {
	DB *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{DB: db}
}

// OrderLineInput is one cart line at checkout time. Price is the unit price
// shown to the user, copied verbatim into the order.
type OrderLineInput struct {
	MenuID uint
	Qty    int
	Price  float64
}

// OrderLineView is a persisted line joined with the current menu name. Lines
// whose menu item was deleted are dropped by the join.
type OrderLineView struct {
	ID      uint    `json:"id"`
	OrderID uint    `json:"order_id"`
	MenuID  uint    `json:"menu_id"`
	Qty     int     `json:"qty"`
	Price   float64 `json:"price"`
	Name    string  `json:"name"`
}

// ExportRow is one (order, line item) tuple for the backup pipeline.
type ExportRow struct {
	OrderID   uint      `json:"order_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Qty       int       `json:"qty"`
	Price     float64   `json:"price"`
}

// SaveOrder writes the order header and all its lines in one transaction.
// The header's timestamp is assigned here; a failure partway through leaves
// nothing visible.
func (s *OrderStore) SaveOrder(lines []OrderLineInput, total float64) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must have at least one line", ErrValidation)
	}

	order := models.Order{Total: total}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, models.OrderItem{
				OrderID: order.ID,
				MenuID:  line.MenuID,
				Qty:     line.Qty,
				Price:   line.Price,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return &order, nil
}

// ListOrders returns all orders, newest first.
func (s *OrderStore) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return orders, nil
}

// ListOrderLines returns the lines of one order joined with the current menu
// name. The inner join hides lines whose menu item was deleted; the order's
// stored total is unaffected.
func (s *OrderStore) ListOrderLines(orderID uint) ([]OrderLineView, error) {
	var rows []OrderLineView
	err := s.DB.Raw(`
		SELECT
			oi.id,
			oi.order_id,
			oi.menu_id,
			oi.qty,
			oi.price,
			m.name
		FROM order_items oi
		JOIN menu m ON m.id = oi.menu_id
		WHERE oi.order_id = ?`, orderID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return rows, nil
}

// ListOrdersForExport returns one flat row per line item across all orders,
// ascending by order id, as input to the backup pipeline. The same inner join
// (and the same orphaned-line limitation) as ListOrderLines applies.
func (s *OrderStore) ListOrdersForExport() ([]ExportRow, error) {
	var rows []ExportRow
	err := s.DB.Raw(`
		SELECT
			o.id AS order_id,
			o.total,
			o.created_at,
			m.name,
			oi.qty,
			oi.price
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN menu m ON m.id = oi.menu_id
		ORDER BY o.id ASC, oi.id ASC`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return rows, nil
}

// ClearOrders deletes every line item and order header. Destructive and
// irreversible; callers must have exported the data first.
func (s *OrderStore) ClearOrders() error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM order_items").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM orders").Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	// Restart identifiers from a clean baseline. Best effort: the sequence
	// rows only exist once something was inserted.
	s.DB.Exec("DELETE FROM sqlite_sequence WHERE name IN ('orders', 'order_items')")
	return nil
}
