package models

import "time"

// Order is a committed sale. Total is frozen at checkout time and never
// recomputed from the line items afterwards.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Total     float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"order_items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}
