package models

// OrderItem is one menu item's quantity inside a committed order. MenuID is a
// weak reference: the menu row may be deleted later, the line stays. Price is
// the unit price at purchase time, independent of later menu edits.
type OrderItem struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	OrderID uint    `gorm:"not null;index" json:"order_id"`
	MenuID  uint    `gorm:"not null" json:"menu_id"`
	Qty     int     `gorm:"not null" json:"qty"`
	Price   float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
