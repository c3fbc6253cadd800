package models

// Menu is a sellable item. Name is unique across the whole menu; Image is an
// optional opaque URI and may be NULL for seeded rows.
type Menu struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Price float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Image *string `gorm:"type:varchar(255)" json:"image,omitempty"`
}

// TableName keeps the singular table name used by earlier installs.
func (Menu) TableName() string {
	return "menu"
}
