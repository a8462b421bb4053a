package models

import (
	"time"

	"stockward/internal/shared/constants"
)

// ItemModel represents the database persistence model for inventory items.
// This is the anti-corruption layer between domain and database.
type ItemModel struct {
	ID        uint    `gorm:"primarykey"`
	Name      string  `gorm:"not null;size:255;index:idx_items_name"`
	Quantity  int     `gorm:"not null;default:0;index:idx_items_quantity"`
	Price     float64 `gorm:"not null;default:0"`
	Category  *string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string {
	return constants.TableItems
}
