// Package item defines the inventory item entity and its repository contract.
package item

import (
	"strings"
	"time"

	"stockward/internal/shared/errors"
)

// Item is an inventory item. Quantity is the only field touched by
// non-admin mutation paths.
type Item struct {
	ID        uint
	Name      string
	Quantity  int
	Price     float64
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New builds a validated item.
func New(name string, quantity int, price float64, category string) (*Item, error) {
	it := &Item{
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Price:    price,
		Category: strings.TrimSpace(category),
	}
	if err := it.Validate(); err != nil {
		return nil, err
	}
	return it, nil
}

// Validate enforces the item invariants.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.NewValidationError("item name cannot be empty")
	}
	if i.Quantity < 0 {
		return errors.NewValidationError("quantity cannot be negative")
	}
	if i.Price < 0 {
		return errors.NewValidationError("price cannot be negative")
	}
	return nil
}

// Value returns the stock value of the item (quantity x price).
func (i *Item) Value() float64 {
	return float64(i.Quantity) * i.Price
}

// Snapshot returns the item state as stored in audit trail entries.
func (i *Item) Snapshot() map[string]any {
	return map[string]any{
		"id":       i.ID,
		"name":     i.Name,
		"quantity": i.Quantity,
		"price":    i.Price,
		"category": i.Category,
	}
}

// UpdateFields carries the optional fields of a full item update. Nil
// means "leave unchanged".
type UpdateFields struct {
	Name     *string
	Quantity *int
	Price    *float64
	Category *string
}

// Empty reports whether no field is set.
func (f UpdateFields) Empty() bool {
	return f.Name == nil && f.Quantity == nil && f.Price == nil && f.Category == nil
}

// Validate checks the fields that are present.
func (f UpdateFields) Validate() error {
	if f.Name != nil && strings.TrimSpace(*f.Name) == "" {
		return errors.NewValidationError("item name cannot be empty")
	}
	if f.Quantity != nil && *f.Quantity < 0 {
		return errors.NewValidationError("quantity cannot be negative")
	}
	if f.Price != nil && *f.Price < 0 {
		return errors.NewValidationError("price cannot be negative")
	}
	return nil
}
