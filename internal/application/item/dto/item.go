// Package dto holds the item payloads exchanged with the HTTP layer.
package dto

import (
	"time"

	"stockward/internal/domain/item"
)

// ItemDTO is the outward representation of an inventory item.
type ItemDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromDomain converts a domain item to its DTO.
func FromDomain(it *item.Item) *ItemDTO {
	return &ItemDTO{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Category:  it.Category,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

// FromDomainList converts a slice of domain items.
func FromDomainList(items []*item.Item) []*ItemDTO {
	out := make([]*ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, FromDomain(it))
	}
	return out
}
