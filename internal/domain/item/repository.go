package item

import "context"

// Repository is the persistence contract for inventory items. Mutating
// methods that overwrite existing state capture the pre-mutation row under
// a row lock and return it, so callers can audit the prior state without a
// lost-update window.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id uint) (*Item, error)
	List(ctx context.Context) ([]*Item, error)

	// Update applies a partial update and returns the pre-mutation and
	// post-mutation rows.
	Update(ctx context.Context, id uint, fields UpdateFields) (prev *Item, updated *Item, err error)

	// UpdateQuantity replaces the quantity only. Same prev/updated contract
	// as Update.
	UpdateQuantity(ctx context.Context, id uint, quantity int) (prev *Item, updated *Item, err error)

	// Delete removes the item and returns the deleted row.
	Delete(ctx context.Context, id uint) (prev *Item, err error)

	// ListBelowQuantity returns items with quantity strictly below the
	// threshold, ordered by quantity ascending.
	ListBelowQuantity(ctx context.Context, threshold int) ([]*Item, error)
}
