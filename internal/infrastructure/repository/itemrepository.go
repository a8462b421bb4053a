package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"stockward/internal/domain/item"
	"stockward/internal/infrastructure/persistence/models"
	"stockward/internal/shared/db"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

// ItemRepository implements item.Repository on GORM.
type ItemRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(database *gorm.DB, log logger.Interface) item.Repository {
	return &ItemRepository{
		db:     database,
		logger: log,
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) error {
	model := itemToModel(it)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create item", "name", it.Name, "error", err)
		return fmt.Errorf("failed to create item: %w", err)
	}

	*it = *itemToDomain(model)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint) (*item.Item, error) {
	var model models.ItemModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("item not found")
		}
		r.logger.Errorw("failed to get item", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return itemToDomain(&model), nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*item.Item, error) {
	var modelList []*models.ItemModel

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list items", "error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return itemsToDomain(modelList), nil
}

// Update applies the set fields inside a transaction that locks the row,
// so the returned prev snapshot is exactly the state the update replaced.
func (r *ItemRepository) Update(ctx context.Context, id uint, fields item.UpdateFields) (*item.Item, *item.Item, error) {
	var prev, updated *item.Item

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ItemModel
		if err := db.LockForUpdate(tx).First(&model, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewNotFoundError("item not found")
			}
			return fmt.Errorf("failed to lock item: %w", err)
		}
		prev = itemToDomain(&model)

		if fields.Name != nil {
			model.Name = *fields.Name
		}
		if fields.Quantity != nil {
			model.Quantity = *fields.Quantity
		}
		if fields.Price != nil {
			model.Price = *fields.Price
		}
		if fields.Category != nil {
			if *fields.Category == "" {
				model.Category = nil
			} else {
				model.Category = fields.Category
			}
		}

		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}
		updated = itemToDomain(&model)
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to update item", "id", id, "error", err)
		}
		return nil, nil, err
	}

	return prev, updated, nil
}

func (r *ItemRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) (*item.Item, *item.Item, error) {
	var prev, updated *item.Item

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ItemModel
		if err := db.LockForUpdate(tx).First(&model, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewNotFoundError("item not found")
			}
			return fmt.Errorf("failed to lock item: %w", err)
		}
		prev = itemToDomain(&model)

		model.Quantity = quantity
		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update item quantity: %w", err)
		}
		updated = itemToDomain(&model)
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to update item quantity", "id", id, "error", err)
		}
		return nil, nil, err
	}

	return prev, updated, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) (*item.Item, error) {
	var prev *item.Item

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.ItemModel
		if err := db.LockForUpdate(tx).First(&model, id).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewNotFoundError("item not found")
			}
			return fmt.Errorf("failed to lock item: %w", err)
		}
		prev = itemToDomain(&model)

		if err := tx.Delete(&model).Error; err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			r.logger.Errorw("failed to delete item", "id", id, "error", err)
		}
		return nil, err
	}

	return prev, nil
}

func (r *ItemRepository) ListBelowQuantity(ctx context.Context, threshold int) ([]*item.Item, error) {
	var modelList []*models.ItemModel

	err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order("quantity ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list low stock items", "threshold", threshold, "error", err)
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}

	return itemsToDomain(modelList), nil
}

func itemToModel(it *item.Item) *models.ItemModel {
	model := &models.ItemModel{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Price:     it.Price,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
	if it.Category != "" {
		category := it.Category
		model.Category = &category
	}
	return model
}

func itemToDomain(model *models.ItemModel) *item.Item {
	it := &item.Item{
		ID:        model.ID,
		Name:      model.Name,
		Quantity:  model.Quantity,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
	if model.Category != nil {
		it.Category = *model.Category
	}
	return it
}

func itemsToDomain(modelList []*models.ItemModel) []*item.Item {
	items := make([]*item.Item, 0, len(modelList))
	for _, model := range modelList {
		items = append(items, itemToDomain(model))
	}
	return items
}
