package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockward/internal/domain/audit"
	"stockward/internal/shared/errors"
	"stockward/internal/shared/logger"
)

func TestCreateItem_PersistsAndAudits(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateItemUseCase(f.itemRepo, f.recorder, logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateItemCommand{
		ActorID:  "admin-1",
		Name:     "Widget",
		Quantity: 100,
		Price:    2.5,
		Category: "parts",
	})
	require.NoError(t, err)
	require.NotZero(t, result.ID)
	assert.Equal(t, 100, result.Quantity)

	entries := f.auditFor(t, result.ID, audit.ActionCreateItem)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin-1", entries[0].ActorID)
	assert.Nil(t, entries[0].OldValues)
	assert.Equal(t, float64(100), entries[0].NewValues["quantity"])
}

func TestCreateItem_Validation(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateItemUseCase(f.itemRepo, f.recorder, logger.NewLogger())
	ctx := context.Background()

	tests := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{"empty name", CreateItemCommand{ActorID: "a", Name: "  ", Quantity: 1, Price: 1}},
		{"negative quantity", CreateItemCommand{ActorID: "a", Name: "X", Quantity: -1, Price: 1}},
		{"negative price", CreateItemCommand{ActorID: "a", Name: "X", Quantity: 1, Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
