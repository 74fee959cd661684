package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
)

func TestBuildingUseCase_List(t *testing.T) {
	store := memory.New(seed.Default(testNow))
	uc := usecase.NewBuildingUseCase(memory.NewBuildingRepository(store), 1)

	first, err := uc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, int64(1), first.Items[0].ID)
	assert.Equal(t, 2, first.Total)

	past, err := uc.List(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, past.Items)
	assert.NotNil(t, past.Items)
}
