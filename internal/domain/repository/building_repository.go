package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
)

// BuildingRepository define el puerto de persistencia para Building (solo lectura).
type BuildingRepository interface {
	// List devuelve una página de edificios ordenados por id y el total.
	List(ctx context.Context, limit, offset int) ([]*entity.Building, int, error)
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Building, error)
	// ListWithinBounds devuelve los candidatos del prefiltro rectangular del filtro de radio.
	ListWithinBounds(ctx context.Context, bounds geo.Bounds) ([]*entity.Building, error)
}
