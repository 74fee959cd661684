package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// OrganizationFilter criterios combinables (AND) de los listados de organizaciones.
// Un slice vacío significa "sin filtro"; el caso de uso corta antes de llamar al
// repositorio cuando un filtro de ids quedó sin coincidencias.
type OrganizationFilter struct {
	BuildingIDs  []int64
	ActivityIDs  []int64 // organizaciones vinculadas a cualquiera de estas actividades
	NameContains string  // normalizado con domain.FoldSearch
}

// OrganizationRepository define el puerto de persistencia para Organization (solo lectura).
// Las organizaciones devueltas traen Building, Phones y Activities (con sus hijos) cargados.
type OrganizationRepository interface {
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Organization, error)
	// List devuelve una página ordenada por id y el total que cumple el filtro.
	List(ctx context.Context, filter OrganizationFilter, limit, offset int) ([]*entity.Organization, int, error)
}
