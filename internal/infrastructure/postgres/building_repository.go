package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.BuildingRepository = (*BuildingRepo)(nil)

const buildingColumns = `id, address, latitude, longitude, created_at, updated_at`

// BuildingRepo implementación del puerto BuildingRepository sobre PostgreSQL.
type BuildingRepo struct {
	q Querier
}

// NewBuildingRepository construye el adaptador de persistencia para edificios.
func NewBuildingRepository(q Querier) *BuildingRepo {
	return &BuildingRepo{q: q}
}

// List devuelve una página de edificios ordenados por id y el total.
func (r *BuildingRepo) List(ctx context.Context, limit, offset int) ([]*entity.Building, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM buildings`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count buildings: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	query := `SELECT ` + buildingColumns + ` FROM buildings ORDER BY id LIMIT $1 OFFSET $2`
	list, err := r.query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list buildings: %w", err)
	}
	return list, total, nil
}

// GetByID obtiene un edificio por ID.
func (r *BuildingRepo) GetByID(ctx context.Context, id int64) (*entity.Building, error) {
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = $1`
	b, err := scanBuilding(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get building: %w", err)
	}
	return b, nil
}

// ListWithinBounds edificios dentro del rectángulo de latitud/longitud.
// Con AllLongitudes solo se filtra por latitud.
func (r *BuildingRepo) ListWithinBounds(ctx context.Context, bounds geo.Bounds) ([]*entity.Building, error) {
	var w whereBuilder
	w.add("latitude >= ?", decimal.NewFromFloat(bounds.MinLat))
	w.add("latitude <= ?", decimal.NewFromFloat(bounds.MaxLat))
	if !bounds.AllLongitudes {
		w.add("longitude >= ?", decimal.NewFromFloat(bounds.MinLon))
		w.add("longitude <= ?", decimal.NewFromFloat(bounds.MaxLon))
	}

	query := `SELECT ` + buildingColumns + ` FROM buildings` + w.sql() + ` ORDER BY id`
	list, err := r.query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list buildings within bounds: %w", err)
	}
	return list, nil
}

// ByIDs edificios indexados por id; usado al hidratar organizaciones.
func (r *BuildingRepo) ByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Building, error) {
	out := make(map[int64]*entity.Building, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT ` + buildingColumns + ` FROM buildings WHERE id = ANY($1)`
	list, err := r.query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("buildings by ids: %w", err)
	}
	for _, b := range list {
		out[b.ID] = b
	}
	return out, nil
}

func (r *BuildingRepo) query(ctx context.Context, query string, args ...any) ([]*entity.Building, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*entity.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func scanBuilding(row pgx.Row) (*entity.Building, error) {
	var b entity.Building
	if err := row.Scan(&b.ID, &b.Address, &b.Latitude, &b.Longitude, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}
