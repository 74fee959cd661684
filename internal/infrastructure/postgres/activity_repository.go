package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

const activityColumns = `id, name, parent_id, created_at, updated_at`

// ActivityRepo lectura del árbol de actividades sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// ChildIDs ids de los hijos directos de parentIDs.
func (r *ActivityRepo) ChildIDs(ctx context.Context, parentIDs []int64) ([]int64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id FROM activities WHERE parent_id = ANY($1) ORDER BY id`, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("child activities: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan child activities: %w", err)
	}
	return ids, nil
}

// IDsByName ids cuyo nombre en minúsculas contiene folded; vacío devuelve todas.
func (r *ActivityRepo) IDsByName(ctx context.Context, folded string) ([]int64, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if folded == "" {
		rows, err = r.q.Query(ctx, `SELECT id FROM activities ORDER BY id`)
	} else {
		rows, err = r.q.Query(ctx,
			`SELECT id FROM activities WHERE lower(name) LIKE $1 ESCAPE '\' ORDER BY id`,
			containsPattern(folded))
	}
	if err != nil {
		return nil, fmt.Errorf("activities by name: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan activities by name: %w", err)
	}
	return ids, nil
}

// Descendants todas las actividades bajo roots, nivel a nivel. Una raíz que a su
// vez desciende de otra raíz también aparece, para que el subárbol quede completo.
func (r *ActivityRepo) Descendants(ctx context.Context, roots []int64) ([]entity.Activity, error) {
	return collectDescendants(ctx, roots, func(ctx context.Context, parents []int64) ([]entity.Activity, error) {
		return r.query(ctx, `SELECT `+activityColumns+` FROM activities WHERE parent_id = ANY($1) ORDER BY id`, parents)
	})
}

// childLevel hijos directos de un conjunto de padres.
type childLevel func(ctx context.Context, parents []int64) ([]entity.Activity, error)

// collectDescendants recorre el árbol por niveles. expanded evita volver a pedir
// los hijos de un id; emitted evita duplicar filas en la salida.
func collectDescendants(ctx context.Context, roots []int64, level childLevel) ([]entity.Activity, error) {
	expanded := make(map[int64]bool, len(roots))
	var frontier []int64
	for _, id := range roots {
		if !expanded[id] {
			expanded[id] = true
			frontier = append(frontier, id)
		}
	}

	emitted := make(map[int64]bool)
	var out []entity.Activity
	for len(frontier) > 0 {
		children, err := level(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("activity descendants: %w", err)
		}
		var next []int64
		for _, a := range children {
			if !emitted[a.ID] {
				emitted[a.ID] = true
				out = append(out, a)
			}
			if !expanded[a.ID] {
				expanded[a.ID] = true
				next = append(next, a.ID)
			}
		}
		frontier = next
	}
	return out, nil
}

// LinkedTo actividades vinculadas a cada organización, ordenadas por id.
func (r *ActivityRepo) LinkedTo(ctx context.Context, orgIDs []int64) (map[int64][]entity.Activity, error) {
	out := make(map[int64][]entity.Activity, len(orgIDs))
	if len(orgIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT oa.organization_id, a.id, a.name, a.parent_id, a.created_at, a.updated_at
		FROM organization_activity oa
		JOIN activities a ON a.id = oa.activity_id
		WHERE oa.organization_id = ANY($1)
		ORDER BY oa.organization_id, a.id`
	rows, err := r.q.Query(ctx, query, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("linked activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orgID int64
			a     entity.Activity
		)
		if err := rows.Scan(&orgID, &a.ID, &a.Name, &a.ParentID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan linked activity: %w", err)
		}
		out[orgID] = append(out[orgID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("linked activities: %w", err)
	}
	return out, nil
}

func (r *ActivityRepo) query(ctx context.Context, query string, args ...any) ([]entity.Activity, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.ParentID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
