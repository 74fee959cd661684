package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Directorio-api/internal/domain/activitytree"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

const organizationColumns = `o.id, o.name, o.building_id, o.created_at, o.updated_at`

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
// Las relaciones se cargan en lote por página: edificios, teléfonos, actividades y
// los descendientes de esas actividades.
type OrganizationRepo struct {
	q          Querier
	buildings  *BuildingRepo
	activities *ActivityRepo
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{
		q:          q,
		buildings:  NewBuildingRepository(q),
		activities: NewActivityRepository(q),
	}
}

// GetByID obtiene una organización por ID con sus relaciones.
func (r *OrganizationRepo) GetByID(ctx context.Context, id int64) (*entity.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations o WHERE o.id = $1`
	var o entity.Organization
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Name, &o.BuildingID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	list := []*entity.Organization{&o}
	if err := r.hydrate(ctx, list); err != nil {
		return nil, err
	}
	return &o, nil
}

// List página de organizaciones que cumplen el filtro, ordenadas por id.
func (r *OrganizationRepo) List(ctx context.Context, filter repository.OrganizationFilter, limit, offset int) ([]*entity.Organization, int, error) {
	w := organizationWhere(filter)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM organizations o`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count organizations: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	where := w.sql()
	query := `SELECT ` + organizationColumns + ` FROM organizations o` + where +
		` ORDER BY o.id LIMIT ` + w.bind(limit) + ` OFFSET ` + w.bind(offset)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var list []*entity.Organization
	for rows.Next() {
		var o entity.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.BuildingID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}

	if err := r.hydrate(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func organizationWhere(filter repository.OrganizationFilter) *whereBuilder {
	w := &whereBuilder{}
	if len(filter.BuildingIDs) > 0 {
		w.add("o.building_id = ANY(?)", filter.BuildingIDs)
	}
	if len(filter.ActivityIDs) > 0 {
		w.add(`EXISTS (SELECT 1 FROM organization_activity oa
			WHERE oa.organization_id = o.id AND oa.activity_id = ANY(?))`, filter.ActivityIDs)
	}
	if filter.NameContains != "" {
		w.add(`lower(o.name) LIKE ? ESCAPE '\'`, containsPattern(filter.NameContains))
	}
	return w
}

// hydrate completa Building, Phones y Activities (con subárbol) de la página.
func (r *OrganizationRepo) hydrate(ctx context.Context, list []*entity.Organization) error {
	if len(list) == 0 {
		return nil
	}
	orgIDs := make([]int64, 0, len(list))
	buildingIDs := make([]int64, 0, len(list))
	for _, o := range list {
		orgIDs = append(orgIDs, o.ID)
		buildingIDs = append(buildingIDs, o.BuildingID)
	}

	buildings, err := r.buildings.ByIDs(ctx, buildingIDs)
	if err != nil {
		return err
	}
	phones, err := r.phones(ctx, orgIDs)
	if err != nil {
		return err
	}
	linked, err := r.activities.LinkedTo(ctx, orgIDs)
	if err != nil {
		return err
	}

	var roots []int64
	for _, acts := range linked {
		for _, a := range acts {
			roots = append(roots, a.ID)
		}
	}
	descendants, err := r.activities.Descendants(ctx, roots)
	if err != nil {
		return err
	}
	idx := activitytree.NewChildIndex(descendants)

	for _, o := range list {
		o.Building = buildings[o.BuildingID]
		o.Phones = phones[o.ID]
		o.Activities = make([]entity.Activity, 0, len(linked[o.ID]))
		for _, a := range linked[o.ID] {
			o.Activities = append(o.Activities, activitytree.Nest(a, idx))
		}
	}
	return nil
}

func (r *OrganizationRepo) phones(ctx context.Context, orgIDs []int64) (map[int64][]entity.OrganizationPhone, error) {
	query := `
		SELECT id, organization_id, phone, created_at, updated_at
		FROM organization_phones
		WHERE organization_id = ANY($1)
		ORDER BY organization_id, id`
	rows, err := r.q.Query(ctx, query, orgIDs)
	if err != nil {
		return nil, fmt.Errorf("organization phones: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.OrganizationPhone, len(orgIDs))
	for rows.Next() {
		var p entity.OrganizationPhone
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization phone: %w", err)
		}
		out[p.OrganizationID] = append(out[p.OrganizationID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("organization phones: %w", err)
	}
	return out, nil
}
