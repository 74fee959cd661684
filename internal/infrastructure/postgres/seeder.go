package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
)

// SeedStats filas enviadas por tabla.
type SeedStats struct {
	Buildings     int
	Activities    int
	Organizations int
	Phones        int
	Links         int
}

// Seed carga el dataset en una sola transacción. Con reset vacía antes las tablas;
// sin reset las filas con id existente se dejan como están. Al final ajusta las
// secuencias BIGSERIAL al id máximo.
func Seed(ctx context.Context, pool *pgxpool.Pool, ds seed.Dataset, reset bool) (SeedStats, error) {
	var stats SeedStats
	err := NewTxRunner(pool).Run(ctx, func(q Querier) error {
		if reset {
			const truncate = `TRUNCATE organization_activity, organization_phones, organizations,
				activities, buildings RESTART IDENTITY CASCADE`
			if _, err := q.Exec(ctx, truncate); err != nil {
				return fmt.Errorf("truncate: %w", err)
			}
		}

		batch := &pgx.Batch{}
		for _, b := range ds.Buildings {
			batch.Queue(`
				INSERT INTO buildings (id, address, latitude, longitude, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`,
				b.ID, b.Address, b.Latitude, b.Longitude, b.CreatedAt, b.UpdatedAt)
			stats.Buildings++
		}
		// Primero sin padre; parent_id se fija después para no depender del orden.
		for _, a := range ds.Activities {
			batch.Queue(`
				INSERT INTO activities (id, name, parent_id, created_at, updated_at)
				VALUES ($1, $2, NULL, $3, $4) ON CONFLICT (id) DO NOTHING`,
				a.ID, a.Name, a.CreatedAt, a.UpdatedAt)
			stats.Activities++
		}
		for _, a := range ds.Activities {
			if a.ParentID == nil {
				continue
			}
			batch.Queue(`UPDATE activities SET parent_id = $2 WHERE id = $1 AND parent_id IS NULL`, a.ID, *a.ParentID)
		}
		for _, o := range ds.Organizations {
			batch.Queue(`
				INSERT INTO organizations (id, name, building_id, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
				o.ID, o.Name, o.BuildingID, o.CreatedAt, o.UpdatedAt)
			stats.Organizations++
			for _, p := range o.Phones {
				batch.Queue(`
					INSERT INTO organization_phones (id, organization_id, phone, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
					p.ID, o.ID, p.Phone, p.CreatedAt, p.UpdatedAt)
				stats.Phones++
			}
		}
		for _, l := range ds.Links {
			batch.Queue(`
				INSERT INTO organization_activity (organization_id, activity_id)
				VALUES ($1, $2) ON CONFLICT (organization_id, activity_id) DO NOTHING`,
				l.OrganizationID, l.ActivityID)
			stats.Links++
		}

		if err := q.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert dataset: %w", err)
		}
		return resetSequences(ctx, q)
	})
	if err != nil {
		return SeedStats{}, err
	}
	return stats, nil
}

func resetSequences(ctx context.Context, q Querier) error {
	tables := []string{"buildings", "activities", "organizations", "organization_phones", "organization_activity"}
	for _, t := range tables {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`, t)
		if _, err := q.Exec(ctx, query); err != nil {
			return fmt.Errorf("setval %s: %w", t, err)
		}
	}
	return nil
}
