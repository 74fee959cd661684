//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
	"github.com/jhoicas/Directorio-api/pkg/config"
)

// newDatabase levanta PostgreSQL en un contenedor, aplica migraciones y carga el dataset.
func newDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("directorio"),
		tcpostgres.WithUsername("directorio"),
		tcpostgres.WithPassword("directorio"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "iniciar contenedor postgres")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applied, err := postgres.Migrate(ctx, pool)
	require.NoError(t, err)
	require.Len(t, applied, 5)

	_, err = postgres.Seed(ctx, pool, seed.Default(time.Now().UTC()), true)
	require.NoError(t, err)
	return pool
}

func TestPostgres_Integracion(t *testing.T) {
	pool := newDatabase(t)
	ctx := context.Background()

	buildings := postgres.NewBuildingRepository(pool)
	activities := postgres.NewActivityRepository(pool)
	orgs := postgres.NewOrganizationRepository(pool)

	t.Run("migrar dos veces no aplica nada", func(t *testing.T) {
		applied, err := postgres.Migrate(ctx, pool)
		require.NoError(t, err)
		assert.Empty(t, applied)
	})

	t.Run("seed sin reset es idempotente", func(t *testing.T) {
		_, err := postgres.Seed(ctx, pool, seed.Default(time.Now().UTC()), false)
		require.NoError(t, err)
		_, total, err := buildings.List(ctx, 15, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("lc_ctype compatible con la búsqueda", func(t *testing.T) {
		ctype, err := postgres.DatabaseCType(ctx, pool)
		require.NoError(t, err)
		assert.True(t, postgres.FoldsUnicode(ctype), ctype)
	})

	t.Run("coordenadas como decimal", func(t *testing.T) {
		b, err := buildings.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, "55.7558", b.Latitude.String())
		assert.Equal(t, "37.6173", b.Longitude.String())

		missing, err := buildings.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("prefiltro rectangular", func(t *testing.T) {
		list, err := buildings.ListWithinBounds(ctx, geo.BoundsFor(geo.Point{Lat: 55.7558, Lon: 37.6173}, 1))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(1), list[0].ID)
	})

	t.Run("hijos y búsqueda por nombre", func(t *testing.T) {
		children, err := activities.ChildIDs(ctx, []int64{seed.ActivityCars})
		require.NoError(t, err)
		assert.Equal(t, []int64{seed.ActivityTrucks, seed.ActivityPassenger}, children)

		ids, err := activities.IDsByName(ctx, "легков")
		require.NoError(t, err)
		assert.Equal(t, []int64{seed.ActivityPassenger}, ids)

		all, err := activities.IDsByName(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 8)

		none, err := activities.IDsByName(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("organización hidratada", func(t *testing.T) {
		o, err := orgs.GetByID(ctx, seed.OrganizationAutoParts)
		require.NoError(t, err)
		require.NotNil(t, o)
		require.NotNil(t, o.Building)
		assert.Equal(t, int64(2), o.Building.ID)
		assert.Len(t, o.Phones, 2)
		require.Len(t, o.Activities, 2)
		assert.Equal(t, seed.ActivityTrucks, o.Activities[0].ID)
		assert.Equal(t, seed.ActivityPassenger, o.Activities[1].ID)
		require.Len(t, o.Activities[1].Children, 2)
		assert.Equal(t, seed.ActivityParts, o.Activities[1].Children[0].ID)
	})

	t.Run("filtros combinados", func(t *testing.T) {
		list, total, err := orgs.List(ctx, repository.OrganizationFilter{
			ActivityIDs:  []int64{seed.ActivityMeat, seed.ActivityTrucks},
			NameContains: "рога",
		}, 15, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, seed.OrganizationHorns, list[0].ID)

		_, total, err = orgs.List(ctx, repository.OrganizationFilter{}, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("casos de uso sobre postgres", func(t *testing.T) {
		uc := usecase.NewOrganizationUseCase(orgs, buildings, activities, 15)

		res, err := uc.ByActivities(ctx, "Еда", 1)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, seed.OrganizationHorns, res.Items[0].ID)

		res, err = uc.ByRadius(ctx, dto.RadiusQuery{Latitude: 55.7558, Longitude: 37.6173, Radius: 10}, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("actividad vinculada que desciende de otra vinculada en la misma página", func(t *testing.T) {
		_, err := pool.Exec(ctx, `INSERT INTO organizations (id, name, building_id) VALUES (3, 'ООО Автосалон', 1)`)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `INSERT INTO organization_activity (organization_id, activity_id) VALUES (3, $1)`, seed.ActivityCars)
		require.NoError(t, err)

		list, total, err := orgs.List(ctx, repository.OrganizationFilter{
			ActivityIDs: []int64{seed.ActivityCars, seed.ActivityTrucks},
		}, 15, 0)
		require.NoError(t, err)
		require.Equal(t, 2, total)
		require.Equal(t, seed.OrganizationAutoParts, list[0].ID)
		require.Equal(t, int64(3), list[1].ID)

		require.Len(t, list[1].Activities, 1)
		cars := list[1].Activities[0]
		assert.Equal(t, seed.ActivityCars, cars.ID)
		require.Len(t, cars.Children, 2, "Грузовые también está vinculada a otra organización de la página")
		assert.Equal(t, seed.ActivityTrucks, cars.Children[0].ID)
		assert.Equal(t, seed.ActivityPassenger, cars.Children[1].ID)
		assert.Len(t, cars.Children[1].Children, 2)
	})
}
