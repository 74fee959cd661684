package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 1, 10, 17, 21, 8, 0, time.UTC)

func newUseCase(ds seed.Dataset, perPage int) *usecase.OrganizationUseCase {
	store := memory.New(ds)
	return usecase.NewOrganizationUseCase(
		memory.NewOrganizationRepository(store),
		memory.NewBuildingRepository(store),
		memory.NewActivityRepository(store),
		perPage,
	)
}

func ids(list []dto.OrganizationResponse) []int64 {
	out := make([]int64, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

// datasetConEcuador agrega al seed un edificio en (0,0) con una organización.
func datasetConEcuador() seed.Dataset {
	ds := seed.Default(testNow)
	b := seed.NewBuilder(testNow).
		Building(10, "Null Island", "0", "0").
		Building(11, "A 0.99 km", "-0.0089", "0").
		Building(12, "A 5.6 km", "0.05", "0").
		Organization(10, "Isla Nula", 10, "000").
		Organization(11, "Cerca", 11).
		Organization(12, "Lejos", 12)
	extra := b.Dataset()
	ds.Buildings = append(ds.Buildings, extra.Buildings...)
	ds.Organizations = append(ds.Organizations, extra.Organizations...)
	return ds
}

// ──────────────────────────────────────────────────────────────────────────────
// Actividades: clausura vs vínculo directo
// ──────────────────────────────────────────────────────────────────────────────

func TestByActivities_RaizIncluyeDescendientes(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)

	out, err := uc.ByActivities(context.Background(), "Автомобили", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationAutoParts}, ids(out.Items))
	assert.Equal(t, 1, out.Total)
}

func TestByActivities_SinDistinguirMayusculas(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)

	out, err := uc.ByActivities(context.Background(), "ЕДА", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationHorns}, ids(out.Items))
}

func TestByActivities_TextoVacioDevuelveTodasLasVinculadas(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)

	out, err := uc.ByActivities(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationHorns, seed.OrganizationAutoParts}, ids(out.Items))
}

func TestByActivities_SinCoincidencias(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)

	out, err := uc.ByActivities(context.Background(), "не существует", 1)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
	assert.Zero(t, out.Total)
}

func TestByActivity_SoloVinculoDirecto(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)
	ctx := context.Background()

	trucks, err := uc.ByActivity(ctx, seed.ActivityTrucks, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationAutoParts}, ids(trucks.Items))

	cars, err := uc.ByActivity(ctx, seed.ActivityCars, 1)
	require.NoError(t, err)
	assert.Empty(t, cars.Items, "ninguna organización está vinculada directamente a la raíz")

	viaClosure, err := uc.ByActivities(ctx, "Автомобили", 1)
	require.NoError(t, err)
	assert.NotEqual(t, ids(cars.Items), ids(viaClosure.Items), "byActivity y byActivities difieren en un árbol con hijos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Radio
// ──────────────────────────────────────────────────────────────────────────────

func TestByRadius_PuntoExactoIncluido(t *testing.T) {
	uc := newUseCase(datasetConEcuador(), 15)

	out, err := uc.ByRadius(context.Background(), dto.RadiusQuery{Latitude: 0, Longitude: 0, Radius: 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11}, ids(out.Items))
}

func TestByRadius_BordeDelRadio(t *testing.T) {
	uc := newUseCase(datasetConEcuador(), 15)
	edge := geo.DistanceKm(geo.Point{}, geo.Point{Lat: 0.05, Lon: 0})

	in, err := uc.ByRadius(context.Background(), dto.RadiusQuery{Radius: edge}, 1)
	require.NoError(t, err)
	assert.Contains(t, ids(in.Items), int64(12))

	out, err := uc.ByRadius(context.Background(), dto.RadiusQuery{Radius: edge - 1e-6}, 1)
	require.NoError(t, err)
	assert.NotContains(t, ids(out.Items), int64(12))
}

func TestByRadius_RadioNegativoNoDevuelveNada(t *testing.T) {
	uc := newUseCase(datasetConEcuador(), 15)

	out, err := uc.ByRadius(context.Background(), dto.RadiusQuery{Radius: -5}, 1)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestByRadius_CoordenadasInvalidas(t *testing.T) {
	uc := newUseCase(datasetConEcuador(), 15)

	_, err := uc.ByRadius(context.Background(), dto.RadiusQuery{Latitude: 91, Radius: 1}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda por nombre, edificio e id
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)
	ctx := context.Background()

	all, err := uc.Search(ctx, "", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	horns, err := uc.Search(ctx, "рога", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationHorns}, ids(horns.Items))

	ooo, err := uc.Search(ctx, "ооо", 1)
	require.NoError(t, err)
	assert.Len(t, ooo.Items, 2)
}

func TestSearch_EspaciosSonParteDelTexto(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)
	ctx := context.Background()

	conjuncion, err := uc.Search(ctx, " и ", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationHorns}, ids(conjuncion.Items))

	final, err := uc.Search(ctx, "копыта ", 1)
	require.NoError(t, err)
	assert.Empty(t, final.Items, "ningún nombre tiene un espacio después de Копыта")

	blanco, err := uc.Search(ctx, "  ", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, blanco.Total)
}

func TestSearch_Pagina(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 1)

	p2, err := uc.Search(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationAutoParts}, ids(p2.Items))
	assert.Equal(t, 2, p2.Total)
	assert.Equal(t, 2, p2.Page.Page)
	assert.Equal(t, 1, p2.Page.PerPage)

	p0, err := uc.Search(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p0.Page.Page, "página < 1 se normaliza a 1")
}

func TestByBuilding(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)

	out, err := uc.ByBuilding(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{seed.OrganizationHorns}, ids(out.Items))

	_, err = uc.ByBuilding(context.Background(), 404, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID(t *testing.T) {
	uc := newUseCase(seed.Default(testNow), 15)

	org, err := uc.GetByID(context.Background(), seed.OrganizationHorns)
	require.NoError(t, err)
	assert.Equal(t, "ООО Рога и Копыта", org.Name)
	assert.Len(t, org.Phones, 2)
	require.Len(t, org.Activities, 2)
	require.NotNil(t, org.Activities[0].ParentID)
	assert.Equal(t, seed.ActivityFood, *org.Activities[0].ParentID)
	require.NotNil(t, org.Building)
	assert.Equal(t, "55.7558", org.Building.Latitude.String())

	_, err = uc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores del almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

type failingActivities struct{ err error }

func (f failingActivities) ChildIDs(context.Context, []int64) ([]int64, error) { return nil, f.err }
func (f failingActivities) IDsByName(context.Context, string) ([]int64, error) {
	return []int64{1}, nil
}

type failingOrgs struct{ err error }

func (f failingOrgs) GetByID(context.Context, int64) (*entity.Organization, error) { return nil, f.err }
func (f failingOrgs) List(context.Context, repository.OrganizationFilter, int, int) ([]*entity.Organization, int, error) {
	return nil, 0, f.err
}

func TestErroresDelAlmacenamientoSePropagan(t *testing.T) {
	boom := errors.New("conexión rechazada")
	store := memory.New(seed.Default(testNow))

	uc := usecase.NewOrganizationUseCase(failingOrgs{err: boom}, memory.NewBuildingRepository(store), failingActivities{err: boom}, 15)

	_, err := uc.ByActivities(context.Background(), "x", 1)
	assert.ErrorIs(t, err, boom)

	_, err = uc.Search(context.Background(), "", 1)
	assert.ErrorIs(t, err, boom)

	_, err = uc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
