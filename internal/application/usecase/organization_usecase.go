package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/activitytree"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/pkg/metrics"
	"github.com/jhoicas/Directorio-api/pkg/pagination"
)

// OrganizationUseCase consultas de organizaciones: por edificio, actividad, radio y nombre.
type OrganizationUseCase struct {
	orgs       repository.OrganizationRepository
	buildings  repository.BuildingRepository
	activities repository.ActivityRepository
	closure    *activitytree.Resolver
	perPage    int
}

// NewOrganizationUseCase construye el caso de uso; perPage viene de PAGINATION_COUNT.
func NewOrganizationUseCase(
	orgs repository.OrganizationRepository,
	buildings repository.BuildingRepository,
	activities repository.ActivityRepository,
	perPage int,
) *OrganizationUseCase {
	return &OrganizationUseCase{
		orgs:       orgs,
		buildings:  buildings,
		activities: activities,
		closure:    activitytree.NewResolver(activities),
		perPage:    perPage,
	}
}

// GetByID obtiene una organización con teléfonos, actividades y edificio.
func (uc *OrganizationUseCase) GetByID(ctx context.Context, id int64) (*dto.OrganizationResponse, error) {
	org, err := uc.orgs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	out := toOrganizationResponse(org)
	return &out, nil
}

// ByBuilding organizaciones ubicadas en el edificio. Edificio inexistente -> ErrNotFound.
func (uc *OrganizationUseCase) ByBuilding(ctx context.Context, buildingID int64, page int) (*dto.ListResult[dto.OrganizationResponse], error) {
	building, err := uc.buildings.GetByID(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, domain.ErrNotFound
	}
	return uc.list(ctx, repository.OrganizationFilter{BuildingIDs: []int64{buildingID}}, page)
}

// ByActivity organizaciones vinculadas directamente a la actividad, sin incluir
// las de sus subactividades (a diferencia de ByActivities).
func (uc *OrganizationUseCase) ByActivity(ctx context.Context, activityID int64, page int) (*dto.ListResult[dto.OrganizationResponse], error) {
	return uc.list(ctx, repository.OrganizationFilter{ActivityIDs: []int64{activityID}}, page)
}

// ByRadius organizaciones cuyos edificios están a radius km o menos del punto.
func (uc *OrganizationUseCase) ByRadius(ctx context.Context, q dto.RadiusQuery, page int) (*dto.ListResult[dto.OrganizationResponse], error) {
	if q.Latitude < -90 || q.Latitude > 90 || q.Longitude < -180 || q.Longitude > 180 {
		return nil, fmt.Errorf("coordenadas fuera de rango (%v, %v): %w", q.Latitude, q.Longitude, domain.ErrInvalidInput)
	}
	if q.Radius < 0 {
		return uc.empty(page), nil
	}

	center := geo.Point{Lat: q.Latitude, Lon: q.Longitude}
	candidates, err := uc.buildings.ListWithinBounds(ctx, geo.BoundsFor(center, q.Radius))
	if err != nil {
		return nil, err
	}
	metrics.RadiusCandidates.Observe(float64(len(candidates)))

	buildingIDs := geo.FilterBuildings(center, q.Radius, candidates)
	if len(buildingIDs) == 0 {
		return uc.empty(page), nil
	}
	return uc.list(ctx, repository.OrganizationFilter{BuildingIDs: buildingIDs}, page)
}

// Search organizaciones cuyo nombre contiene searchText sin distinguir mayúsculas.
// Texto vacío devuelve todas.
func (uc *OrganizationUseCase) Search(ctx context.Context, searchText string, page int) (*dto.ListResult[dto.OrganizationResponse], error) {
	return uc.list(ctx, repository.OrganizationFilter{NameContains: domain.FoldSearch(searchText)}, page)
}

// ByActivities busca actividades por nombre, expande cada coincidencia a su
// clausura descendente y devuelve las organizaciones vinculadas a cualquiera de ellas.
func (uc *OrganizationUseCase) ByActivities(ctx context.Context, searchText string, page int) (*dto.ListResult[dto.OrganizationResponse], error) {
	roots, err := uc.activities.IDsByName(ctx, domain.FoldSearch(searchText))
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return uc.empty(page), nil
	}

	ids, err := uc.closure.Closure(ctx, roots...)
	if err != nil {
		return nil, err
	}
	metrics.ActivityClosureSize.Observe(float64(len(ids)))

	return uc.list(ctx, repository.OrganizationFilter{ActivityIDs: ids}, page)
}

func (uc *OrganizationUseCase) list(ctx context.Context, f repository.OrganizationFilter, page int) (*dto.ListResult[dto.OrganizationResponse], error) {
	req := pagination.NewRequest(page, uc.perPage)
	list, total, err := uc.orgs.List(ctx, f, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return &dto.ListResult[dto.OrganizationResponse]{
		Items: toOrganizationResponses(list),
		Total: total,
		Page:  req,
	}, nil
}

func (uc *OrganizationUseCase) empty(page int) *dto.ListResult[dto.OrganizationResponse] {
	return &dto.ListResult[dto.OrganizationResponse]{
		Items: toOrganizationResponses([]*entity.Organization{}),
		Page:  pagination.NewRequest(page, uc.perPage),
	}
}
