// Package memory implementa los puertos de lectura sobre un Dataset en memoria.
// Se usa con STORAGE_DRIVER=memory (demostración) y en los tests de HTTP.
package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/activitytree"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
)

var (
	_ repository.BuildingRepository     = (*BuildingRepo)(nil)
	_ repository.ActivityRepository     = (*ActivityRepo)(nil)
	_ repository.OrganizationRepository = (*OrganizationRepo)(nil)
)

// Store datos inmutables tras New; seguro para lecturas concurrentes.
type Store struct {
	buildings     map[int64]entity.Building
	buildingIDs   []int64
	activities    map[int64]entity.Activity
	activityIDs   []int64
	children      activitytree.ChildIndex
	orgs          map[int64]entity.Organization
	orgIDs        []int64
	orgActivities map[int64][]int64
}

// New indexa el dataset. Ids repetidos: gana la última fila.
func New(ds seed.Dataset) *Store {
	s := &Store{
		buildings:     make(map[int64]entity.Building, len(ds.Buildings)),
		activities:    make(map[int64]entity.Activity, len(ds.Activities)),
		orgs:          make(map[int64]entity.Organization, len(ds.Organizations)),
		orgActivities: make(map[int64][]int64),
	}
	for _, b := range ds.Buildings {
		s.buildings[b.ID] = b
	}
	for _, a := range ds.Activities {
		s.activities[a.ID] = a
	}
	for _, o := range ds.Organizations {
		s.orgs[o.ID] = o
	}
	for _, l := range ds.Links {
		s.orgActivities[l.OrganizationID] = appendUnique(s.orgActivities[l.OrganizationID], l.ActivityID)
	}
	for id := range s.orgActivities {
		sortIDs(s.orgActivities[id])
	}

	s.buildingIDs = sortedKeys(s.buildings)
	s.activityIDs = sortedKeys(s.activities)
	s.orgIDs = sortedKeys(s.orgs)

	ordered := make([]entity.Activity, 0, len(s.activityIDs))
	for _, id := range s.activityIDs {
		ordered = append(ordered, s.activities[id])
	}
	s.children = activitytree.NewChildIndex(ordered)
	return s
}

// Ping siempre responde; no hay conexión que verificar.
func (s *Store) Ping(context.Context) error { return nil }

// BuildingRepo puerto BuildingRepository sobre el Store.
type BuildingRepo struct{ s *Store }

// NewBuildingRepository construye el adaptador de edificios.
func NewBuildingRepository(s *Store) *BuildingRepo { return &BuildingRepo{s: s} }

// List página de edificios ordenados por id.
func (r *BuildingRepo) List(_ context.Context, limit, offset int) ([]*entity.Building, int, error) {
	ids := window(r.s.buildingIDs, limit, offset)
	out := make([]*entity.Building, 0, len(ids))
	for _, id := range ids {
		b := r.s.buildings[id]
		out = append(out, &b)
	}
	return out, len(r.s.buildingIDs), nil
}

// GetByID edificio por id; (nil, nil) si no existe.
func (r *BuildingRepo) GetByID(_ context.Context, id int64) (*entity.Building, error) {
	b, ok := r.s.buildings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// ListWithinBounds edificios dentro del rectángulo del prefiltro.
func (r *BuildingRepo) ListWithinBounds(_ context.Context, bounds geo.Bounds) ([]*entity.Building, error) {
	var out []*entity.Building
	for _, id := range r.s.buildingIDs {
		b := r.s.buildings[id]
		if bounds.Contains(geo.PointOf(&b)) {
			out = append(out, &b)
		}
	}
	return out, nil
}

// ActivityRepo puerto ActivityRepository sobre el Store.
type ActivityRepo struct{ s *Store }

// NewActivityRepository construye el adaptador de actividades.
func NewActivityRepository(s *Store) *ActivityRepo { return &ActivityRepo{s: s} }

// ChildIDs hijos directos de las actividades indicadas.
func (r *ActivityRepo) ChildIDs(_ context.Context, parentIDs []int64) ([]int64, error) {
	var out []int64
	for _, pid := range parentIDs {
		for _, c := range r.s.children[pid] {
			out = append(out, c.ID)
		}
	}
	return out, nil
}

// IDsByName actividades cuyo nombre contiene folded.
func (r *ActivityRepo) IDsByName(_ context.Context, folded string) ([]int64, error) {
	var out []int64
	for _, id := range r.s.activityIDs {
		if folded == "" || strings.Contains(domain.FoldSearch(r.s.activities[id].Name), folded) {
			out = append(out, id)
		}
	}
	return out, nil
}

// OrganizationRepo puerto OrganizationRepository sobre el Store.
type OrganizationRepo struct{ s *Store }

// NewOrganizationRepository construye el adaptador de organizaciones.
func NewOrganizationRepository(s *Store) *OrganizationRepo { return &OrganizationRepo{s: s} }

// GetByID organización con relaciones; (nil, nil) si no existe.
func (r *OrganizationRepo) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	o, ok := r.s.orgs[id]
	if !ok {
		return nil, nil
	}
	return r.s.hydrate(o), nil
}

// List organizaciones que cumplen el filtro, ordenadas por id.
func (r *OrganizationRepo) List(_ context.Context, f repository.OrganizationFilter, limit, offset int) ([]*entity.Organization, int, error) {
	buildings := toSet(f.BuildingIDs)
	activities := toSet(f.ActivityIDs)

	var matched []int64
	for _, id := range r.s.orgIDs {
		o := r.s.orgs[id]
		if len(buildings) > 0 && !buildings[o.BuildingID] {
			continue
		}
		if len(activities) > 0 && !r.s.linkedToAny(id, activities) {
			continue
		}
		if f.NameContains != "" && !strings.Contains(domain.FoldSearch(o.Name), f.NameContains) {
			continue
		}
		matched = append(matched, id)
	}

	page := window(matched, limit, offset)
	out := make([]*entity.Organization, 0, len(page))
	for _, id := range page {
		out = append(out, r.s.hydrate(r.s.orgs[id]))
	}
	return out, len(matched), nil
}

func (s *Store) linkedToAny(orgID int64, activities map[int64]bool) bool {
	for _, aid := range s.orgActivities[orgID] {
		if activities[aid] {
			return true
		}
	}
	return false
}

// hydrate copia la organización con edificio, teléfonos y actividades (con subárbol).
func (s *Store) hydrate(o entity.Organization) *entity.Organization {
	if b, ok := s.buildings[o.BuildingID]; ok {
		o.Building = &b
	}
	phones := make([]entity.OrganizationPhone, len(o.Phones))
	copy(phones, o.Phones)
	sort.Slice(phones, func(i, j int) bool { return phones[i].ID < phones[j].ID })
	o.Phones = phones

	o.Activities = make([]entity.Activity, 0, len(s.orgActivities[o.ID]))
	for _, aid := range s.orgActivities[o.ID] {
		if a, ok := s.activities[aid]; ok {
			o.Activities = append(o.Activities, activitytree.Nest(a, s.children))
		}
	}
	return &o
}

func window(ids []int64, limit, offset int) []int64 {
	if offset < 0 || offset >= len(ids) || limit <= 0 {
		return nil
	}
	end := offset + limit
	if end > len(ids) || end < offset {
		end = len(ids)
	}
	return ids[offset:end]
}

func toSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func appendUnique(ids []int64, id int64) []int64 {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

func sortedKeys[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}
