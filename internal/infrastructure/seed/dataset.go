// Package seed define el conjunto de datos inicial del directorio. Lo cargan el
// comando cmd/seed en PostgreSQL y el almacenamiento en memoria.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Link fila de organization_activity.
type Link struct {
	OrganizationID int64
	ActivityID     int64
}

// Dataset filas de todas las tablas con ids explícitos.
type Dataset struct {
	Buildings     []entity.Building
	Activities    []entity.Activity
	Organizations []entity.Organization // Phones incluidos; Activities se ignora (ver Links)
	Links         []Link
}

// Ids del árbol de actividades por defecto.
const (
	ActivityFood        int64 = 1 // Еда
	ActivityMeat        int64 = 2 // Мясная продукция
	ActivityMilk        int64 = 3 // Молочная продукция
	ActivityCars        int64 = 4 // Автомобили
	ActivityTrucks      int64 = 5 // Грузовые
	ActivityPassenger   int64 = 6 // Легковые
	ActivityParts       int64 = 7 // Запчасти
	ActivityAccessories int64 = 8 // Аксессуары
)

// Ids de las organizaciones por defecto.
const (
	OrganizationHorns     int64 = 1 // ООО Рога и Копыта
	OrganizationAutoParts int64 = 2 // ООО Автозапчасти
)

func parent(id int64) *int64 { return &id }

// Default datos de demostración: dos raíces de actividades, dos organizaciones en
// edificios distintos con dos teléfonos cada una.
func Default(now time.Time) Dataset {
	b := NewBuilder(now)
	b.Activity(ActivityFood, "Еда", nil)
	b.Activity(ActivityMeat, "Мясная продукция", parent(ActivityFood))
	b.Activity(ActivityMilk, "Молочная продукция", parent(ActivityFood))
	b.Activity(ActivityCars, "Автомобили", nil)
	b.Activity(ActivityTrucks, "Грузовые", parent(ActivityCars))
	b.Activity(ActivityPassenger, "Легковые", parent(ActivityCars))
	b.Activity(ActivityParts, "Запчасти", parent(ActivityPassenger))
	b.Activity(ActivityAccessories, "Аксессуары", parent(ActivityPassenger))

	b.Building(1, "г. Москва, ул. Ленина 1, офис 3", "55.7558000", "37.6173000")
	b.Building(2, "г. Москва, ул. Блюхера 32/1", "55.7963000", "37.5380000")

	b.Organization(OrganizationHorns, "ООО Рога и Копыта", 1, "2-222-222", "3-333-333")
	b.Link(OrganizationHorns, ActivityMeat, ActivityMilk)

	b.Organization(OrganizationAutoParts, "ООО Автозапчасти", 2, "8-923-666-13-13", "8-800-555-35-35")
	b.Link(OrganizationAutoParts, ActivityTrucks, ActivityPassenger)

	return b.Dataset()
}

// Builder arma un Dataset asignando timestamps e ids de teléfonos.
type Builder struct {
	now       time.Time
	nextPhone int64
	ds        Dataset
}

// NewBuilder crea un builder vacío; now se usa en created_at/updated_at.
func NewBuilder(now time.Time) *Builder {
	return &Builder{now: now.UTC(), nextPhone: 1}
}

// Building agrega un edificio; lat/lon en texto para conservar la escala NUMERIC.
func (b *Builder) Building(id int64, address, lat, lon string) *Builder {
	b.ds.Buildings = append(b.ds.Buildings, entity.Building{
		ID:        id,
		Address:   address,
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lon),
		CreatedAt: b.now,
		UpdatedAt: b.now,
	})
	return b
}

// Activity agrega una actividad; parentID nil para una raíz.
func (b *Builder) Activity(id int64, name string, parentID *int64) *Builder {
	b.ds.Activities = append(b.ds.Activities, entity.Activity{
		ID:        id,
		Name:      name,
		ParentID:  parentID,
		CreatedAt: b.now,
		UpdatedAt: b.now,
	})
	return b
}

// Organization agrega una organización con sus teléfonos.
func (b *Builder) Organization(id int64, name string, buildingID int64, phones ...string) *Builder {
	org := entity.Organization{
		ID:         id,
		Name:       name,
		BuildingID: buildingID,
		CreatedAt:  b.now,
		UpdatedAt:  b.now,
	}
	for _, p := range phones {
		org.Phones = append(org.Phones, entity.OrganizationPhone{
			ID:             b.nextPhone,
			OrganizationID: id,
			Phone:          p,
			CreatedAt:      b.now,
			UpdatedAt:      b.now,
		})
		b.nextPhone++
	}
	b.ds.Organizations = append(b.ds.Organizations, org)
	return b
}

// Link vincula una organización con actividades; los pares repetidos se ignoran.
func (b *Builder) Link(organizationID int64, activityIDs ...int64) *Builder {
	for _, aid := range activityIDs {
		dup := false
		for _, l := range b.ds.Links {
			if l.OrganizationID == organizationID && l.ActivityID == aid {
				dup = true
				break
			}
		}
		if !dup {
			b.ds.Links = append(b.ds.Links, Link{OrganizationID: organizationID, ActivityID: aid})
		}
	}
	return b
}

// Dataset devuelve lo construido.
func (b *Builder) Dataset() Dataset {
	return b.ds
}
