package entity

import "time"

// Organization representa una organización ubicada en un único edificio,
// con uno o más teléfonos y una o más actividades.
type Organization struct {
	ID         int64
	Name       string
	BuildingID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relaciones cargadas por el repositorio
	Building   *Building
	Phones     []OrganizationPhone
	Activities []Activity
}

// OrganizationPhone teléfono de contacto de una organización.
type OrganizationPhone struct {
	ID             int64
	OrganizationID int64
	Phone          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
