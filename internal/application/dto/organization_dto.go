package dto

import "time"

// OrganizationResponse salida de una organización con sus relaciones.
type OrganizationResponse struct {
	ID         int64                       `json:"id"`
	Name       string                      `json:"name"`
	Phones     []OrganizationPhoneResponse `json:"phones"`
	Activities []ActivityResponse          `json:"activities"`
	Building   *BuildingResponse           `json:"building"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// OrganizationPhoneResponse salida de un teléfono.
type OrganizationPhoneResponse struct {
	ID        int64     `json:"id"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivityResponse salida de una actividad; children se omite si está vacío.
type ActivityResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	ParentID  *int64             `json:"parent_id"`
	Children  []ActivityResponse `json:"children,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// RadiusQuery parámetros ya validados de la búsqueda por radio (km, grados).
type RadiusQuery struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

// OrganizationPage sobre paginado de organizaciones (documentación OpenAPI).
type OrganizationPage struct {
	Data  []OrganizationResponse `json:"data"`
	Links PageLinks              `json:"links"`
	Meta  PageMeta               `json:"meta"`
}

// OrganizationResource organización individual envuelta en data (documentación OpenAPI).
type OrganizationResource struct {
	Data OrganizationResponse `json:"data"`
}
