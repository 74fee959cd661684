package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuildingResponse salida de un edificio. Las coordenadas se serializan como
// cadenas decimales para no perder la escala de la columna NUMERIC.
type BuildingResponse struct {
	ID        int64           `json:"id"`
	Address   string          `json:"address"`
	Longitude decimal.Decimal `json:"longitude"`
	Latitude  decimal.Decimal `json:"latitude"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BuildingPage sobre paginado de edificios (documentación OpenAPI).
type BuildingPage struct {
	Data  []BuildingResponse `json:"data"`
	Links PageLinks          `json:"links"`
	Meta  PageMeta           `json:"meta"`
}
