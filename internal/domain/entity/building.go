package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Building representa un edificio con su dirección y coordenadas (grados decimales).
type Building struct {
	ID        int64
	Address   string
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
