package geo_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/geo"
)

func building(id int64, lat, lon string) *entity.Building {
	return &entity.Building{
		ID:        id,
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lon),
	}
}

func TestDistanceKm_MismoPuntoEsCero(t *testing.T) {
	p := geo.Point{Lat: 55.7558, Lon: 37.6173}
	d := geo.DistanceKm(p, p)
	assert.False(t, math.IsNaN(d), "acos acotado: nunca NaN")
	assert.InDelta(t, 0, d, 0.2)

	assert.Equal(t, 0.0, geo.DistanceKm(geo.Point{}, geo.Point{}))
}

func TestDistanceKm_CasosLimite(t *testing.T) {
	halfCircumference := math.Pi * geo.EarthRadiusKm

	cases := []struct {
		name     string
		from, to geo.Point
		want     float64
	}{
		{"antipodas en el ecuador", geo.Point{Lat: 0, Lon: 0}, geo.Point{Lat: 0, Lon: 180}, halfCircumference},
		{"polo a polo", geo.Point{Lat: 90, Lon: 0}, geo.Point{Lat: -90, Lon: 0}, halfCircumference},
		{"mismo polo, distinta longitud", geo.Point{Lat: 90, Lon: 0}, geo.Point{Lat: 90, Lon: 123}, 0},
		{"un grado en el ecuador", geo.Point{Lat: 0, Lon: 0}, geo.Point{Lat: 0, Lon: 1}, halfCircumference / 180},
		{"ecuador a polo", geo.Point{Lat: 0, Lon: 45}, geo.Point{Lat: 90, Lon: 0}, halfCircumference / 2},
		{"cruce del antimeridiano", geo.Point{Lat: 0, Lon: 179.5}, geo.Point{Lat: 0, Lon: -179.5}, halfCircumference / 180},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := geo.DistanceKm(tc.from, tc.to)
			require.False(t, math.IsNaN(d))
			assert.InDelta(t, tc.want, d, 1e-3)
		})
	}
}

func TestDistanceKm_SimetricaYCoincideConS2(t *testing.T) {
	pairs := [][2]geo.Point{
		{{Lat: 55.7558, Lon: 37.6173}, {Lat: 59.9343, Lon: 30.3351}},
		{{Lat: -33.8688, Lon: 151.2093}, {Lat: 40.7128, Lon: -74.0060}},
		{{Lat: 10, Lon: -20}, {Lat: 10, Lon: 20}},
		{{Lat: -10, Lon: 20}, {Lat: -10, Lon: -20}},
	}
	for _, p := range pairs {
		d1 := geo.DistanceKm(p[0], p[1])
		d2 := geo.DistanceKm(p[1], p[0])
		assert.InDelta(t, d1, d2, 1e-9)

		ref := s2.LatLngFromDegrees(p[0].Lat, p[0].Lon).Distance(s2.LatLngFromDegrees(p[1].Lat, p[1].Lon))
		assert.InDelta(t, ref.Radians()*geo.EarthRadiusKm, d1, 1e-6)
	}

	// Volteo de signo de longitud con latitud constante conserva la distancia
	a := geo.DistanceKm(geo.Point{Lat: 10, Lon: -20}, geo.Point{Lat: 10, Lon: 20})
	b := geo.DistanceKm(geo.Point{Lat: 10, Lon: 20}, geo.Point{Lat: 10, Lon: -20})
	assert.InDelta(t, a, b, 1e-9)
}

func TestWithin_BordeIncluido(t *testing.T) {
	center := geo.Point{Lat: 55.75, Lon: 37.61}
	p := geo.Point{Lat: 55.80, Lon: 37.70}
	d := geo.DistanceKm(center, p)

	assert.True(t, geo.Within(center, d, p), "distancia igual al radio se incluye")
	assert.False(t, geo.Within(center, d-1e-6, p), "radio + ε queda fuera")
}

func TestFilterBuildings(t *testing.T) {
	buildings := []*entity.Building{
		building(1, "0", "0"),
		building(2, "0.005", "0"),   // ~0.56 km
		building(3, "0.05", "0"),    // ~5.6 km
		building(4, "-0.0089", "0"), // ~0.99 km
	}

	assert.Equal(t, []int64{1, 2, 4}, geo.FilterBuildings(geo.Point{}, 1, buildings))
	assert.Equal(t, []int64{1}, geo.FilterBuildings(geo.Point{}, 0, buildings))
	assert.Empty(t, geo.FilterBuildings(geo.Point{}, -1, buildings))
	assert.Empty(t, geo.FilterBuildings(geo.Point{}, 1, nil))
}

func TestBoundsFor_ContieneLosPuntosDelCirculo(t *testing.T) {
	center := geo.Point{Lat: 55.75, Lon: 37.61}
	b := geo.BoundsFor(center, 10)

	require.False(t, b.AllLongitudes)
	assert.Less(t, b.MinLat, center.Lat)
	assert.Greater(t, b.MaxLat, center.Lat)

	inside := []geo.Point{
		{Lat: 55.75 + 0.089, Lon: 37.61}, // ~9.9 km al norte
		{Lat: 55.75, Lon: 37.61 + 0.158}, // ~9.9 km al este
		center,
	}
	for _, p := range inside {
		require.LessOrEqual(t, geo.DistanceKm(center, p), 10.0)
		assert.True(t, b.Contains(p), "punto a %.2f km debe pasar el prefiltro", geo.DistanceKm(center, p))
	}
	assert.False(t, b.Contains(geo.Point{Lat: 57, Lon: 37.61}))
	assert.False(t, b.Contains(geo.Point{Lat: 55.75, Lon: 40}))
}

func TestBoundsFor_Antimeridiano(t *testing.T) {
	b := geo.BoundsFor(geo.Point{Lat: 0, Lon: 179.99}, 50)

	assert.True(t, b.AllLongitudes, "el círculo cruza ±180: solo se filtra por latitud")
	assert.True(t, b.Contains(geo.Point{Lat: 0, Lon: -179.9}))
}

func TestBoundsFor_Polo(t *testing.T) {
	b := geo.BoundsFor(geo.Point{Lat: 89.99, Lon: 0}, 20)

	assert.True(t, b.AllLongitudes)
	assert.InDelta(t, 90, b.MaxLat, 1e-9)
}

func TestBoundsFor_RadioEnorme(t *testing.T) {
	b := geo.BoundsFor(geo.Point{Lat: 12, Lon: 34}, 1e6)

	assert.True(t, b.AllLongitudes)
	assert.Equal(t, -90.0, b.MinLat)
	assert.Equal(t, 90.0, b.MaxLat)
}
