// Package geo implementa el filtro por radio sobre coordenadas en grados decimales.
package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// EarthRadiusKm radio medio terrestre usado por la fórmula de distancia.
const EarthRadiusKm = 6371.0

// boundsPaddingKm margen del prefiltro rectangular. Cubre el error de redondeo de
// acos cerca de 1 (del orden de 0.1 km), de modo que el rectángulo nunca descarte
// un edificio que la fórmula exacta incluiría.
const boundsPaddingKm = 1.0

// Point coordenada en grados decimales.
type Point struct {
	Lat float64
	Lon float64
}

// PointOf coordenadas de un edificio como float64.
func PointOf(b *entity.Building) Point {
	return Point{Lat: b.Latitude.InexactFloat64(), Lon: b.Longitude.InexactFloat64()}
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// DistanceKm distancia de círculo máximo por la ley esférica de los cosenos:
//
//	6371 * acos(cos(lat1)*cos(lat2)*cos(lon2-lon1) + sin(lat1)*sin(lat2))
//
// El argumento de acos se acota a [-1, 1]; sin eso puntos casi iguales dan NaN.
func DistanceKm(from, to Point) float64 {
	lat1, lon1 := radians(from.Lat), radians(from.Lon)
	lat2, lon2 := radians(to.Lat), radians(to.Lon)

	x := math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1) + math.Sin(lat1)*math.Sin(lat2)
	x = math.Max(-1, math.Min(1, x))
	return EarthRadiusKm * math.Acos(x)
}

// Within indica si p está a una distancia menor o igual a radiusKm del centro.
func Within(center Point, radiusKm float64, p Point) bool {
	return DistanceKm(center, p) <= radiusKm
}

// FilterBuildings ids de los edificios dentro del radio, en el orden recibido.
func FilterBuildings(center Point, radiusKm float64, buildings []*entity.Building) []int64 {
	ids := make([]int64, 0, len(buildings))
	for _, b := range buildings {
		if Within(center, radiusKm, PointOf(b)) {
			ids = append(ids, b.ID)
		}
	}
	return ids
}

// Bounds rectángulo lat/lon que contiene el círculo de búsqueda. Cuando el círculo
// cruza el antimeridiano o contiene un polo, AllLongitudes indica que solo la banda
// de latitud es utilizable.
type Bounds struct {
	MinLat        float64
	MaxLat        float64
	MinLon        float64
	MaxLon        float64
	AllLongitudes bool
}

// BoundsFor calcula el prefiltro con un s2.Cap alrededor del centro.
func BoundsFor(center Point, radiusKm float64) Bounds {
	angle := s1.Angle((math.Max(radiusKm, 0)+boundsPaddingKm)/EarthRadiusKm) * s1.Radian
	if angle >= math.Pi*s1.Radian {
		return Bounds{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180, AllLongitudes: true}
	}

	c := s2.CapFromCenterAngle(s2.PointFromLatLng(s2.LatLngFromDegrees(center.Lat, center.Lon)), angle)
	rect := c.RectBound()

	b := Bounds{
		MinLat: rect.Lo().Lat.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MinLon: rect.Lo().Lng.Degrees(),
		MaxLon: rect.Hi().Lng.Degrees(),
	}
	if rect.Lng.IsFull() || rect.Lng.IsInverted() {
		b.MinLon, b.MaxLon = -180, 180
		b.AllLongitudes = true
	}
	return b
}

// Contains indica si p cae dentro del rectángulo.
func (b Bounds) Contains(p Point) bool {
	if p.Lat < b.MinLat || p.Lat > b.MaxLat {
		return false
	}
	if b.AllLongitudes {
		return true
	}
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
