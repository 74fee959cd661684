package http

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
)

// fieldErrors errores de validación por campo, en el orden en que se detectaron.
type fieldErrors struct {
	order  []string
	errors map[string][]string
}

func (f *fieldErrors) add(field, msg string) {
	if f.errors == nil {
		f.errors = make(map[string][]string)
	}
	if _, ok := f.errors[field]; !ok {
		f.order = append(f.order, field)
	}
	f.errors[field] = append(f.errors[field], msg)
}

func (f *fieldErrors) empty() bool { return len(f.order) == 0 }

// response cuerpo 422: el primer mensaje y cuántos errores más hay.
func (f *fieldErrors) response() dto.ValidationErrorResponse {
	total := 0
	for _, msgs := range f.errors {
		total += len(msgs)
	}
	msg := f.errors[f.order[0]][0]
	switch rest := total - 1; {
	case rest == 1:
		msg += " (y 1 error más)"
	case rest > 1:
		msg += fmt.Sprintf(" (y %d errores más)", rest)
	}
	return dto.ValidationErrorResponse{Message: msg, Errors: f.errors}
}

// numberField lee un parámetro numérico obligatorio con rango opcional.
func numberField(c *fiber.Ctx, errs *fieldErrors, name string, bounded bool, lo, hi float64) float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		errs.add(name, fmt.Sprintf("El campo %s es obligatorio.", name))
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		errs.add(name, fmt.Sprintf("El campo %s debe ser un número.", name))
		return 0
	}
	if bounded && (v < lo || v > hi) {
		errs.add(name, fmt.Sprintf("El campo %s debe estar entre %g y %g.", name, lo, hi))
	}
	return v
}

// parseRadiusQuery valida radius, latitude y longitude de la búsqueda por radio.
func parseRadiusQuery(c *fiber.Ctx) (dto.RadiusQuery, *fieldErrors) {
	var errs fieldErrors
	q := dto.RadiusQuery{
		Radius:    numberField(c, &errs, "radius", false, 0, 0),
		Latitude:  numberField(c, &errs, "latitude", true, -90, 90),
		Longitude: numberField(c, &errs, "longitude", true, -180, 180),
	}
	if errs.empty() {
		return q, nil
	}
	return q, &errs
}
