package dto

import "github.com/jhoicas/Directorio-api/pkg/pagination"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo 422: mensaje resumen y errores por campo.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// ResourceResponse envoltorio {data: ...} de un recurso individual.
type ResourceResponse[T any] struct {
	Data T `json:"data"`
}

// ListResult página ya resuelta por un caso de uso; el handler le agrega
// path y query para construir el sobre paginado.
type ListResult[T any] struct {
	Items []T
	Total int
	Page  pagination.Request
}
