// Package pagination arma el sobre paginado {data, links, meta} que devuelven
// todos los listados de la API.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// PageParam nombre del parámetro de query con el número de página.
const PageParam = "page"

// Request página solicitada y tamaño de página.
type Request struct {
	Page    int
	PerPage int
}

// NewRequest normaliza la página (mínimo 1) y el tamaño (mínimo 1). La página
// se acota a math.MaxInt/perPage para que Offset no desborde int.
func NewRequest(page, perPage int) Request {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return Request{Page: page, PerPage: perPage}
}

// Offset filas a saltar en la consulta.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// Limit filas a leer en la consulta.
func (r Request) Limit() int {
	return r.PerPage
}

// Links enlaces de navegación; Prev y Next son null en los extremos.
type Links struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Meta metadatos de la página. From y To son null cuando la página está vacía.
type Meta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int    `json:"total"`
}

// Page sobre paginado genérico.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// LastPage número de la última página; nunca menor que 1.
func LastPage(total, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// New construye el sobre. path es la URL sin query; query conserva el resto de
// parámetros de la petición (search_text, radius...) en los enlaces.
func New[T any](items []T, total int, req Request, path string, query url.Values) Page[T] {
	if items == nil {
		items = []T{}
	}
	last := LastPage(total, req.PerPage)

	meta := Meta{
		CurrentPage: req.Page,
		LastPage:    last,
		Path:        path,
		PerPage:     req.PerPage,
		Total:       total,
	}
	if len(items) > 0 {
		from := req.Offset() + 1
		to := req.Offset() + len(items)
		meta.From = &from
		meta.To = &to
	}

	base := baseQuery(query)
	links := Links{
		First: pageURL(path, base, 1),
		Last:  pageURL(path, base, last),
	}
	if req.Page > 1 {
		prev := pageURL(path, base, req.Page-1)
		links.Prev = &prev
	}
	if req.Page < last {
		next := pageURL(path, base, req.Page+1)
		links.Next = &next
	}

	return Page[T]{Data: items, Links: links, Meta: meta}
}

func baseQuery(query url.Values) string {
	if len(query) == 0 {
		return ""
	}
	q := make(url.Values, len(query))
	for k, v := range query {
		if k == PageParam {
			continue
		}
		q[k] = v
	}
	return q.Encode()
}

func pageURL(path, base string, page int) string {
	if base == "" {
		return path + "?" + PageParam + "=" + strconv.Itoa(page)
	}
	return path + "?" + base + "&" + PageParam + "=" + strconv.Itoa(page)
}
