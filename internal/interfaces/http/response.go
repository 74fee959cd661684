package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/pkg/pagination"
)

// pageParam número de página de la query; ausente o inválido -> 1.
func pageParam(c *fiber.Ctx) int {
	return c.QueryInt(pagination.PageParam, 1)
}

// pathID parsea un id numérico de la ruta. ok=false se responde como 404.
func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// sendPage responde el sobre paginado; los enlaces conservan la query de la petición.
func sendPage[T any](c *fiber.Ctx, res *dto.ListResult[T]) error {
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	path := c.BaseURL() + c.Path()
	return c.JSON(pagination.New(res.Items, res.Total, res.Page, path, query))
}
