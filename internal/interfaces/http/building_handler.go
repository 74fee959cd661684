package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// BuildingHandler maneja las peticiones HTTP para Building.
type BuildingHandler struct {
	uc  *usecase.BuildingUseCase
	log *logger.Logger
}

// NewBuildingHandler construye el handler.
func NewBuildingHandler(uc *usecase.BuildingUseCase, log *logger.Logger) *BuildingHandler {
	return &BuildingHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar edificios
// @Tags         buildings
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200   {object}  dto.BuildingPage
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /v1/buildings [get]
func (h *BuildingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageParam(c))
	if err != nil {
		return writeError(c, h.log, err, "edificio no encontrado")
	}
	return sendPage(c, out)
}
