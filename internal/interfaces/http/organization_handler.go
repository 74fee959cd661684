package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// OrganizationHandler maneja las consultas HTTP de organizaciones.
type OrganizationHandler struct {
	uc  *usecase.OrganizationUseCase
	log *logger.Logger
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, log *logger.Logger) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, log: log}
}

// GetByID godoc
// @Summary      Obtener organización por ID
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        organization  path  int  true  "ID de la organización"
// @Success      200  {object}  dto.OrganizationResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/organizations/{organization} [get]
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c, "organization")
	if !ok {
		return notFound(c, "organización no encontrada")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err, "organización no encontrada")
	}
	return c.JSON(dto.ResourceResponse[dto.OrganizationResponse]{Data: *out})
}

// ByBuilding godoc
// @Summary      Organizaciones de un edificio
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        buildingId  path   int  true   "ID del edificio"
// @Param        page        query  int  false  "Página"  default(1)
// @Success      200  {object}  dto.OrganizationPage
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/organizations/buildings/{buildingId} [get]
func (h *OrganizationHandler) ByBuilding(c *fiber.Ctx) error {
	id, ok := pathID(c, "buildingId")
	if !ok {
		return notFound(c, "edificio no encontrado")
	}
	out, err := h.uc.ByBuilding(c.UserContext(), id, pageParam(c))
	if err != nil {
		return writeError(c, h.log, err, "edificio no encontrado")
	}
	return sendPage(c, out)
}

// ByActivity godoc
// @Summary      Organizaciones vinculadas directamente a una actividad
// @Description  Solo la actividad indicada; no incluye sus subactividades.
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        activityId  path   int  true   "ID de la actividad"
// @Param        page        query  int  false  "Página"  default(1)
// @Success      200  {object}  dto.OrganizationPage
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /v1/organizations/activities/{activityId} [get]
func (h *OrganizationHandler) ByActivity(c *fiber.Ctx) error {
	id, ok := pathID(c, "activityId")
	if !ok {
		return notFound(c, "actividad no encontrada")
	}
	out, err := h.uc.ByActivity(c.UserContext(), id, pageParam(c))
	if err != nil {
		return writeError(c, h.log, err, "actividad no encontrada")
	}
	return sendPage(c, out)
}

// ByRadius godoc
// @Summary      Organizaciones dentro de un radio
// @Description  Distancia de círculo máximo en km desde (latitude, longitude); el borde se incluye.
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        radius     query  number  true   "Radio en km"
// @Param        latitude   query  number  true   "Latitud (-90..90)"
// @Param        longitude  query  number  true   "Longitud (-180..180)"
// @Param        page       query  int     false  "Página"  default(1)
// @Success      200  {object}  dto.OrganizationPage
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /v1/organizations/radius [get]
func (h *OrganizationHandler) ByRadius(c *fiber.Ctx) error {
	q, errs := parseRadiusQuery(c)
	if errs != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errs.response())
	}
	out, err := h.uc.ByRadius(c.UserContext(), q, pageParam(c))
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return sendPage(c, out)
}

// Search godoc
// @Summary      Buscar organizaciones por nombre
// @Description  Subcadena sin distinguir mayúsculas; sin search_text devuelve todas.
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        search_text  query  string  false  "Texto a buscar"
// @Param        page         query  int     false  "Página"  default(1)
// @Success      200  {object}  dto.OrganizationPage
// @Router       /v1/organizations [get]
func (h *OrganizationHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("search_text"), pageParam(c))
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return sendPage(c, out)
}

// ByActivities godoc
// @Summary      Buscar organizaciones por nombre de actividad
// @Description  Incluye las organizaciones de todas las subactividades de las actividades que coinciden.
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        search_text  query  string  false  "Nombre de la actividad"
// @Param        page         query  int     false  "Página"  default(1)
// @Success      200  {object}  dto.OrganizationPage
// @Router       /v1/organizations/search/activities [get]
func (h *OrganizationHandler) ByActivities(c *fiber.Ctx) error {
	out, err := h.uc.ByActivities(c.UserContext(), c.Query("search_text"), pageParam(c))
	if err != nil {
		return writeError(c, h.log, err, "")
	}
	return sendPage(c, out)
}
