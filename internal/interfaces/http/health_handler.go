package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// Pinger almacenamiento que puede verificar su conexión (*pgxpool.Pool, memory.Store).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse cuerpo de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Storage string `json:"storage"`
}

// HealthHandler liveness con verificación del almacenamiento.
type HealthHandler struct {
	store   Pinger
	service string
	storage string
	log     *logger.Logger
}

// NewHealthHandler construye el handler; storage es el driver configurado.
func NewHealthHandler(store Pinger, service, storage string, log *logger.Logger) *HealthHandler {
	return &HealthHandler{store: store, service: service, storage: storage, log: log}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  http.HealthResponse
// @Failure      503  {object}  http.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	out := HealthResponse{Status: "ok", Service: h.service, Storage: h.storage}
	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Str("storage", h.storage).Msg("health: almacenamiento no responde")
		out.Status = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(out)
	}
	return c.JSON(out)
}
