package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// NewApp crea la aplicación Fiber con el manejador de errores JSON y la cadena
// de middlewares: request id, métricas, log de acceso y recover.
func NewApp(appName string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(MetricsMiddleware())
	app.Use(AccessLog(log))
	app.Use(recover.New())
	return app
}
