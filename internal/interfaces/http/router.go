package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/pkg/logger"
	"github.com/jhoicas/Directorio-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BuildingUC     *usecase.BuildingUseCase
	OrganizationUC *usecase.OrganizationUseCase
	Store          Pinger
	ServiceName    string
	StorageDriver  string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log.Named("http")

	health := NewHealthHandler(deps.Store, deps.ServiceName, deps.StorageDriver, log)
	app.Get("/health", health.Check)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	v1 := app.Group("/v1")

	buildingHandler := NewBuildingHandler(deps.BuildingUC, log)
	v1.Get("/buildings", buildingHandler.List)

	// Las rutas fijas van antes de /:organization.
	orgs := v1.Group("/organizations")
	orgHandler := NewOrganizationHandler(deps.OrganizationUC, log)
	orgs.Get("/radius", orgHandler.ByRadius)
	orgs.Get("/search/activities", orgHandler.ByActivities)
	orgs.Get("/buildings/:buildingId", orgHandler.ByBuilding)
	orgs.Get("/activities/:activityId", orgHandler.ByActivity)
	orgs.Get("/:organization", orgHandler.GetByID)
	orgs.Get("/", orgHandler.Search)
}
