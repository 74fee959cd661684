package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/Directorio-api/docs"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// storage repositorios y pinger del driver elegido.
type storage struct {
	buildings     repository.BuildingRepository
	activities    repository.ActivityRepository
	organizations repository.OrganizationRepository
	pinger        httpRouter.Pinger
	close         func()
}

// @title                       Directorio API
// @version                     1.0
// @description                 Directorio de organizaciones, edificios y actividades (solo lectura).
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage.Driver).Msg("inicializar almacenamiento")
	}
	defer store.close()

	buildingUC := usecase.NewBuildingUseCase(store.buildings, cfg.Pagination.Count)
	organizationUC := usecase.NewOrganizationUseCase(store.organizations, store.buildings, store.activities, cfg.Pagination.Count)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Directorio API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		BuildingUC:     buildingUC,
		OrganizationUC: organizationUC,
		Store:          store.pinger,
		ServiceName:    cfg.App.Name,
		StorageDriver:  cfg.Storage.Driver,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		st := memory.New(seed.Default(time.Now().UTC()))
		log.Info().Msg("almacenamiento en memoria con datos de demostración")
		return &storage{
			buildings:     memory.NewBuildingRepository(st),
			activities:    memory.NewActivityRepository(st),
			organizations: memory.NewOrganizationRepository(st),
			pinger:        st,
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	warnCType(ctx, pool, log)
	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Strs("versions", applied).Msg("migraciones aplicadas")
	}
	return &storage{
		buildings:     postgres.NewBuildingRepository(pool),
		activities:    postgres.NewActivityRepository(pool),
		organizations: postgres.NewOrganizationRepository(pool),
		pinger:        pool,
		close:         pool.Close,
	}, nil
}

// warnCType avisa si el LC_CTYPE de la base impide buscar sin distinguir
// mayúsculas en nombres cirílicos.
func warnCType(ctx context.Context, pool postgres.Querier, log *logger.Logger) {
	ctype, err := postgres.DatabaseCType(ctx, pool)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo leer lc_ctype")
		return
	}
	if !postgres.FoldsUnicode(ctype) {
		log.Warn().Str("lc_ctype", ctype).Msg("lower() solo convierte ASCII con este lc_ctype; crear la base con un locale UTF-8")
	}
}
