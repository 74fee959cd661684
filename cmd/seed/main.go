// seed aplica las migraciones pendientes y carga el conjunto de datos de
// demostración (árbol de actividades, edificios, organizaciones y teléfonos).
//
// Uso: go run ./cmd/seed [-reset]
// Con -reset vacía las tablas antes de insertar; sin él las filas existentes se conservan.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/Directorio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/seed"
	"github.com/jhoicas/Directorio-api/pkg/config"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "vaciar las tablas antes de cargar los datos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	}).Named("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if ctype, err := postgres.DatabaseCType(ctx, pool); err == nil && !postgres.FoldsUnicode(ctype) {
		log.Warn().Str("lc_ctype", ctype).Msg("lower() solo convierte ASCII con este lc_ctype; crear la base con un locale UTF-8")
	}

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Strs("versions", applied).Msg("migraciones aplicadas")

	stats, err := postgres.Seed(ctx, pool, seed.Default(time.Now().UTC()), *reset)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar datos")
	}
	log.Info().
		Bool("reset", *reset).
		Int("buildings", stats.Buildings).
		Int("activities", stats.Activities).
		Int("organizations", stats.Organizations).
		Int("phones", stats.Phones).
		Int("links", stats.Links).
		Msg("datos cargados")
}
