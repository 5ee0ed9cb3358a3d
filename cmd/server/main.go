package main

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"salesdash/config"
	"salesdash/internal/api"
	"salesdash/internal/engine"
	"salesdash/internal/logger"
	"salesdash/internal/render"
)

func main() {
	cfg := config.Load()
	log := logger.New().With().Str("run_id", uuid.New().String()).Logger()

	// 1. Echo comes up instantly; the handler answers 503 until the
	// pipeline publishes data.
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	h := api.NewHandler()
	h.RegisterRoutes(e)

	// 2. Run the pipeline in the background and flip the handler live.
	go func() {
		t0 := time.Now()
		log.Info().Msg("background: building dashboard")

		genCfg := engine.DefaultGenConfig()
		genCfg.Seed = cfg.Seed
		ds := engine.Generate(genCfg)
		bundle := engine.Aggregate(ds)

		r, err := render.NewRenderer()
		if err != nil {
			log.Fatal().Err(err).Msg("background: renderer init failed")
		}
		var buf bytes.Buffer
		if err := r.WritePNG(bundle, &buf); err != nil {
			log.Fatal().Err(err).Msg("background: render failed")
		}

		h.Publish(bundle, buf.Bytes())
		log.Info().Int("rows", ds.Len()).Dur("took", time.Since(t0)).
			Msg("background: dashboard published")
	}()

	log.Info().Str("addr", cfg.ServerAddr).Msg("server ready (data loading in background)")
	if err := e.Start(cfg.ServerAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
