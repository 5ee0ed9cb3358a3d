package main

import (
	"os"
	"time"

	"github.com/google/uuid"

	"salesdash/config"
	"salesdash/internal/engine"
	"salesdash/internal/logger"
	"salesdash/internal/render"
)

// One-shot batch run: generate -> preview -> aggregate -> render -> save.
func main() {
	cfg := config.Load()
	log := logger.New().With().Str("run_id", uuid.New().String()).Logger()

	t0 := time.Now()

	genCfg := engine.DefaultGenConfig()
	genCfg.Seed = cfg.Seed
	ds := engine.Generate(genCfg)
	log.Info().Int("rows", ds.Len()).Int64("seed", cfg.Seed).
		Dur("took", time.Since(t0)).Msg("dataset generated")

	ds.Preview(os.Stdout, cfg.PreviewRows)

	bundle := engine.Aggregate(ds)
	log.Info().Float64("total", bundle.Total).Msg("aggregation complete")

	r, err := render.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("renderer init failed")
	}
	if err := r.Save(bundle, cfg.OutputPath); err != nil {
		log.Fatal().Err(err).Msg("dashboard render failed")
	}

	log.Info().Str("path", cfg.OutputPath).Dur("total", time.Since(t0)).Msg("dashboard saved")
}
