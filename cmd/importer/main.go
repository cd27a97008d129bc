package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ksdtech/dd-importer/internal/archive"
	"github.com/ksdtech/dd-importer/internal/config"
	"github.com/ksdtech/dd-importer/internal/importer"
	"github.com/ksdtech/dd-importer/internal/logger"
	"github.com/ksdtech/dd-importer/internal/store"
	"github.com/ksdtech/dd-importer/internal/transport"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log = log.With().Str("run_id", uuid.NewString()).Logger()
	log.Info().
		Str("school_year", cfg.SchoolYear).
		Str("source_dir", cfg.SourceDir).
		Bool("uploads", cfg.DoUploads).
		Msg("starting import job")

	today := time.Now()

	// ─── Run Ingestion Passes ──────────────────────────────────────────
	im := importer.New(cfg, store.New(), log, today)
	if err := im.Run(); err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	// ─── Emit Output Files ─────────────────────────────────────────────
	filesWritten, err := im.Emit()
	if err != nil {
		log.Fatal().Err(err).Msg("writing output files failed")
	}
	if filesWritten == 0 {
		log.Warn().Msg("no output files written; skipping archive and upload")
		return
	}
	log.Info().Int("files", filesWritten).Msg("output files written")

	if !cfg.DoUploads {
		return
	}

	// ─── Package, Archive and Upload ───────────────────────────────────
	// Transport failures are reported but never invalidate the files
	// already written.
	zipPath, err := archive.NewPackager(log).Package(
		im.OutputDir(), cfg.OutputBaseDir, cfg.ZipFileName, today)
	if err != nil {
		log.Error().Err(err).Msg("packaging failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	if err := transport.New(cfg, log).Upload(ctx, zipPath); err != nil {
		log.Error().Err(err).Msg("upload failed")
	}
}
