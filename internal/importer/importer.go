// Package importer runs the ingestion passes that turn PowerSchool exports
// into the normalized entity stores, and emits the DataDirector files.
package importer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ksdtech/dd-importer/internal/config"
	"github.com/ksdtech/dd-importer/internal/schoolyear"
	"github.com/ksdtech/dd-importer/internal/store"
)

// Importer owns one import run: configuration, the entity stores and the
// pass state. Strictly single-threaded.
type Importer struct {
	cfg *config.Config
	pl  *store.Pipeline
	log zerolog.Logger

	today time.Time

	// singleYear is the resolved target year, or empty for multi-year mode.
	singleYear string
}

// New builds an Importer for a run dated today. The configured school year
// is resolved here: "auto" applies the August-15 rollover, and a label
// outside the valid-years table falls back to multi-year mode.
func New(cfg *config.Config, pl *store.Pipeline, log zerolog.Logger, today time.Time) *Importer {
	im := &Importer{
		cfg:   cfg,
		pl:    pl,
		log:   log.With().Str("component", "importer").Logger(),
		today: today,
	}

	year := cfg.SchoolYear
	if year == "auto" {
		year = schoolyear.AutoYear(today)
		im.log.Info().Str("year", year).Msg("auto-detected school year")
	}
	if year != "" && !schoolyear.IsValid(year) {
		im.log.Warn().Str("year", year).Msg("configured year not recognized; processing all years")
		year = ""
	}
	im.singleYear = year
	return im
}

// SingleYear returns the resolved target year, empty in multi-year mode.
func (im *Importer) SingleYear() string {
	return im.singleYear
}

// Run executes every ingestion pass in dependency order: courses, teachers,
// students, optional detail files, rosters. Roster construction resolves
// rows against the already-built student and teacher stores, so the order
// is a correctness requirement.
func (im *Importer) Run() error {
	if im.singleYear == "" {
		return im.runAllYears()
	}
	return im.runSingleYear(im.singleYear)
}

func (im *Importer) runSingleYear(year string) error {
	im.log.Info().Msg("analyzing course data")
	if err := im.ingestCourses(); err != nil {
		return err
	}
	im.log.Info().Str("year", year).Msg("analyzing teacher data")
	if err := im.ingestTeachers(year); err != nil {
		return err
	}
	im.log.Info().Str("year", year).Msg("analyzing student demographic data")
	if err := im.ingestStudents(year); err != nil {
		return err
	}
	if im.cfg.UseRaceFile {
		im.log.Info().Msg("analyzing student race data")
		if err := im.ingestRaces(); err != nil {
			return err
		}
	}
	if im.cfg.UseProgramFile {
		im.log.Info().Msg("analyzing student program data")
		if err := im.ingestPrograms(); err != nil {
			return err
		}
	}
	im.log.Info().Msg("analyzing roster data")
	return im.ingestRosters()
}

func (im *Importer) runAllYears() error {
	im.log.Info().Msg("analyzing course data")
	if err := im.ingestCourses(); err != nil {
		return err
	}
	for _, year := range schoolyear.ValidYears {
		im.log.Info().Str("year", year).Msg("analyzing teacher data")
		if err := im.ingestTeachers(year); err != nil {
			return err
		}
		im.log.Info().Str("year", year).Msg("analyzing student demographic data")
		if err := im.ingestStudents(year); err != nil {
			return err
		}
	}
	im.log.Info().Msg("analyzing roster data")
	return im.ingestRosters()
}
