package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/config"
	"github.com/brotherjack/CFL-MODU-GIS-Project/internal/sightings"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/ebird"
)

type runner struct {
	source   Source
	registry Registry
	cfg      config.IngestConfig
	logger   *slog.Logger
}

// New creates an ingest runner implementing the System interface.
func New(
	source Source,
	registry Registry,
	cfg config.IngestConfig,
	logger *slog.Logger,
) System {
	return &runner{
		source:   source,
		registry: registry,
		cfg:      cfg,
		logger:   logger.With("system", "ingest"),
	}
}

func (r *runner) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Run pulls recent observations for every configured species and registers
// each as a sighting. Species are pulled concurrently; each goroutine writes
// its summary into its own report slot.
func (r *runner) Run(ctx context.Context) (*Report, error) {
	codes := r.cfg.Codes()
	report := &Report{
		Region:    r.cfg.Region,
		StartedAt: time.Now().UTC(),
		Species:   make([]SpeciesReport, len(codes)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(len(codes)))

	for i, code := range codes {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			sr, err := r.pullSpecies(gctx, code)
			if err != nil {
				return fmt.Errorf("species %s: %w", code, err)
			}

			report.Species[i] = sr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRunFailed, err)
	}

	report.FinishedAt = time.Now().UTC()

	r.logger.Info(
		"ingest run complete",
		"region", report.Region,
		"species", len(codes),
		"new", report.TotalNew(),
	)
	return report, nil
}

func (r *runner) pullSpecies(ctx context.Context, code string) (SpeciesReport, error) {
	sr := SpeciesReport{Code: code, Name: r.cfg.Name(code)}

	observations, err := r.source.RecentSpeciesObservations(ctx, r.cfg.Region, code)
	if err != nil {
		return sr, err
	}

	sr.Pulled = len(observations)

	for _, obs := range observations {
		cmd, err := buildCommand(&obs, sr.Name)
		if err != nil {
			r.logger.Warn(
				"skipping observation",
				"sub_id", obs.SubID,
				"species", code,
				"error", err,
			)
			sr.Skipped++
			continue
		}

		if _, err := r.registry.Create(ctx, cmd); err != nil {
			if errors.Is(err, sightings.ErrDuplicate) {
				sr.Skipped++
				continue
			}
			return sr, err
		}

		sr.New++
	}

	return sr, nil
}

// buildCommand converts an eBird observation into a sighting create command.
// The display name comes from species config since the API common name can
// drift between taxonomy releases.
func buildCommand(obs *ebird.Observation, name string) (sightings.CreateCommand, error) {
	observed, err := obs.ObservedAt(time.UTC)
	if err != nil {
		return sightings.CreateCommand{}, fmt.Errorf("parse observation date: %w", err)
	}

	if name == "" {
		name = obs.ComName
	}

	return sightings.CreateCommand{
		SubID:           obs.SubID,
		LocID:           obs.LocID,
		LocationName:    obs.LocName,
		SpeciesCode:     obs.SpeciesCode,
		SpeciesName:     name,
		ObservationDate: observed,
		ObservationRaw:  obs.ObsDt,
		Individuals:     obs.HowMany,
		Valid:           obs.ObsValid,
		Reviewed:        obs.ObsReviewed,
		LocationPrivate: obs.LocationPrivate,
		Latitude:        obs.Lat,
		Longitude:       obs.Lng,
	}, nil
}

func workerCount(speciesCount int) int {
	return max(min(runtime.NumCPU(), speciesCount), 1)
}
