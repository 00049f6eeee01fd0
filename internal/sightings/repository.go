package sightings

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/pagination"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/query"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a sighting repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "sightings"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Sighting], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "LocationName", "SubID")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count sightings: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanSighting)
	if err != nil {
		return nil, fmt.Errorf("query sightings: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Sighting, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanSighting)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Sighting, error) {
	if cmd.SubID == "" || cmd.SpeciesCode == "" {
		return nil, fmt.Errorf("%w: sub id and species code required", ErrInvalid)
	}

	q := `
		INSERT INTO sightings(id, sub_id, loc_id, location_name, species_code, species_name, observation_date, observation_date_raw, individuals, valid, reviewed, location_private, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, sub_id, loc_id, location_name, species_code, species_name, observation_date, observation_date_raw, individuals, valid, reviewed, location_private, latitude, longitude, created_at`

	insertArgs := []any{
		uuid.New(),
		cmd.SubID,
		cmd.LocID,
		cmd.LocationName,
		cmd.SpeciesCode,
		cmd.SpeciesName,
		cmd.ObservationDate,
		cmd.ObservationRaw,
		cmd.Individuals,
		cmd.Valid,
		cmd.Reviewed,
		cmd.LocationPrivate,
		cmd.Latitude,
		cmd.Longitude,
	}

	s, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Sighting, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanSighting)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"sighting registered",
		"id", s.ID,
		"sub_id", s.SubID,
		"species", s.SpeciesCode,
	)
	return &s, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM sightings WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("sighting deleted", "id", id)
	return nil
}

func (r *repo) Collect(ctx context.Context, species []string, from, to time.Time) ([]Sighting, error) {
	codes := make([]any, len(species))
	for i, code := range species {
		codes[i] = code
	}

	qb := query.
		NewBuilder(projection, query.SortField{Field: "ObservationDate"}).
		WhereIn("SpeciesCode", codes).
		WhereGTE("ObservationDate", from).
		WhereLTE("ObservationDate", to)

	q, args := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanSighting)
	if err != nil {
		return nil, fmt.Errorf("collect sightings: %w", err)
	}

	return items, nil
}
