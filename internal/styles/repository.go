package styles

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/pagination"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/qml"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/query"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/repository"
	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/storage"
)

const qmlContentType = "application/xml"

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a style repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "styles"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Style], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "LayerName", "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count styles: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanStyle)
	if err != nil {
		return nil, fmt.Errorf("query styles: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Style, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	st, err := repository.QueryOne(ctx, r.db, q, args, scanStyle)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &st, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*UploadResult, error) {
	doc, err := qml.ParseBytes(cmd.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	warnings := doc.Lint()
	geometry, ruleCount, fieldCount, temporal := describe(doc)

	id := uuid.New()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), qmlContentType); err != nil {
		return nil, fmt.Errorf("upload style blob: %w", err)
	}

	q := `
		INSERT INTO styles(id, layer_name, filename, geometry_type, rule_count, field_count, temporal, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, layer_name, filename, geometry_type, rule_count, field_count, temporal, size_bytes, storage_key, uploaded_at, updated_at`

	insertArgs := []any{
		id,
		cmd.LayerName,
		cmd.Filename,
		geometry,
		ruleCount,
		fieldCount,
		temporal,
		int64(len(cmd.Data)),
		key,
	}

	st, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Style, error) {
		return repository.QueryOne(ctx, tx, q, insertArgs, scanStyle)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"style registered",
		"id", st.ID,
		"layer", st.LayerName,
		"rules", st.RuleCount,
		"warnings", len(warnings),
	)
	return &UploadResult{Style: &st, Warnings: warnings}, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	st, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM styles WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, st.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", st.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("style deleted", "id", id)
	return nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Style, error) {
	st, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := r.storage.Download(ctx, st.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("download style blob: %w", err)
	}

	return body, st, nil
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("styles/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "layer.qml"
	}
	return url.PathEscape(name)
}
