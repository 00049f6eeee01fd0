package styles

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/brotherjack/CFL-MODU-GIS-Project/pkg/pagination"
)

// System defines the public contract for style domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Style], error)

	Find(ctx context.Context, id uuid.UUID) (*Style, error)
	Create(ctx context.Context, cmd CreateCommand) (*UploadResult, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Download returns the stored QML document for a registered style.
	// The caller must close the reader.
	Download(ctx context.Context, id uuid.UUID) (io.ReadCloser, *Style, error)
}
