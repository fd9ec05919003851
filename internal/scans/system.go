package scans

import (
	"context"

	"github.com/google/uuid"

	"github.com/jazs69/ai-waste-sorter/pkg/pagination"
)

// System defines the public contract for scan domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Scan], error)

	Find(ctx context.Context, id uuid.UUID) (*Scan, error)
	Create(ctx context.Context, cmd CreateCommand) (*Scan, error)
	CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult
	Reclassify(ctx context.Context, id uuid.UUID) (*Scan, error)
	Image(ctx context.Context, id uuid.UUID) (*ImageResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
