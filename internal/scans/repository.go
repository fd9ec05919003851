package scans

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jazs69/ai-waste-sorter/internal/vision"
	"github.com/jazs69/ai-waste-sorter/pkg/formatting"
	"github.com/jazs69/ai-waste-sorter/pkg/pagination"
	"github.com/jazs69/ai-waste-sorter/pkg/query"
	"github.com/jazs69/ai-waste-sorter/pkg/repository"
	"github.com/jazs69/ai-waste-sorter/pkg/storage"
)

// maxBatchWorkers bounds concurrent vision calls during batch uploads.
const maxBatchWorkers = 4

const scanColumns = `id, filename, content_type, size_bytes, storage_key, status,
	category, raw_label, rationale, provider, model, input_tokens, output_tokens,
	cost_usd, created_at, updated_at, classified_at`

type repo struct {
	db              *sql.DB
	storage         storage.System
	analyzer        vision.Analyzer
	logger          *slog.Logger
	pagination      pagination.Config
	classifyTimeout time.Duration
}

// New creates a scan repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	analyzer vision.Analyzer,
	logger *slog.Logger,
	pagination pagination.Config,
	classifyTimeout time.Duration,
) System {
	return &repo{
		db:              db,
		storage:         store,
		analyzer:        analyzer,
		logger:          logger.With("system", "scans"),
		pagination:      pagination,
		classifyTimeout: classifyTimeout,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Scan], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Category", "RawLabel")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count scans: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRow)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Scan, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	sc, err := repository.QueryOne(ctx, r.db, q, args, scanRow)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &sc, nil
}

// Create uploads the image blob, registers the scan, and runs classification.
// A provider failure leaves the row in failed status so Reclassify can retry
// without re-uploading.
func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Scan, error) {
	if len(cmd.Data) == 0 {
		return nil, ErrInvalidFile
	}

	id := uuid.New()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload scan blob: %w", err)
	}

	q := fmt.Sprintf(`
		INSERT INTO scans (id, filename, content_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, scanColumns)

	insertArgs := []any{id, cmd.Filename, cmd.ContentType, int64(len(cmd.Data)), key}

	sc, err := repository.QueryOne(ctx, r.db, q, insertArgs, scanRow)
	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"scan created",
		"id", sc.ID,
		"filename", sc.Filename,
		"size", formatting.FormatBytes(sc.SizeBytes, 1),
	)
	return r.classify(ctx, &sc, cmd.Data)
}

// CreateBatch classifies several uploads concurrently with bounded workers.
// Individual failures are reported per file and do not cancel the batch.
func (r *repo) CreateBatch(ctx context.Context, cmds []CreateCommand) []BatchResult {
	results := make([]BatchResult, len(cmds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(len(cmds), maxBatchWorkers))

	for i, cmd := range cmds {
		g.Go(func() error {
			sc, err := r.Create(gctx, cmd)
			results[i] = BatchResult{Filename: cmd.Filename}
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Scan = sc
			return nil
		})
	}

	g.Wait()
	return results
}

// Reclassify re-runs the vision call against the stored blob.
func (r *repo) Reclassify(ctx context.Context, id uuid.UUID) (*Scan, error) {
	sc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	download, err := r.storage.Download(ctx, sc.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download scan blob: %w", err)
	}
	defer download.Body.Close()

	data, err := io.ReadAll(download.Body)
	if err != nil {
		return nil, fmt.Errorf("read scan blob: %w", err)
	}

	return r.classify(ctx, sc, data)
}

func (r *repo) Image(ctx context.Context, id uuid.UUID) (*ImageResult, error) {
	sc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	download, err := r.storage.Download(ctx, sc.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contentType := download.ContentType
	if contentType == "" {
		contentType = sc.ContentType
	}

	return &ImageResult{
		Body:          download.Body,
		ContentType:   contentType,
		ContentLength: download.ContentLength,
		Filename:      sc.Filename,
	}, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	sc, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM scans WHERE id = $1",
			id,
		)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if delErr := r.storage.Delete(ctx, sc.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", sc.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("scan deleted", "id", id)
	return nil
}

func (r *repo) classify(ctx context.Context, sc *Scan, data []byte) (*Scan, error) {
	visionCtx := ctx
	if r.classifyTimeout > 0 {
		var cancel context.CancelFunc
		visionCtx, cancel = context.WithTimeout(ctx, r.classifyTimeout)
		defer cancel()
	}

	result, err := r.analyzer.Classify(visionCtx, data, sc.ContentType)
	if err != nil {
		r.markFailed(ctx, sc.ID)
		return nil, fmt.Errorf("%w: %w", ErrClassifyFailed, err)
	}

	category := NormalizeLabel(result.Label)

	q := fmt.Sprintf(`
		UPDATE scans
		SET status = $2, category = $3, raw_label = $4, rationale = $5,
			provider = $6, model = $7, input_tokens = $8, output_tokens = $9,
			cost_usd = $10, classified_at = now(), updated_at = now()
		WHERE id = $1
		RETURNING %s`, scanColumns)

	args := []any{
		sc.ID,
		StatusClassified,
		string(category),
		result.Label,
		result.Rationale,
		result.Provider,
		result.Model,
		result.Usage.InputTokens,
		result.Usage.OutputTokens,
		result.Usage.CostUSD,
	}

	updated, err := repository.QueryOne(ctx, r.db, q, args, scanRow)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"scan classified",
		"id", updated.ID,
		"category", updated.Category,
		"provider", updated.Provider,
		"model", updated.Model,
	)
	return &updated, nil
}

func (r *repo) markFailed(ctx context.Context, id uuid.UUID) {
	err := repository.ExecExpectOne(
		ctx, r.db,
		"UPDATE scans SET status = $2, classified_at = NULL, updated_at = now() WHERE id = $1",
		id, StatusFailed,
	)
	if err != nil {
		r.logger.Warn("failed to mark scan as failed", "id", id, "error", err)
	}
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("scans/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(filepath.Base(name), "..", "")
	if name == "." || name == "" {
		name = "scan"
	}
	return url.PathEscape(name)
}
