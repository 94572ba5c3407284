package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/image-processing/pkg/pagination"
	"github.com/JaimeStill/image-processing/pkg/query"
	"github.com/JaimeStill/image-processing/pkg/repository"
	"github.com/JaimeStill/image-processing/pkg/storage"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an uploaded file repository backed by Postgres and blob storage.
func New(db *sql.DB, storage storage.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		storage:    storage,
		logger:     logger.With("system", "uploads"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[File], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "FileName", "Note")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count uploaded files: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	files, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFile)
	if err != nil {
		return nil, fmt.Errorf("query uploaded files: %w", err)
	}

	result := pagination.NewPageResult(files, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*File, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Content(ctx context.Context, id uuid.UUID) (*File, error) {
	f, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := r.storage.Retrieve(ctx, f.StorageName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("blob missing for record", "id", f.ID, "storage_name", f.StorageName)
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("retrieve uploaded file: %w", err)
	}

	f.Content = data
	return f, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*File, error) {
	id := uuid.New()
	size := int64(len(cmd.Content))

	if err := r.storage.Store(ctx, cmd.StorageName, cmd.Content); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	q := `INSERT INTO uploaded_files(id, file_name, note, size, upload_date, storage_name)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, file_name, note, size, upload_date, storage_name`

	f, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (File, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.FileName, cmd.Note, size, time.Now().UTC(), cmd.StorageName,
		}, scanFile)
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, cmd.StorageName); delErr != nil {
			r.logger.Error("cleanup failed after db error", "storage_name", cmd.StorageName, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	f.Content = cmd.Content

	r.logger.Info("uploaded file recorded", "id", f.ID, "size", f.Size, "storage_name", f.StorageName)
	return &f, nil
}
