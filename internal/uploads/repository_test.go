package uploads_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JaimeStill/image-processing/internal/uploads"
	"github.com/JaimeStill/image-processing/pkg/logging"
	"github.com/JaimeStill/image-processing/pkg/pagination"
	"github.com/JaimeStill/image-processing/pkg/storage"
)

var fileColumns = []string{"id", "file_name", "note", "size", "upload_date", "storage_name"}

func newRepo(t *testing.T) (uploads.System, sqlmock.Sqlmock, string) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	root := t.TempDir()
	store, err := storage.New(&storage.Config{FilePath: root}, logging.Discard())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	pg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	return uploads.New(db, store, logging.Discard(), pg), mock, root
}

func TestCreate_StoresBlobAndRecord(t *testing.T) {
	sys, mock, root := newRepo(t)
	content := []byte("Hello ASCII")
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO uploaded_files`).
		WithArgs(sqlmock.AnyArg(), "notes.txt", "", int64(len(content)), sqlmock.AnyArg(), "abcd1234.xyz").
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(uuid.New().String(), "notes.txt", "", int64(len(content)), now, "abcd1234.xyz"))
	mock.ExpectCommit()

	f, err := sys.Create(context.Background(), uploads.CreateCommand{
		FileName:    "notes.txt",
		StorageName: "abcd1234.xyz",
		Content:     content,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if f.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", f.Size, len(content))
	}
	if string(f.Content) != string(content) {
		t.Errorf("Content = %q, want %q", f.Content, content)
	}

	got, err := os.ReadFile(filepath.Join(root, "abcd1234.xyz"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("stored blob = %q, want %q", got, content)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_InsertFailureRemovesBlob(t *testing.T) {
	sys, mock, root := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO uploaded_files`).
		WillReturnError(errors.New("connection refused"))
	mock.ExpectRollback()

	_, err := sys.Create(context.Background(), uploads.CreateCommand{
		FileName:    "notes.txt",
		StorageName: "abcd1234.xyz",
		Content:     []byte("hello"),
	})
	if err == nil {
		t.Fatal("Create() error = nil, want insert failure")
	}

	if _, err := os.Stat(filepath.Join(root, "abcd1234.xyz")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("blob stat error = %v, want not exist", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateStorageName(t *testing.T) {
	sys, mock, _ := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO uploaded_files`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := sys.Create(context.Background(), uploads.CreateCommand{
		FileName:    "notes.txt",
		StorageName: "abcd1234.xyz",
		Content:     []byte("hello"),
	})
	if !errors.Is(err, uploads.ErrDuplicate) {
		t.Errorf("Create() error = %v, want %v", err, uploads.ErrDuplicate)
	}
}

func TestCreate_InvalidStorageName(t *testing.T) {
	sys, mock, _ := newRepo(t)

	_, err := sys.Create(context.Background(), uploads.CreateCommand{
		FileName:    "notes.txt",
		StorageName: "../escape.txt",
		Content:     []byte("hello"),
	})
	if !errors.Is(err, uploads.ErrStoreFailed) {
		t.Errorf("Create() error = %v, want %v", err, uploads.ErrStoreFailed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database calls: %v", err)
	}
}

func TestRepo_List(t *testing.T) {
	sys, mock, _ := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM public.uploaded_files f`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT f.id, .* FROM public.uploaded_files f ORDER BY f.upload_date DESC LIMIT 20 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(uuid.New().String(), "a.txt", "", int64(1), now, "aaaaaaaa.aaa").
			AddRow(uuid.New().String(), "b.txt", "", int64(2), now, "bbbbbbbb.bbb"))

	result, err := sys.List(context.Background(), pagination.PageRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if result.Total != 2 || len(result.Data) != 2 {
		t.Errorf("List() total = %d, len = %d, want 2, 2", result.Total, len(result.Data))
	}
	if result.Data[0].FileName != "a.txt" {
		t.Errorf("Data[0].FileName = %q, want a.txt", result.Data[0].FileName)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFind_NotFound(t *testing.T) {
	sys, mock, _ := newRepo(t)

	mock.ExpectQuery(`SELECT .* FROM public.uploaded_files f WHERE f.id = \$1`).
		WillReturnError(sql.ErrNoRows)

	if _, err := sys.Find(context.Background(), uuid.New()); !errors.Is(err, uploads.ErrNotFound) {
		t.Errorf("Find() error = %v, want %v", err, uploads.ErrNotFound)
	}
}

func TestContent_LoadsBlob(t *testing.T) {
	sys, mock, root := newRepo(t)
	id := uuid.New()

	if err := os.WriteFile(filepath.Join(root, "abcd1234.xyz"), []byte("stored bytes"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	mock.ExpectQuery(`SELECT .* FROM public.uploaded_files f WHERE f.id = \$1`).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(id.String(), "notes.txt", "", int64(12), time.Now().UTC(), "abcd1234.xyz"))

	f, err := sys.Content(context.Background(), id)
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	if string(f.Content) != "stored bytes" {
		t.Errorf("Content = %q, want stored bytes", f.Content)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestContent_MissingBlob(t *testing.T) {
	sys, mock, _ := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM public.uploaded_files f WHERE f.id = \$1`).
		WillReturnRows(sqlmock.NewRows(fileColumns).
			AddRow(id.String(), "notes.txt", "", int64(12), time.Now().UTC(), "gone0000.xyz"))

	if _, err := sys.Content(context.Background(), id); !errors.Is(err, uploads.ErrNotFound) {
		t.Errorf("Content() error = %v, want %v", err, uploads.ErrNotFound)
	}
}

func TestCreate_StorageRootUnwritable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	store, err := storage.New(&storage.Config{FilePath: filepath.Join(blocker, "uploads")}, logging.Discard())
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	sys := uploads.New(db, store, logging.Discard(), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})

	_, err = sys.Create(context.Background(), uploads.CreateCommand{
		FileName:    "notes.txt",
		StorageName: "abcd1234.xyz",
		Content:     []byte("hello"),
	})
	if !errors.Is(err, uploads.ErrStoreFailed) {
		t.Errorf("Create() error = %v, want %v", err, uploads.ErrStoreFailed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database calls: %v", err)
	}
}
