package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/storage"
	"github.com/harwood/mediamap/pkg/storage/sqlite/schema/gen/model"
	"github.com/harwood/mediamap/pkg/storage/sqlite/schema/gen/table"
	sqlite3 "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// New creates a new sqlite database given a path to the database file
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	return &SQLite{
		db: db,
	}, nil
}

// Init applies pending migrations to the database
func (s *SQLite) Init(ctx context.Context) error {
	return runMigrations(s.db)
}

// CreateLibraryItem stores an imported media entry in the library index. A
// second entry for the same external id maps to storage.ErrAlreadyExists.
func (s *SQLite) CreateLibraryItem(ctx context.Context, item model.LibraryItem) (int64, error) {
	log := logger.FromCtx(ctx)

	stmt := table.LibraryItem.
		INSERT(table.LibraryItem.MutableColumns.Except(table.LibraryItem.CreatedAt)).
		MODEL(item)

	result, err := stmt.ExecContext(ctx, s.db)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, storage.ErrAlreadyExists
		}
		log.Errorw("failed to create library item", "error", err)
		return 0, err
	}

	return result.LastInsertId()
}

// LibraryItemExistsByExternalID reports whether an entry for the catalog record exists
func (s *SQLite) LibraryItemExistsByExternalID(ctx context.Context, externalID int32) (bool, error) {
	stmt := table.LibraryItem.
		SELECT(table.LibraryItem.ID).
		WHERE(table.LibraryItem.ExternalID.EQ(sqlite.Int32(externalID))).
		LIMIT(1)

	return s.exists(ctx, stmt)
}

// LibraryItemExistsByFolderPath reports whether a folder is already imported
func (s *SQLite) LibraryItemExistsByFolderPath(ctx context.Context, folderPath string) (bool, error) {
	stmt := table.LibraryItem.
		SELECT(table.LibraryItem.ID).
		WHERE(table.LibraryItem.FolderPath.EQ(sqlite.String(folderPath))).
		LIMIT(1)

	return s.exists(ctx, stmt)
}

// ListLibraryItems lists all imported entries
func (s *SQLite) ListLibraryItems(ctx context.Context) ([]*model.LibraryItem, error) {
	items := make([]*model.LibraryItem, 0)

	stmt := table.LibraryItem.
		SELECT(table.LibraryItem.AllColumns).
		FROM(table.LibraryItem).
		ORDER_BY(table.LibraryItem.Title.ASC())

	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// GetLastScanAt returns when the instance last completed a scan
func (s *SQLite) GetLastScanAt(ctx context.Context, instance string) (time.Time, error) {
	stmt := table.ScanState.
		SELECT(table.ScanState.AllColumns).
		FROM(table.ScanState).
		WHERE(table.ScanState.Instance.EQ(sqlite.String(instance)))

	state := new(model.ScanState)
	err := stmt.QueryContext(ctx, s.db, state)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return time.Time{}, storage.ErrNotFound
		}
		return time.Time{}, err
	}

	return state.LastScanAt, nil
}

// SetLastScanAt upserts the instance's last completed scan time
func (s *SQLite) SetLastScanAt(ctx context.Context, instance string, at time.Time) error {
	state := model.ScanState{
		Instance:   instance,
		LastScanAt: at,
	}

	stmt := table.ScanState.
		INSERT(table.ScanState.AllColumns).
		MODEL(state).
		ON_CONFLICT(table.ScanState.Instance).
		DO_UPDATE(sqlite.SET(
			table.ScanState.LastScanAt.SET(table.ScanState.EXCLUDED.LastScanAt),
		))

	_, err := stmt.ExecContext(ctx, s.db)
	return err
}

func (s *SQLite) exists(ctx context.Context, stmt sqlite.SelectStatement) (bool, error) {
	var dest struct {
		ID int32 `alias:"library_item.id"`
	}

	err := stmt.QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
