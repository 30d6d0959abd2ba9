package storage

import (
	"context"
	"errors"
	"time"

	"github.com/harwood/mediamap/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")
var ErrAlreadyExists = errors.New("already exists in storage")

// Storage is the persistence surface for the reconciliation engine: the
// library index of imported media and the per-instance scan bookkeeping.
type Storage interface {
	Init(ctx context.Context) error
	LibraryItemStorage
	ScanStateStorage
}

// LibraryItemStorage is the library index. The confirmation flow is its only
// writer; the scanner and the duplicate guard read it.
type LibraryItemStorage interface {
	CreateLibraryItem(ctx context.Context, item model.LibraryItem) (int64, error)
	LibraryItemExistsByExternalID(ctx context.Context, externalID int32) (bool, error)
	LibraryItemExistsByFolderPath(ctx context.Context, folderPath string) (bool, error)
	ListLibraryItems(ctx context.Context) ([]*model.LibraryItem, error)
}

// ScanStateStorage persists when an instance last completed a scan
type ScanStateStorage interface {
	GetLastScanAt(ctx context.Context, instance string) (time.Time, error)
	SetLastScanAt(ctx context.Context, instance string, at time.Time) error
}
