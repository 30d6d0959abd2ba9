package manager

import (
	"context"
	"errors"
	"time"

	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/matcher"
	"github.com/harwood/mediamap/pkg/reconcile"
	"github.com/harwood/mediamap/pkg/storage"
	"github.com/harwood/mediamap/pkg/storage/sqlite/schema/gen/model"
	"go.uber.org/zap"
)

// ConfirmStatus is the per-item outcome of a confirm operation
type ConfirmStatus string

const (
	ConfirmImported      ConfirmStatus = "imported"
	ConfirmAlreadyExists ConfirmStatus = "already_exists"
	ConfirmFailed        ConfirmStatus = "failed"
)

// ConfirmRequest describes what is required to confirm a reconciliation item.
// Candidate may come from the item's best match, its alternates, or a manual
// search; when its external id is zero the item's best match is used.
type ConfirmRequest struct {
	FolderPath string            `json:"folderPath"`
	Candidate  matcher.Candidate `json:"candidate"`
	RootFolder string            `json:"rootFolder,omitempty"`
}

// ConfirmResult is the outcome of confirming a single item
type ConfirmResult struct {
	Status  ConfirmStatus `json:"status"`
	Message string        `json:"message,omitempty"`
}

// ConfirmSummary aggregates the independent outcomes of a bulk confirm
type ConfirmSummary struct {
	Imported      int `json:"imported"`
	AlreadyExists int `json:"alreadyExists"`
	Failed        int `json:"failed"`
}

// ConfirmMatch imports one reconciliation item into the library under the
// chosen candidate. Confirming a candidate already in the library is a no-op
// reported as already_exists, so double submission never creates duplicates.
// A persistence failure leaves the item in place for retry.
func (m MediaManager) ConfirmMatch(ctx context.Context, instance string, req ConfirmRequest) (ConfirmResult, error) {
	log := logger.FromCtx(ctx)

	state, err := m.instance(instance)
	if err != nil {
		return ConfirmResult{}, err
	}

	item, inStore := state.store.Get(req.FolderPath)

	candidate := req.Candidate
	if candidate.ExternalID == 0 {
		if !inStore || item.BestMatch == nil {
			return ConfirmResult{}, errors.New("no candidate chosen for folder")
		}
		candidate = *item.BestMatch
	}

	exists, err := m.storage.LibraryItemExistsByExternalID(ctx, int32(candidate.ExternalID))
	if err != nil {
		log.Error("duplicate guard lookup failed", zap.String("folder", req.FolderPath), zap.Error(err))
		return ConfirmResult{Status: ConfirmFailed, Message: err.Error()}, nil
	}
	if exists {
		m.dropConfirmed(ctx, state.store, req.FolderPath)
		return ConfirmResult{Status: ConfirmAlreadyExists}, nil
	}

	if !inStore {
		return ConfirmResult{}, reconcile.ErrItemNotFound
	}

	entry := libraryEntry(item, candidate, req.RootFolder)
	if _, err := m.storage.CreateLibraryItem(ctx, entry); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			m.dropConfirmed(ctx, state.store, req.FolderPath)
			return ConfirmResult{Status: ConfirmAlreadyExists}, nil
		}

		log.Error("failed to create library entry", zap.String("folder", req.FolderPath), zap.Error(err))
		return ConfirmResult{Status: ConfirmFailed, Message: err.Error()}, nil
	}

	m.dropConfirmed(ctx, state.store, req.FolderPath)
	log.Info("imported folder", zap.String("folder", req.FolderPath), zap.String("title", candidate.Title))
	return ConfirmResult{Status: ConfirmImported}, nil
}

// dropConfirmed removes a now-mapped folder from the store. The item may
// already be gone when confirms race; that is fine.
func (m MediaManager) dropConfirmed(ctx context.Context, store *reconcile.Store, folderPath string) {
	if err := store.Remove(folderPath); err != nil && !errors.Is(err, reconcile.ErrItemNotFound) {
		logger.FromCtx(ctx).Debug("failed to remove confirmed item", zap.String("folder", folderPath), zap.Error(err))
	}
}

// SkipItem dismisses an item for the rest of this generation. The next scan
// re-surfaces the folder as pending if it is still unmapped.
func (m MediaManager) SkipItem(ctx context.Context, instance, folderPath string) error {
	state, err := m.instance(instance)
	if err != nil {
		return err
	}

	return state.store.SetSkipped(folderPath)
}

// ConfirmAllMatched confirms every currently-matched item under its best
// match. Outcomes are independent; one failure never blocks the rest, and the
// summary always carries all three counts.
func (m MediaManager) ConfirmAllMatched(ctx context.Context, instance string) (ConfirmSummary, error) {
	state, err := m.instance(instance)
	if err != nil {
		return ConfirmSummary{}, err
	}

	var summary ConfirmSummary
	for _, item := range state.store.Matched() {
		result, err := m.ConfirmMatch(ctx, instance, ConfirmRequest{FolderPath: item.FolderPath})
		if err != nil {
			summary.Failed++
			continue
		}

		switch result.Status {
		case ConfirmImported:
			summary.Imported++
		case ConfirmAlreadyExists:
			summary.AlreadyExists++
		default:
			summary.Failed++
		}
	}

	return summary, nil
}

// libraryEntry builds the library index row for a confirmed item
func libraryEntry(item reconcile.Item, candidate matcher.Candidate, rootFolder string) model.LibraryItem {
	if rootFolder == "" {
		rootFolder = item.RootFolder
	}

	entry := model.LibraryItem{
		ExternalID:     int32(candidate.ExternalID),
		Title:          candidate.Title,
		PosterPath:     candidate.PosterPath,
		FolderPath:     item.FolderPath,
		RootFolder:     rootFolder,
		FileCount:      int32(item.FileCount),
		TotalSizeBytes: item.TotalSizeBytes,
	}
	if candidate.Year != nil {
		year := int32(*candidate.Year)
		entry.Year = &year
	}

	created := time.Now()
	entry.CreatedAt = &created
	return entry
}
