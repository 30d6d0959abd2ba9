package manager

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/matcher"
	"github.com/harwood/mediamap/pkg/reconcile"
	"github.com/harwood/mediamap/pkg/scanner"
	"go.uber.org/zap"
)

// StartScan kicks off a reconciliation scan for an instance and returns
// immediately. It reports false when a scan is already running; triggering is
// idempotent and never stacks generations.
func (m MediaManager) StartScan(ctx context.Context, instance string) (bool, error) {
	state, err := m.instance(instance)
	if err != nil {
		return false, err
	}

	m.seedLastScanAt(ctx, state)

	if !state.store.BeginGeneration() {
		return false, nil
	}

	log := logger.FromCtx(ctx).With(zap.String("instance", instance), zap.String("scanID", uuid.NewString()))

	// the scan outlives the request that triggered it
	scanCtx := logger.WithCtx(context.WithoutCancel(ctx), log)
	go m.runScan(scanCtx, state)

	return true, nil
}

// runScan is one scan generation: enumerate folders, then match each against
// the catalog with a bounded worker pool. The generation always ends, even
// when enumeration fails outright.
func (m MediaManager) runScan(ctx context.Context, state *instanceState) {
	log := logger.FromCtx(ctx)
	defer m.endScan(ctx, state)

	descriptors, err := state.scanner.Scan(ctx, libraryLookup{storage: m.storage})
	if err != nil {
		log.Error("scan failed to enumerate root folders", zap.Error(err))
	}

	for _, d := range descriptors {
		state.store.AddPending(d)
	}

	if len(descriptors) == 0 {
		return
	}

	work := make(chan scanner.FolderDescriptor)
	var wg sync.WaitGroup
	for i := 0; i < m.scanWorkers(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range work {
				m.matchFolder(ctx, state.store, d)
			}
		}()
	}

	for _, d := range descriptors {
		work <- d
	}
	close(work)
	wg.Wait()

	log.Info("scan finished", zap.Int("folders", len(descriptors)))
}

func (m MediaManager) endScan(ctx context.Context, state *instanceState) {
	state.store.EndGeneration()
	if err := m.storage.SetLastScanAt(ctx, state.name, time.Now()); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist last scan time", zap.Error(err))
	}
}

// matchFolder resolves one pending item. A catalog failure counts as no
// candidates; the folder lands in no_match and the scan carries on.
func (m MediaManager) matchFolder(ctx context.Context, store *reconcile.Store, d scanner.FolderDescriptor) {
	log := logger.FromCtx(ctx)

	queryCtx, cancel := context.WithTimeout(ctx, m.catalogTimeout())
	defer cancel()

	results, err := m.catalog.SearchByTitle(queryCtx, d.ParsedTitle, d.ParsedYear)
	if err != nil {
		log.Warn("catalog lookup failed for folder", zap.String("folder", d.FolderPath), zap.Error(err))
	}

	candidates := matcher.Rank(d.ParsedTitle, d.ParsedYear, results)

	var best *matcher.Candidate
	alternates := candidates
	if top, ok := matcher.AutoMatch(candidates); ok {
		best = &top
		alternates = candidates[1:]
	}

	if err := store.SetMatchResult(d.FolderPath, best, alternates); err != nil {
		log.Warn("failed to record match result", zap.String("folder", d.FolderPath), zap.Error(err))
	}
}

// GetReconciliationState returns a snapshot of the instance's current
// generation. Safe to poll at any frequency; it never blocks a running scan.
func (m MediaManager) GetReconciliationState(ctx context.Context, instance string) (reconcile.State, error) {
	state, err := m.instance(instance)
	if err != nil {
		return reconcile.State{}, err
	}

	m.seedLastScanAt(ctx, state)
	return state.store.Snapshot(), nil
}
