package manager

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/harwood/mediamap/config"
	"github.com/harwood/mediamap/pkg/cache"
	"github.com/harwood/mediamap/pkg/catalog"
	"github.com/harwood/mediamap/pkg/logger"
	"github.com/harwood/mediamap/pkg/matcher"
	"github.com/harwood/mediamap/pkg/reconcile"
	"github.com/harwood/mediamap/pkg/scanner"
	"github.com/harwood/mediamap/pkg/storage"
	"go.uber.org/zap"
)

var ErrInstanceNotFound = errors.New("instance not found")

const (
	defaultScanWorkers    = 4
	defaultCatalogTimeout = 10 * time.Second
)

// Instance is one managed library to reconcile: a name plus the root folders
// it scans.
type Instance struct {
	Name  string
	Roots []scanner.FileSystem
}

// MediaManager coordinates scanning, matching, confirmation, and manual
// search across all configured library instances.
type MediaManager struct {
	catalog   catalog.Client
	storage   storage.Storage
	config    config.Config
	instances *cache.Cache[string, *instanceState]
}

// instanceState is the per-instance runtime: the scanner over its roots and
// the reconciliation store for the current generation.
type instanceState struct {
	name     string
	scanner  scanner.Scanner
	store    *reconcile.Store
	seedOnce sync.Once
}

func New(catalogClient catalog.Client, store storage.Storage, cfg config.Config, instances ...Instance) MediaManager {
	registry := cache.New[string, *instanceState]()
	for _, in := range instances {
		registry.Set(in.Name, &instanceState{
			name:    in.Name,
			scanner: scanner.New(in.Roots...),
			store:   reconcile.NewStore(),
		})
	}

	return MediaManager{
		catalog:   catalogClient,
		storage:   store,
		config:    cfg,
		instances: registry,
	}
}

// Instances lists the configured instance names
func (m MediaManager) Instances() []string {
	return m.instances.Keys()
}

func (m MediaManager) instance(name string) (*instanceState, error) {
	state, ok := m.instances.Get(name)
	if !ok {
		return nil, ErrInstanceNotFound
	}
	return state, nil
}

// seedLastScanAt loads the persisted last scan time into the store once per
// process. A missing row just means the instance has never scanned.
func (m MediaManager) seedLastScanAt(ctx context.Context, state *instanceState) {
	state.seedOnce.Do(func() {
		at, err := m.storage.GetLastScanAt(ctx, state.name)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				logger.FromCtx(ctx).Debug("failed to load last scan time", zap.String("instance", state.name), zap.Error(err))
			}
			return
		}
		state.store.SetLastScanAt(at)
	})
}

// SearchCatalog queries the catalog for a free-text title and optional year
// and returns every candidate clearing the minimum score, ranked. There is no
// auto-match gate here; the caller picks.
func (m MediaManager) SearchCatalog(ctx context.Context, query string, year *int) ([]matcher.Candidate, error) {
	log := logger.FromCtx(ctx)
	if query == "" {
		log.Debug("catalog search query is empty")
		return nil, errors.New("query is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, m.catalogTimeout())
	defer cancel()

	results, err := m.catalog.SearchByTitle(ctx, query, year)
	if err != nil {
		log.Error("catalog search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return matcher.Rank(query, year, results), nil
}

func (m MediaManager) catalogTimeout() time.Duration {
	if m.config.Catalog.Timeout > 0 {
		return m.config.Catalog.Timeout
	}
	return defaultCatalogTimeout
}

func (m MediaManager) scanWorkers() int {
	if m.config.Scan.Workers > 0 {
		return m.config.Scan.Workers
	}
	return defaultScanWorkers
}

// libraryLookup adapts the library index to the scanner's exclusion check
type libraryLookup struct {
	storage storage.LibraryItemStorage
}

func (l libraryLookup) HasFolder(ctx context.Context, folderPath string) (bool, error) {
	return l.storage.LibraryItemExistsByFolderPath(ctx, folderPath)
}
