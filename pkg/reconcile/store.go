package reconcile

import (
	"errors"
	"sync"
	"time"

	"github.com/harwood/mediamap/pkg/machine"
	"github.com/harwood/mediamap/pkg/matcher"
	"github.com/harwood/mediamap/pkg/scanner"
)

// Status is the review state of one reconciliation item
type Status string

const (
	StatusPending Status = "pending"
	StatusMatched Status = "matched"
	StatusNoMatch Status = "no_match"
	StatusSkipped Status = "skipped"
)

var (
	ErrItemNotFound = errors.New("reconciliation item not found")
)

// statusMachine describes the legal transitions for an item. Confirmation is
// not a stored status: a confirmed item leaves the store entirely.
func statusMachine(current Status) *machine.StateMachine[Status] {
	return machine.New(current,
		machine.From(StatusPending).To(StatusMatched, StatusNoMatch),
		machine.From(StatusMatched).To(StatusSkipped),
		machine.From(StatusNoMatch).To(StatusSkipped),
	)
}

// Item tracks one discovered folder through the match and review lifecycle
type Item struct {
	FolderPath       string              `json:"folderPath"`
	FolderName       string              `json:"folderName"`
	RootFolder       string              `json:"rootFolder"`
	ParsedTitle      string              `json:"parsedTitle"`
	ParsedYear       *int                `json:"parsedYear,omitempty"`
	ParsedQuality    *string             `json:"parsedQuality,omitempty"`
	FileCount        int                 `json:"fileCount"`
	TotalSizeBytes   int64               `json:"totalSizeBytes"`
	Status           Status              `json:"status"`
	BestMatch        *matcher.Candidate  `json:"bestMatch,omitempty"`
	AlternateMatches []matcher.Candidate `json:"alternateMatches,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// State is a point-in-time snapshot of a store
type State struct {
	InProgress bool       `json:"scanInProgress"`
	LastScanAt *time.Time `json:"lastScanAt,omitempty"`
	Items      []Item     `json:"items"`
}

var now = time.Now

// Store holds the reconciliation items of one scan generation for one library
// instance. All mutation goes through its methods; readers get copies.
type Store struct {
	mu         sync.RWMutex
	items      map[string]*Item
	inProgress bool
	lastScanAt *time.Time
}

func NewStore() *Store {
	return &Store{
		items: make(map[string]*Item),
	}
}

// BeginGeneration discards the previous generation and marks a scan in
// progress. It returns false without touching anything when a scan is already
// running, which makes the scan trigger idempotent. Previously skipped folders
// are discarded along with everything else: skip means "not now", so the next
// scan re-surfaces the folder as pending.
func (s *Store) BeginGeneration() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inProgress {
		return false
	}

	s.items = make(map[string]*Item)
	s.inProgress = true
	return true
}

// EndGeneration marks the scan finished and records when it happened
func (s *Store) EndGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()

	finished := now()
	s.lastScanAt = &finished
	s.inProgress = false
}

// AddPending registers a discovered folder as a pending item. Within one
// generation each folder path appears once.
func (s *Store) AddPending(descriptor scanner.FolderDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[descriptor.FolderPath] = &Item{
		FolderPath:     descriptor.FolderPath,
		FolderName:     descriptor.FolderName,
		RootFolder:     descriptor.RootFolder,
		ParsedTitle:    descriptor.ParsedTitle,
		ParsedYear:     descriptor.ParsedYear,
		ParsedQuality:  descriptor.ParsedQuality,
		FileCount:      descriptor.FileCount,
		TotalSizeBytes: descriptor.TotalSizeBytes,
		Status:         StatusPending,
		CreatedAt:      now(),
	}
}

// SetMatchResult moves a pending item to matched or no_match and records its
// candidates. Candidates are expected already ranked by the matcher.
func (s *Store) SetMatchResult(folderPath string, best *matcher.Candidate, alternates []matcher.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[folderPath]
	if !ok {
		return ErrItemNotFound
	}

	target := StatusNoMatch
	if best != nil {
		target = StatusMatched
	}

	if err := statusMachine(item.Status).ToState(target); err != nil {
		return err
	}

	item.Status = target
	item.BestMatch = best
	item.AlternateMatches = alternates
	return nil
}

// SetSkipped marks an item skipped. The item stays in the store until the
// next generation replaces it.
func (s *Store) SetSkipped(folderPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[folderPath]
	if !ok {
		return ErrItemNotFound
	}

	if err := statusMachine(item.Status).ToState(StatusSkipped); err != nil {
		return err
	}

	item.Status = StatusSkipped
	return nil
}

// Remove drops an item, used after a successful confirmation when the folder
// is no longer unmapped.
func (s *Store) Remove(folderPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[folderPath]; !ok {
		return ErrItemNotFound
	}

	delete(s.items, folderPath)
	return nil
}

// Get returns a copy of one item
func (s *Store) Get(folderPath string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[folderPath]
	if !ok {
		return Item{}, false
	}

	return *item, true
}

// Snapshot returns the current generation without blocking on an in-progress
// scan. Items still waiting on their match show as pending. Item order is
// unspecified.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, *item)
	}

	return State{
		InProgress: s.inProgress,
		LastScanAt: s.lastScanAt,
		Items:      items,
	}
}

// Matched returns copies of all items currently in the matched state
func (s *Store) Matched() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Item{}
	for _, item := range s.items {
		if item.Status == StatusMatched {
			matched = append(matched, *item)
		}
	}

	return matched
}

// InProgress reports whether a scan is currently running
func (s *Store) InProgress() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inProgress
}

// SetLastScanAt seeds the last scan time, typically from persistence at startup
func (s *Store) SetLastScanAt(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastScanAt = &t
}
