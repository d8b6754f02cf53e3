package catalog

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// LoadState is the tri-state result of the catalog fetch.
type LoadState string

const (
	StateLoading LoadState = "LOADING"
	StateLoaded  LoadState = "LOADED"
	StateFailed  LoadState = "FAILED"
)

// Snapshot is the current load result. Items is populated only in the
// LOADED state; Err only in FAILED.
type Snapshot struct {
	State LoadState
	Items []Item
	Err   error
}

type Service interface {
	// Items returns the loaded catalog, triggering the initial fetch if it
	// has not happened yet. Returns ErrNotLoaded while the catalog is
	// unavailable.
	Items(ctx context.Context) ([]Item, error)

	// Search filters the loaded catalog by a case-insensitive substring of
	// the item name. An empty term returns everything.
	Search(ctx context.Context, term string) ([]Item, error)

	// Refresh performs a fresh, independent fetch attempt. The newest
	// result wins regardless of what the previous attempt produced.
	Refresh(ctx context.Context) error

	// Snapshot reports the current load state without triggering a fetch.
	Snapshot() Snapshot
}

type service struct {
	provider Provider
	logger   *zap.Logger

	mu   sync.Mutex
	snap Snapshot
}

func NewService(provider Provider, logger *zap.Logger) Service {
	if provider == nil {
		panic("catalog provider cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		provider: provider,
		logger:   logger.Named("catalog.service"),
		snap:     Snapshot{State: StateLoading},
	}
}

func (s *service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *service) Items(ctx context.Context) ([]Item, error) {
	s.mu.Lock()
	if s.snap.State == StateLoading {
		s.mu.Unlock()
		if err := s.Refresh(ctx); err != nil {
			return nil, ErrNotLoaded
		}
		s.mu.Lock()
	}
	defer s.mu.Unlock()

	if s.snap.State != StateLoaded {
		return nil, ErrNotLoaded
	}
	return s.snap.Items, nil
}

func (s *service) Search(ctx context.Context, term string) ([]Item, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items, nil
	}

	filtered := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), term) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func (s *service) Refresh(ctx context.Context) error {
	items, err := s.provider.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Error("catalog fetch failed", zap.Error(err))
		s.snap = Snapshot{State: StateFailed, Err: err}
		return err
	}

	s.logger.Info("catalog loaded", zap.Int("items", len(items)))
	s.snap = Snapshot{State: StateLoaded, Items: items}
	return nil
}

// Lookup finds an item by id in an already-loaded list.
func Lookup(items []Item, id int64) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
