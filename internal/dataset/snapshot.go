package dataset

import (
	"sync"
	"time"

	"go-process-dashboard/internal/model"
)

// Snapshot holds the canonical dataset currently being served. Readers take
// the pointer under a shared lock and then work lock-free, since a dataset is
// never mutated after the swap. Swap is the only writer; a failed reload
// never reaches Swap, so the previous dataset keeps serving.
type Snapshot struct {
	mu       sync.RWMutex
	current  model.Dataset
	stats    LoadStats
	loadedAt time.Time
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Current returns the dataset loaded by the most recent successful load.
func (s *Snapshot) Current() model.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Swap atomically replaces the served dataset with a fully built one.
func (s *Snapshot) Swap(ds model.Dataset, stats LoadStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ds
	s.stats = stats
	s.loadedAt = time.Now()
}

// Info returns the stats and timestamp of the serving load.
func (s *Snapshot) Info() (LoadStats, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.loadedAt
}
