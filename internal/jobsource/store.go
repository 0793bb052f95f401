package jobsource

import (
	"sync"
	"time"

	"jobmatcher/internal/types"
)

// Store keeps the most recently fetched corpus in memory so analytics
// and scoring requests can reuse it without refetching.
type Store struct {
	mu        sync.RWMutex
	jobs      []types.JobRecord
	fetchedAt time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Put replaces the stored corpus.
func (s *Store) Put(jobs []types.JobRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = make([]types.JobRecord, len(jobs))
	copy(s.jobs, jobs)
	s.fetchedAt = time.Now()
}

// Jobs returns a copy of the stored corpus.
func (s *Store) Jobs() []types.JobRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]types.JobRecord, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

// FetchedAt reports when the corpus was last replaced. The zero time
// means the store is empty.
func (s *Store) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Len reports the stored corpus size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
