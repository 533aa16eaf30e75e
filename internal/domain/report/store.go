package report

import (
	"sync"
	"time"

	"github.com/FACorreiaa/upi-statement-analyzer/pkg/metrics"
)

// Store keeps finished reports in memory so the export links on a report
// page keep working while the user has it open. Nothing is persisted; a
// restart forgets everything, and expired entries are purged by the
// scheduler.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	reports map[string]*Report

	now func() time.Time // swapped in tests
}

// NewStore creates a store whose entries expire ttl after Put.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		reports: make(map[string]*Report),
		now:     time.Now,
	}
}

// Put registers a report under its ID and stamps its expiry.
func (s *Store) Put(rep *Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rep.ExpiresAt = s.now().Add(s.ttl)
	s.reports[rep.ID] = rep
}

// Get returns the report for id. Expired reports are treated as absent
// even before the purge pass removes them.
func (s *Store) Get(id string) (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rep, ok := s.reports[id]
	if !ok || s.now().After(rep.ExpiresAt) {
		return nil, false
	}
	return rep, true
}

// PurgeExpired removes expired reports and returns how many were evicted.
func (s *Store) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, rep := range s.reports {
		if now.After(rep.ExpiresAt) {
			delete(s.reports, id)
			evicted++
		}
	}
	if evicted > 0 {
		metrics.ReportsEvicted.Add(float64(evicted))
	}
	return evicted
}

// Len returns the number of stored reports, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
