// Package history tracks per-route access frequency for preload
// prioritization.
package history

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbjohnson/clock"
	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/routeflow/internal/core/ports"
	"go.trai.ch/zerr"
)

// StorageKey is the durable storage key the access map is persisted under.
const StorageKey = "routeflow.access_history"

// Store persists per-route visit counts and timestamps. All methods are safe
// for concurrent use.
type Store struct {
	mu      sync.Mutex
	records map[string]domain.AccessRecord

	kv  ports.KeyValueStore
	clk clock.Clock
	log ports.Logger
}

// NewStore creates a Store backed by the given key-value storage. A missing
// or corrupt persisted blob degrades to an empty history; it is never fatal.
func NewStore(kv ports.KeyValueStore, clk clock.Clock, log ports.Logger) *Store {
	s := &Store{
		records: make(map[string]domain.AccessRecord),
		kv:      kv,
		clk:     clk,
		log:     log,
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.log.Warn(fmt.Sprintf("access history unreadable, starting empty: %v", err))
		return
	}
	if !ok || len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		s.log.Warn(fmt.Sprintf("access history corrupt, starting empty: %v", err))
		s.records = make(map[string]domain.AccessRecord)
	}
}

// RecordAccess increments the visit count for the route path, stamps the
// access time, and persists the full map.
func (s *Store) RecordAccess(routePath string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[routePath]
	rec.Count++
	rec.LastAccess = s.clk.Now()
	s.records[routePath] = rec

	s.persistLocked()
}

// Priority returns the preload priority for the route path: visit count
// decayed by recency. Unknown routes have priority 0.
func (s *Store) Priority(routePath string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.records[routePath].PriorityAt(s.clk.Now())
}

// Record returns the access record for the route path and whether one
// exists.
func (s *Store) Record(routePath string) (domain.AccessRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[routePath]
	return rec, ok
}

// Snapshot returns a copy of all access records.
func (s *Store) Snapshot() map[string]domain.AccessRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.AccessRecord, len(s.records))
	for k, v := range s.records {
		out[k] = v
	}
	return out
}

// Clear drops every record, in memory and in durable storage.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]domain.AccessRecord)
	if err := s.kv.Delete(StorageKey); err != nil {
		return zerr.Wrap(err, "failed to clear access history")
	}
	return nil
}

// persistLocked writes the full map to durable storage. Write failures are
// logged and swallowed; history is an optimization, not application state.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.log.Warn(fmt.Sprintf("failed to encode access history: %v", err))
		return
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		s.log.Warn(fmt.Sprintf("failed to persist access history: %v", err))
	}
}
