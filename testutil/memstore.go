package testutil

import (
	"context"
	"sync"

	"github.com/hupe1980/rowjoin"
	"github.com/hupe1980/rowjoin/core"
	"github.com/hupe1980/rowjoin/tuid"
)

type storeKey struct {
	entity core.EntityPath
	name   core.ComponentName
}

type storedBatch struct {
	id    tuid.Tuid
	batch *rowjoin.Batch
}

// MemStore is an in-memory rowjoin.Source keeping the latest batch per entity
// and component. Every insert is tagged with a tuid.
type MemStore struct {
	mu      sync.RWMutex
	ids     *tuid.Generator
	batches map[storeKey]storedBatch
	fetches map[storeKey]int
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		ids:     tuid.NewGenerator(),
		batches: make(map[storeKey]storedBatch),
		fetches: make(map[storeKey]int),
	}
}

// Insert stores b for entity, replacing any earlier batch of the same component,
// and returns the id it was tagged with.
func (s *MemStore) Insert(entity core.EntityPath, b *rowjoin.Batch) tuid.Tuid {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.Next()
	s.batches[storeKey{entity, b.Name()}] = storedBatch{id: id, batch: b}
	return id
}

// InsertID returns the id of the batch currently stored under entity and name.
func (s *MemStore) InsertID(entity core.EntityPath, name core.ComponentName) (tuid.Tuid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sb, ok := s.batches[storeKey{entity, name}]
	return sb.id, ok
}

// Fetch implements rowjoin.Source.
func (s *MemStore) Fetch(_ context.Context, entity core.EntityPath, name core.ComponentName) (*rowjoin.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storeKey{entity, name}
	s.fetches[key]++

	sb, ok := s.batches[key]
	if !ok {
		return nil, &rowjoin.ErrComponentNotFound{Entity: entity, Component: name}
	}
	return sb.batch, nil
}

// Fetches returns how often Fetch was called for entity and name.
func (s *MemStore) Fetches(entity core.EntityPath, name core.ComponentName) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetches[storeKey{entity, name}]
}
