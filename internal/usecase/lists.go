package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ListStore is the read-through path to the shared list cache, used by every
// collection that serves full listings. Concurrent misses for the same key
// share one load, and a per-key generation counter stops a slow read from
// writing rows that predate a newer mutation back into the cache: Invalidate
// bumps the generation, and a load only stores its result if the generation
// it started under is still current.
type ListStore struct {
	cache ListCache
	group singleflight.Group

	mutex sync.Mutex
	gen   map[string]uint64
}

func NewListStore(cache ListCache) *ListStore {
	return &ListStore{
		cache: cache,
		gen:   map[string]uint64{},
	}
}

func (s *ListStore) generation(key string) uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.gen[key]
}

func (s *ListStore) unchanged(key string, gen uint64) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.gen[key] == gen
}

// Invalidate drops the cached list for key. The generation bump happens
// before the cache delete so an in-flight load can never undo it.
func (s *ListStore) Invalidate(ctx context.Context, key string) {
	s.mutex.Lock()
	s.gen[key]++
	s.mutex.Unlock()

	s.cache.Invalidate(ctx, key)
}

// fetchList serves a collection listing through the store: cache hit, or a
// deduplicated load with a guarded write-back.
func fetchList[T any](ctx context.Context, store *ListStore, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if raw, ok := store.cache.Get(ctx, key); ok {
		var rows []T
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, nil
		}
	}

	v, err, _ := store.group.Do(key, func() (any, error) {
		gen := store.generation(key)
		rows, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(rows); err == nil && store.unchanged(key, gen) {
			store.cache.Set(ctx, key, raw)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}
