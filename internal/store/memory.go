package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/securedesk/secure-desk/models"
)

// memoryBackend is an in-process [Backend] with optional JSON-file
// persistence. It is the embedded "local vault" engine and the only
// backend with native change notification, so it also implements
// [Watcher].
type memoryBackend struct {
	path     string
	inMemory bool

	mu          sync.RWMutex
	collections map[string]map[string]models.Record

	watchMu     sync.Mutex
	nextWatchID int64
	watchers    map[int64]memoryWatch
}

type memoryWatch struct {
	collection string
	filter     Filter
	onChange   func()
}

// memoryPersistedState is the on-disk JSON shape of the backend.
type memoryPersistedState struct {
	Collections map[string]map[string]models.Record `json:"collections"`
}

// NewMemoryBackend constructs a memory backend. When path is empty or
// ":memory:" the store is purely in-process; otherwise state is loaded
// from and persisted to the given JSON file on every mutation.
func NewMemoryBackend(path string) (Backend, error) {
	inMemory := path == "" || path == ":memory:"
	b := &memoryBackend{
		path:        path,
		inMemory:    inMemory,
		collections: make(map[string]map[string]models.Record),
		watchers:    make(map[int64]memoryWatch),
	}
	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *memoryBackend) load() error {
	if b.inMemory {
		return nil
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read local vault file: %w", ErrBackendUnavailable, err)
	}

	var st memoryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode local vault file: %w", ErrBackendUnavailable, err)
	}

	if st.Collections != nil {
		b.collections = st.Collections
	}

	return nil
}

// persist writes the whole state to disk. Callers must hold the write lock.
func (b *memoryBackend) persist() error {
	if b.inMemory {
		return nil
	}

	dir := filepath.Dir(b.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create local vault dir: %w", ErrBackendUnavailable, err)
		}
	}

	data, err := json.Marshal(memoryPersistedState{Collections: b.collections})
	if err != nil {
		return fmt.Errorf("%w: encode local vault state: %w", ErrBackendUnavailable, err)
	}

	if err := os.WriteFile(b.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write local vault file: %w", ErrBackendUnavailable, err)
	}

	return nil
}

func (b *memoryBackend) collection(name string) map[string]models.Record {
	c, ok := b.collections[name]
	if !ok {
		c = make(map[string]models.Record)
		b.collections[name] = c
	}
	return c
}

// Insert implements [Backend].
func (b *memoryBackend) Insert(ctx context.Context, collection string, record models.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	b.collection(collection)[record.ID] = record.Clone()
	err := b.persist()
	b.mu.Unlock()
	if err != nil {
		return err
	}

	b.notify(collection, record.UserID)
	return nil
}

// Find implements [Backend]. Returned records are deep copies; callers can
// mutate them freely.
func (b *memoryBackend) Find(ctx context.Context, collection string, filter Filter) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	results := make([]models.Record, 0)
	for _, r := range b.collections[collection] {
		if filter.Matches(r) {
			results = append(results, r.Clone())
		}
	}
	return results, nil
}

// UpdateByID implements [Backend]. The record's identity columns are
// preserved; only the field map and updatedAt change.
func (b *memoryBackend) UpdateByID(ctx context.Context, collection, id string, fields map[string]string, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	current, ok := b.collections[collection][id]
	if !ok {
		b.mu.Unlock()
		return ErrRecordNotFound
	}

	updated := current.Clone()
	updated.Fields = make(map[string]string, len(fields))
	for k, v := range fields {
		updated.Fields[k] = v
	}
	updated.UpdatedAt = updatedAt
	b.collections[collection][id] = updated

	err := b.persist()
	userID := updated.UserID
	b.mu.Unlock()
	if err != nil {
		return err
	}

	b.notify(collection, userID)
	return nil
}

// Delete implements [Backend].
func (b *memoryBackend) Delete(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	b.mu.Lock()
	var deleted int64
	owners := make(map[string]struct{})
	for id, r := range b.collections[collection] {
		if filter.Matches(r) {
			delete(b.collections[collection], id)
			owners[r.UserID] = struct{}{}
			deleted++
		}
	}

	var err error
	if deleted > 0 {
		err = b.persist()
	}
	b.mu.Unlock()
	if err != nil {
		return 0, err
	}

	for owner := range owners {
		b.notify(collection, owner)
	}
	return deleted, nil
}

// Count implements [Backend].
func (b *memoryBackend) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	var n int64
	for _, r := range b.collections[collection] {
		if filter.Matches(r) {
			n++
		}
	}
	return n, nil
}

// Watch implements [Watcher]. The returned stop function is idempotent and
// safe to call from any goroutine.
func (b *memoryBackend) Watch(ctx context.Context, collection string, filter Filter, onChange func()) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.watchMu.Lock()
	b.nextWatchID++
	id := b.nextWatchID
	b.watchers[id] = memoryWatch{collection: collection, filter: filter, onChange: onChange}
	b.watchMu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			b.watchMu.Lock()
			delete(b.watchers, id)
			b.watchMu.Unlock()
		})
	}
	return stop, nil
}

// notify fires the callbacks of all watchers whose filter could match a
// record of the given collection and owner. Callbacks run synchronously on
// the mutating goroutine; they are expected to be cheap (typically a
// channel send or a re-count scheduling).
func (b *memoryBackend) notify(collection, userID string) {
	b.watchMu.Lock()
	callbacks := make([]func(), 0, len(b.watchers))
	for _, w := range b.watchers {
		if w.collection != collection {
			continue
		}
		if w.filter.UserID != "" && userID != "" && w.filter.UserID != userID {
			continue
		}
		callbacks = append(callbacks, w.onChange)
	}
	b.watchMu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}
