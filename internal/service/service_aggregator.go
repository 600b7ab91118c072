package service

import (
	"context"
	"sync"
	"time"

	"github.com/securedesk/secure-desk/internal/config"
	"github.com/securedesk/secure-desk/internal/logger"
	"github.com/securedesk/secure-desk/internal/store"
	"github.com/securedesk/secure-desk/models"
)

// aggregator is the concrete implementation of [AggregatorService].
//
// When the backend implements [store.Watcher], each item collection gets a
// live change listener and counts are recomputed on push. Otherwise a
// ticker polls the backend at the configured interval. Either way an
// observation only delivers counts that differ from the last delivered
// value, so an unchanged poll never re-signals consumers.
type aggregator struct {
	backend      store.Backend
	pollInterval time.Duration

	logger *logger.Logger
}

const defaultPollInterval = 30 * time.Second

func NewAggregator(backend store.Backend, cfg config.Aggregator, logger *logger.Logger) AggregatorService {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	return &aggregator{
		backend:      backend,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// SnapshotCounts implements [AggregatorService]. An empty userID yields all
// zeros without touching the backend.
func (a *aggregator) SnapshotCounts(ctx context.Context, userID string) (models.ItemCounts, error) {
	var counts models.ItemCounts
	if userID == "" {
		return counts, nil
	}

	for _, collection := range models.ItemCollections {
		n, err := a.backend.Count(ctx, collection, store.Filter{UserID: userID})
		if err != nil {
			return models.ItemCounts{}, err
		}
		counts.Set(collection, n)
	}

	return counts, nil
}

// ObserveCounts implements [AggregatorService].
//
// The returned stop function releases every listener (or the polling
// goroutine) and is safe to call more than once, from any goroutine,
// including from within onChange itself.
func (a *aggregator) ObserveCounts(ctx context.Context, userID string, onChange func(models.ItemCounts)) (func(), error) {
	if onChange == nil {
		return nil, ErrInvalidDataProvided
	}

	// an anonymous session observes a permanently empty vault
	if userID == "" {
		onChange(models.ItemCounts{})
		return func() {}, nil
	}

	obs := &countObservation{onChange: onChange}

	initial, err := a.SnapshotCounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	obs.deliver(initial)

	if watcher, ok := a.backend.(store.Watcher); ok {
		return a.observeWithWatcher(ctx, watcher, userID, obs)
	}
	return a.observeWithPolling(ctx, userID, obs), nil
}

// observeWithWatcher registers one backend listener per item collection and
// folds their stop functions into a single composite teardown. If any
// registration fails, the ones already made are released before returning.
func (a *aggregator) observeWithWatcher(ctx context.Context, watcher store.Watcher, userID string, obs *countObservation) (func(), error) {
	stops := make([]func(), 0, len(models.ItemCollections))

	for _, collection := range models.ItemCollections {
		stop, err := watcher.Watch(ctx, collection, store.Filter{UserID: userID}, func() {
			a.refresh(ctx, userID, obs)
		})
		if err != nil {
			for _, s := range stops {
				s()
			}
			return nil, err
		}
		stops = append(stops, stop)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			obs.stop()
			for _, s := range stops {
				s()
			}
		})
	}, nil
}

// observeWithPolling recomputes the counts on a ticker until stopped.
func (a *aggregator) observeWithPolling(ctx context.Context, userID string, obs *countObservation) func() {
	pollCtx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(a.pollInterval)
		defer t.Stop()

		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				a.refresh(pollCtx, userID, obs)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			obs.stop()
			cancel()
			wg.Wait()
		})
	}
}

// refresh recomputes the snapshot and hands it to the observation. A failed
// recomputation is logged and skipped; the previous counts stand until the
// next signal.
func (a *aggregator) refresh(ctx context.Context, userID string, obs *countObservation) {
	counts, err := a.SnapshotCounts(ctx, userID)
	if err != nil {
		a.logger.Err(err).
			Str("func", "aggregator.refresh").
			Str("user_id", userID).
			Msg("failed to recompute item counts")
		return
	}
	obs.deliver(counts)
}

// countObservation serializes count deliveries for one ObserveCounts call
// and suppresses duplicates.
type countObservation struct {
	mu       sync.Mutex
	stopped  bool
	hasLast  bool
	last     models.ItemCounts
	onChange func(models.ItemCounts)
}

// deliver invokes the callback unless the observation is stopped or the
// counts equal the last delivered value. The callback runs outside the
// lock, so it may call the observation's stop function.
func (o *countObservation) deliver(counts models.ItemCounts) {
	o.mu.Lock()
	if o.stopped || (o.hasLast && o.last == counts) {
		o.mu.Unlock()
		return
	}
	o.last = counts
	o.hasLast = true
	o.mu.Unlock()

	o.onChange(counts)
}

func (o *countObservation) stop() {
	o.mu.Lock()
	o.stopped = true
	o.mu.Unlock()
}
