package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khemprogrammer/AwasarHub/internal/model"
	"github.com/khemprogrammer/AwasarHub/internal/repository"
)

// CounterWorker listens for PostgreSQL NOTIFY on the 'engagement_changes'
// channel and batch-refreshes the cached engagement counters. A burst of
// likes on one item within the batch window results in a single recount.
type CounterWorker struct {
	pool    *pgxpool.Pool
	repo    *repository.EngagementRepo
	cache   *CacheService
	batchMs time.Duration

	mu      sync.Mutex
	pending map[model.ContentRef]struct{} // refs waiting for a recount
}

// NewCounterWorker creates a counter refresh worker.
func NewCounterWorker(pool *pgxpool.Pool, repo *repository.EngagementRepo, cache *CacheService) *CounterWorker {
	return &CounterWorker{
		pool:    pool,
		repo:    repo,
		cache:   cache,
		batchMs: 5 * time.Second,
		pending: make(map[model.ContentRef]struct{}),
	}
}

// Start begins listening for engagement_changes notifications and processing
// batches. Blocks until the context is cancelled.
func (w *CounterWorker) Start(ctx context.Context) {
	log.Printf("counter-worker: starting (batch window=%s)", w.batchMs)

	for {
		if err := w.listenLoop(ctx); err != nil {
			if ctx.Err() != nil {
				log.Println("counter-worker: stopping (context cancelled)")
				return
			}
			log.Printf("counter-worker: listen error, reconnecting in 5s: %v", err)
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				log.Println("counter-worker: stopping (context cancelled)")
				return
			}
		}
	}
}

// listenLoop acquires a dedicated connection, LISTENs on engagement_changes,
// and collects notifications into the pending set.
func (w *CounterWorker) listenLoop(ctx context.Context) error {
	conn, err := w.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "LISTEN engagement_changes")
	if err != nil {
		return err
	}
	log.Println("counter-worker: listening on engagement_changes")

	flushCtx, flushCancel := context.WithCancel(ctx)
	defer flushCancel()
	go w.flushLoop(flushCtx)

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		ref, ok := parseRefPayload(notification.Payload)
		if !ok {
			continue
		}

		w.mu.Lock()
		w.pending[ref] = struct{}{}
		w.mu.Unlock()
	}
}

// flushLoop periodically drains the pending set and refreshes counters.
func (w *CounterWorker) flushLoop(ctx context.Context) {
	ticker := time.NewTicker(w.batchMs)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.flush(ctx)
		case <-ctx.Done():
			// Final flush before exit
			w.flush(context.Background())
			return
		}
	}
}

// flush drains the pending set and recounts each ref in one batched query.
func (w *CounterWorker) flush(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}

	// Swap out the pending map
	batch := w.pending
	w.pending = make(map[model.ContentRef]struct{})
	w.mu.Unlock()

	refs := make([]model.ContentRef, 0, len(batch))
	for ref := range batch {
		refs = append(refs, ref)
	}

	counts, err := w.repo.CountsFor(ctx, refs)
	if err != nil {
		log.Printf("counter-worker: recount error: %v", err)
		return
	}

	refreshed := 0
	for _, ref := range refs {
		if err := w.cache.SetCounts(ctx, ref, counts[ref]); err != nil {
			log.Printf("counter-worker: cache set error for %s:%d: %v", ref.Type, ref.ID, err)
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		log.Printf("counter-worker: batch complete, %d refs refreshed (from %d notifications)",
			refreshed, len(batch))
	}
}

// parseRefPayload decodes the "type:id" notification payload.
func parseRefPayload(payload string) (model.ContentRef, bool) {
	typeTag, idStr, found := strings.Cut(payload, ":")
	if !found || typeTag == "" {
		return model.ContentRef{}, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return model.ContentRef{}, false
	}
	return model.ContentRef{Type: typeTag, ID: id}, true
}
