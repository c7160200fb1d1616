package overview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/twigs-app/backend/internal/types"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout bounds a single overview computation.
const DefaultTimeout = 10 * time.Second

// Computer computes an overview. *Calculator implements it.
type Computer interface {
	Compute(ctx context.Context, budgetID uuid.UUID, period types.Period) (Overview, error)
}

// Refresher runs at most one computation per budget and period at a time and
// keeps the last successfully computed overview for each of them.
type Refresher struct {
	computer Computer
	timeout  time.Duration
	group    singleflight.Group

	mu          sync.RWMutex
	latest      map[string]Overview
	generations map[uuid.UUID]uint64
}

// NewRefresher returns a Refresher. A timeout <= 0 uses DefaultTimeout.
func NewRefresher(computer Computer, timeout time.Duration) *Refresher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Refresher{
		computer:    computer,
		timeout:     timeout,
		latest:      make(map[string]Overview),
		generations: make(map[uuid.UUID]uint64),
	}
}

func key(budgetID uuid.UUID, period types.Period) string {
	return budgetID.String() + "|" + period.Key()
}

// Refresh computes the overview for the budget and period.
//
// If a computation for the same budget and period is already running, the
// caller waits for its result instead of starting another one. When ctx is
// done before the result is available, Refresh returns an error matching both
// ErrUnavailable and ctx.Err(). The computation itself is not cancelled, its
// result still replaces the last known good overview for all other callers.
func (r *Refresher) Refresh(ctx context.Context, budgetID uuid.UUID, period types.Period) (Overview, error) {
	k := key(budgetID, period)
	logger := log.With().Str("budget", budgetID.String()).Str("period", period.Key()).Logger()

	// Only set for the caller whose call runs the computation
	leader := false

	ch := r.group.DoChan(k, func() (any, error) {
		leader = true
		return r.compute(context.WithoutCancel(ctx), k, budgetID, period)
	})

	select {
	case <-ctx.Done():
		logger.Debug().Msg("stopped waiting for overview refresh")
		return Overview{}, fmt.Errorf("%w: waiting for the overview: %w", ErrUnavailable, ctx.Err())

	case res := <-ch:
		if res.Shared && !leader {
			refreshCoalescedCount.Inc()
			logger.Debug().Msg("overview refresh was coalesced")
		}

		if res.Err != nil {
			return Overview{}, res.Err
		}
		return res.Val.(Overview), nil
	}
}

// compute runs a single computation and stores its result. A panic of the
// computer is returned as an error matching ErrUnavailable.
func (r *Refresher) compute(ctx context.Context, k string, budgetID uuid.UUID, period types.Period) (o any, err error) {
	generation := r.generation(budgetID)

	defer func() {
		if p := recover(); p != nil {
			refreshCount.WithLabelValues("unavailable").Inc()
			log.Error().Str("budget", budgetID.String()).Str("period", period.Key()).Interface("panic", p).Msg("overview computation panicked")
			o, err = Overview{}, fmt.Errorf("%w: computation failed: %v", ErrUnavailable, p)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	result, err := r.computer.Compute(ctx, budgetID, period)
	refreshDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, ErrNotFound):
		refreshCount.WithLabelValues("not_found").Inc()
		r.Invalidate(budgetID)
		return Overview{}, err

	case err != nil:
		refreshCount.WithLabelValues("unavailable").Inc()
		log.Warn().Err(err).Str("budget", budgetID.String()).Str("period", period.Key()).Msg("overview refresh failed")
		return Overview{}, err
	}

	refreshCount.WithLabelValues("success").Inc()
	r.store(k, budgetID, generation, result)
	return result, nil
}

// Latest returns the last successfully computed overview for the budget and period.
func (r *Refresher) Latest(budgetID uuid.UUID, period types.Period) (Overview, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.latest[key(budgetID, period)]
	return o, ok
}

// Invalidate drops all stored overviews of the budget. Computations that are
// in flight while Invalidate is called do not store their result.
func (r *Refresher) Invalidate(budgetID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generations[budgetID]++

	prefix := budgetID.String() + "|"
	for k := range r.latest {
		if strings.HasPrefix(k, prefix) {
			delete(r.latest, k)
		}
	}
}

func (r *Refresher) generation(budgetID uuid.UUID) uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.generations[budgetID]
}

func (r *Refresher) store(k string, budgetID uuid.UUID, generation uint64, o Overview) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generations[budgetID] != generation {
		return
	}

	r.latest[k] = o
}
