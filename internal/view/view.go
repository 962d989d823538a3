// Package view holds the dashboard's display state: a placeholder until the
// transaction history arrives, then a chart of it.
package view

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/logger"
	"github.com/zoomie/transations/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_fetcher.go -package=mocks . Fetcher

// Fetcher retrieves the transaction history once per call.
type Fetcher interface {
	FetchTransactions(ctx context.Context) (*models.APIResponse, error)
}

type Option func(*View)

func WithLogger(l *zap.Logger) Option {
	return func(v *View) {
		v.log = l
	}
}

// View is a stateful container that issues a single fetch when mounted and
// swaps its state from Empty to Chart when the user has data. Results that
// arrive after Unmount are discarded.
type View struct {
	fetcher Fetcher
	log     *zap.Logger

	mu        sync.Mutex
	state     State
	err       error
	mounted   bool
	active    bool
	cancel    context.CancelFunc
	done      chan struct{}
	listeners []func(State)
}

func New(fetcher Fetcher, opts ...Option) *View {
	v := &View{
		fetcher: fetcher,
		log:     logger.Log,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount starts the one fetch this View will ever make and returns a channel
// closed once the result has been handled. Later calls return the same
// channel without fetching again. Mounting after Unmount does nothing.
func (v *View) Mount(ctx context.Context) <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		return v.done
	}
	v.mounted = true
	v.active = true

	ctx, v.cancel = context.WithCancel(ctx)
	go v.fetch(ctx)
	return v.done
}

func (v *View) fetch(ctx context.Context) {
	defer close(v.done)

	resp, err := v.fetcher.FetchTransactions(ctx)

	v.mu.Lock()
	if !v.active {
		v.mu.Unlock()
		v.log.Debug("view unmounted before fetch completed, result dropped")
		return
	}
	if err != nil {
		v.err = err
		v.mu.Unlock()
		v.log.Warn("failed to fetch transactions", zap.Error(err))
		return
	}

	prev := v.state
	v.state = prev.Apply(resp)
	next := v.state
	listeners := append([](func(State))(nil), v.listeners...)
	v.mu.Unlock()

	if next.Kind() != prev.Kind() {
		v.log.Debug("view state changed",
			zap.Stringer("from", prev.Kind()),
			zap.Stringer("to", next.Kind()),
			zap.Int("points", len(next.points)),
		)
		for _, fn := range listeners {
			fn(next)
		}
	}
}

// Unmount tears the View down: an in-flight fetch is cancelled and its result
// will not be applied.
func (v *View) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.active = false
	if v.cancel != nil {
		v.cancel()
	}
	if !v.mounted {
		v.mounted = true
		close(v.done)
	}
}

// Subscribe registers fn to be called after each state transition.
func (v *View) Subscribe(fn func(State)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, fn)
}

func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Err returns the fetch failure, if any. The state stays Empty on failure.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Load mounts a View, waits for its fetch or for ctx to end, unmounts it, and
// returns the resulting state together with any fetch error.
func Load(ctx context.Context, fetcher Fetcher, opts ...Option) (State, error) {
	v := New(fetcher, opts...)
	done := v.Mount(ctx)
	select {
	case <-done:
	case <-ctx.Done():
	}
	v.Unmount()

	if err := v.Err(); err != nil {
		return v.State(), err
	}
	return v.State(), ctx.Err()
}
