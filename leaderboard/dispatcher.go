package leaderboard

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/milk9111/middlechamber/sim"
)

const defaultQueueSize = 16

// Dispatcher hands results to a background worker that writes them to the
// local store and the remote endpoint. Submit never blocks the caller.
type Dispatcher struct {
	store    *Store
	remote   *Remote
	slug     string
	logger   *log.Logger
	timeout  time.Duration
	queue    chan sim.Result
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
	onResult func(sim.Result, error)
}

type Option func(*Dispatcher)

// WithResultHook calls fn on the worker goroutine after each result is handled.
func WithResultHook(fn func(sim.Result, error)) Option {
	return func(d *Dispatcher) { d.onResult = fn }
}

func WithTimeout(t time.Duration) Option {
	return func(d *Dispatcher) {
		if t > 0 {
			d.timeout = t
		}
	}
}

// NewDispatcher starts the worker. store and remote may each be nil.
func NewDispatcher(store *Store, remote *Remote, slug string, logger *log.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Dispatcher{
		store:   store,
		remote:  remote,
		slug:    slug,
		logger:  logger,
		timeout: 10 * time.Second,
		queue:   make(chan sim.Result, defaultQueueSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	go d.run()
	return d
}

var _ sim.ScoreSink = (*Dispatcher)(nil)

// Submit queues r. When the queue is full or the dispatcher is closed the
// result is dropped and logged.
func (d *Dispatcher) Submit(r sim.Result) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("score dropped after close", "score", r.Score)
		return
	}
	select {
	case d.queue <- r:
	default:
		d.logger.Warn("score queue full", "score", r.Score)
	}
}

// Close stops accepting results and waits for queued ones to finish, up to
// the context deadline.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for r := range d.queue {
		err := d.handle(r)
		if d.onResult != nil {
			d.onResult(r, err)
		}
	}
}

func (d *Dispatcher) handle(r sim.Result) (err error) {
	defer func() {
		if p := recover(); p != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(p)
			hub.Flush(2 * time.Second)
			d.logger.Error("score worker panic", "panic", p)
			err = errWorkerPanic
		}
	}()

	if d.store != nil {
		id, serr := d.store.SaveScore(Entry{
			Name:      r.Name,
			UserID:    r.UserID,
			GameSlug:  d.slug,
			Score:     r.Score,
			Completed: r.Completed,
		})
		if serr != nil {
			d.logger.Error("save score", "err", serr)
			err = serr
		} else {
			d.logger.Info("score saved", "id", id, "score", r.Score, "completed", r.Completed)
		}
	}

	if d.remote.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if rerr := d.remote.Submit(ctx, r.UserID, r.Score); rerr != nil {
			d.logger.Warn("remote score", "err", rerr)
			if err == nil {
				err = rerr
			}
		} else {
			d.logger.Info("remote score sent", "score", r.Score)
		}
	} else {
		d.logger.Debug("remote score skipped", "reason", ErrNotConfigured)
	}
	return err
}
