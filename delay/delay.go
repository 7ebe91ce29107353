package delay

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/vdf/group"
)

// ErrNoSeeds is returned by EvaluateBatch when called without input.
var ErrNoSeeds = errors.New("delay: no seeds provided")

// Evaluator computes repeated squarings in one group. Create instances
// using [New]. An Evaluator holds no mutable state and may be used from
// several goroutines.
type Evaluator[E group.Element[E]] struct {
	group       group.Group[E]
	log         *zap.Logger
	interval    uint64
	parallelism int
}

// Option configures an Evaluator.
type Option func(*options)

type options struct {
	log         *zap.Logger
	interval    uint64
	parallelism int
}

// WithLogger sets the logger used for progress reports.
// Default: zap.NewNop()
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithProgressInterval logs progress at debug level every n doublings.
// Zero disables progress logging.
// Default: 0
func WithProgressInterval(n uint64) Option {
	return func(o *options) {
		o.interval = n
	}
}

// WithParallelism bounds the number of concurrent evaluations in
// EvaluateBatch. Values below one are ignored.
// Default: runtime.GOMAXPROCS(0)
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// New creates an Evaluator for g.
func New[E group.Element[E]](g group.Group[E], opts ...Option) *Evaluator[E] {
	o := options{
		log:         zap.NewNop(),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Evaluator[E]{
		group:       g,
		log:         o.log,
		interval:    o.interval,
		parallelism: o.parallelism,
	}
}

// Iterate returns x^(2^t). The context is checked before every doubling;
// on cancellation the context error is returned wrapped with the number
// of doublings completed.
func (ev *Evaluator[E]) Iterate(ctx context.Context, x E, t uint64) (E, error) {
	start := time.Now()
	var err error
	for i := uint64(0); i < t; i++ {
		if cerr := ctx.Err(); cerr != nil {
			var zero E
			return zero, fmt.Errorf("delay: cancelled after %d of %d doublings: %w", i, t, cerr)
		}
		if x, err = x.Double(); err != nil {
			var zero E
			return zero, fmt.Errorf("delay: doubling %d: %w", i, err)
		}
		if ev.interval != 0 && (i+1)%ev.interval == 0 {
			ev.log.Debug("delay progress",
				zap.Uint64("done", i+1),
				zap.Uint64("total", t),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	}
	ev.log.Debug("delay finished",
		zap.Uint64("doublings", t),
		zap.Int("bits", ev.group.Bits()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return x, nil
}

// Evaluate hashes seed into the group with folding depth k and returns
// the result squared t times.
func (ev *Evaluator[E]) Evaluate(ctx context.Context, seed []byte, k uint32, t uint64) (E, error) {
	x, err := ev.group.HashToGroup(seed, k)
	if err != nil {
		var zero E
		return zero, fmt.Errorf("delay: hashing seed: %w", err)
	}
	return ev.Iterate(ctx, x, t)
}

// EvaluateBatch runs Evaluate for every seed concurrently and returns the
// outputs in seed order. The first failure cancels the remaining
// evaluations and is returned.
func (ev *Evaluator[E]) EvaluateBatch(ctx context.Context, seeds [][]byte, k uint32, t uint64) ([]E, error) {
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	out := make([]E, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(ev.parallelism)
	for i, seed := range seeds {
		eg.Go(func() error {
			y, err := ev.Evaluate(ctx, seed, k, t)
			if err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
			out[i] = y
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	ev.log.Info("delay batch finished",
		zap.Int("seeds", len(seeds)),
		zap.Uint64("doublings", t),
	)
	return out, nil
}
