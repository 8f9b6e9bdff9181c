package sorting

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/alitto/pond/v2"
	errs "github.com/amp-labs/amp-ordering/errors"
	"github.com/amp-labs/amp-ordering/ordering"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer produces spans for instrumented sort operations.
var tracer = otel.Tracer("github.com/amp-labs/amp-ordering/sorting") //nolint:gochecknoglobals

const defaultStrategyName = "unnamed"

type sorterOptions struct {
	name    string
	log     *slog.Logger
	workers int
}

// Option configures a Sorter.
type Option func(*sorterOptions)

// WithName sets the strategy name used in metric labels, span attributes,
// and log records. Defaults to "unnamed", or "natural" when the Sorter was
// created with a nil strategy.
func WithName(name string) Option {
	return func(o *sorterOptions) {
		o.name = name
	}
}

// WithLogger sets the logger used to report failed comparisons at Debug
// level. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(o *sorterOptions) {
		o.log = log
	}
}

// WithWorkers caps the number of sequences SortMany sorts concurrently.
// Defaults to GOMAXPROCS.
func WithWorkers(workers int) Option {
	return func(o *sorterOptions) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// Sorter binds a strategy to instrumentation: every sort it runs is traced,
// timed, counted, and, on comparison failure, logged with the offending
// pair. A Sorter is stateless apart from its configuration and is safe to
// use concurrently on distinct sequences.
type Sorter[T any] struct {
	strategy ordering.Strategy[T]
	name     string
	log      *slog.Logger
	workers  int
}

// New creates a Sorter around the given strategy. A nil strategy resolves
// to the element type's natural ordering at sort time, exactly as in Sort.
func New[T any](s ordering.Strategy[T], opts ...Option) *Sorter[T] {
	options := sorterOptions{
		name:    defaultStrategyName,
		log:     slog.Default(),
		workers: runtime.GOMAXPROCS(0),
	}

	if s == nil {
		options.name = "natural"
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Sorter[T]{
		strategy: s,
		name:     options.name,
		log:      options.log,
		workers:  options.workers,
	}
}

// Sort stable-sorts xs in place. See SortCtx.
func (s *Sorter[T]) Sort(xs []T) error {
	return s.SortCtx(context.Background(), xs)
}

// SortCtx stable-sorts xs in place with the Sorter's strategy, recording a
// span, duration and outcome metrics, and a Debug log entry for any failed
// comparison. The context carries only trace propagation; sorting is a
// bounded synchronous computation and is not cancelable.
func (s *Sorter[T]) SortCtx(ctx context.Context, xs []T) error {
	_, span := tracer.Start(ctx, "sorting.Sort", trace.WithAttributes(
		attribute.String("strategy", s.name),
		attribute.Int("elements", len(xs)),
	))
	defer span.End()

	start := time.Now()
	err := Sort(xs, s.strategy)

	sortDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	sortElements.WithLabelValues(s.name).Add(float64(len(xs)))
	sortCounter.WithLabelValues(s.name, outcome(err)).Inc()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logFailure(ctx, err)

		return err
	}

	return nil
}

// Find binary-searches xs with the Sorter's strategy. The precondition of
// Find applies: xs must already be ordered consistently with the strategy.
func (s *Sorter[T]) Find(xs []T, target T) (int, bool, error) {
	return Find(xs, target, s.strategy)
}

// SortMany stable-sorts each sequence in place, running up to the
// configured number of workers in parallel. Distinct sequences are safe to
// sort concurrently because strategies hold no mutable state; the sequences
// must not share backing storage. The first error from any sequence is
// returned after all workers finish.
func (s *Sorter[T]) SortMany(ctx context.Context, seqs ...[]T) error {
	ctx, span := tracer.Start(ctx, "sorting.SortMany", trace.WithAttributes(
		attribute.String("strategy", s.name),
		attribute.Int("sequences", len(seqs)),
	))
	defer span.End()

	pool := pond.NewPool(s.workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for _, xs := range seqs {
		group.SubmitErr(func() error {
			return s.SortCtx(ctx, xs)
		})
	}

	if err := group.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}

// logFailure reports a failed comparison with the pair that caused it.
func (s *Sorter[T]) logFailure(ctx context.Context, err error) {
	var cmpErr *errs.ComparisonError
	if errors.As(err, &cmpErr) {
		s.log.DebugContext(ctx, "comparison failed",
			"strategy", s.name,
			"left", cmpErr.Left,
			"right", cmpErr.Right,
			"error", cmpErr.Err)

		return
	}

	s.log.DebugContext(ctx, "sort failed", "strategy", s.name, "error", err)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
