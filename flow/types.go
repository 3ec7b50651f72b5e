package flow

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/go-graphflow/graphflow/core"
)

// Sentinel errors shared by all solvers.
var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrSameSourceSink is returned when source and sink are the same vertex.
	ErrSameSourceSink = errors.New("flow: source and sink are the same vertex")

	// ErrMultigraphUnsupported is returned for graphs with parallel edges.
	ErrMultigraphUnsupported = errors.New("flow: multigraphs not supported")

	// ErrUnbounded is returned when an infinite-capacity s-t path makes the
	// flow value unbounded above.
	ErrUnbounded = errors.New("flow: infinite capacity path, flow unbounded above")

	// ErrNegativeRelabelFreq is returned for a negative GlobalRelabelFreq.
	ErrNegativeRelabelFreq = errors.New("flow: global relabel frequency must be nonnegative")

	// ErrCutoffWithMinCut is returned when a cutoff is combined with a
	// minimum cut computation; the cut is undefined for a truncated flow.
	ErrCutoffWithMinCut = errors.New("flow: cutoff not allowed with minimum cut")

	// ErrEmptyGraph is returned by GomoryHuTree for a graph without vertices.
	ErrEmptyGraph = errors.New("flow: empty graph")

	// ErrDirectedUnsupported is returned by GomoryHuTree for directed input.
	ErrDirectedUnsupported = errors.New("flow: directed graphs not supported")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// Func is the shared solver signature. PreflowPush and EdmondsKarp implement
// it; wrappers such as MaximumFlow and GomoryHuTree accept any Func.
type Func func(g *core.Graph, source, sink string, opts Options) (*ResidualNetwork, error)

// Options configures all max-flow algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines. Defaults to context.Background().
	Ctx context.Context

	// Epsilon treats capacities and residuals ≤ Epsilon as zero (default 1e-9).
	Epsilon float64

	// Logger receives debug events from the solvers (heuristic triggers,
	// augmentations). Defaults to a no-op logger.
	Logger zerolog.Logger

	// GlobalRelabelFreq is the relative frequency of the global relabeling
	// heuristic in PreflowPush. Zero disables the heuristic; negative values
	// are rejected with ErrNegativeRelabelFreq. Default 1.
	GlobalRelabelFreq float64

	// ValueOnly stops PreflowPush after the maximum preflow: the flow value
	// is exact, but the arc flows do not form a feasible flow.
	ValueOnly bool

	// Cutoff stops EdmondsKarp once the flow value reaches this bound.
	// Zero or +Inf means no cutoff. Other solvers ignore it; minimum cut
	// computations reject it.
	Cutoff float64

	// Residual, when non-nil, is reused instead of rebuilding the residual
	// network. It must have been built from the same graph. Solvers reset
	// all flow state on entry.
	Residual *ResidualNetwork

	// Func selects the solver used by the MaximumFlow/MinimumCut wrappers
	// and GomoryHuTree. Nil means PreflowPush.
	Func Func
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Epsilon:           1e-9,
		Logger:            zerolog.Nop(),
		GlobalRelabelFreq: 1,
		Cutoff:            math.Inf(1),
	}
}

// normalize fills zero-valued fields so a literal Options{} behaves like
// DefaultOptions().
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
	if o.Cutoff == 0 {
		o.Cutoff = math.Inf(1)
	}
}

// hasCutoff reports whether a finite cutoff was requested.
func (o Options) hasCutoff() bool {
	return o.Cutoff != 0 && !math.IsInf(o.Cutoff, 1)
}
