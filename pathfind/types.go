package pathfind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrInvalidEndpoints indicates a missing, blocked, foreign or coincident
	// start/goal pair.
	ErrInvalidEndpoints = errors.New("pathfind: invalid endpoints")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrUnknownMode is returned by ParseMode for unrecognized names.
	ErrUnknownMode = errors.New("pathfind: unknown mode")
)

// Mode selects the frontier ordering.
type Mode int

const (
	// Dijkstra orders the frontier by g alone.
	Dijkstra Mode = iota
	// AStar orders the frontier by g + h.
	AStar
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Connectivity is the neighbor rule each mode is designed for:
// Dijkstra walks orthogonally, AStar also moves diagonally.
func (m Mode) Connectivity() gridgraph.Connectivity {
	if m == AStar {
		return gridgraph.Conn8
	}
	return gridgraph.Conn4
}

// ParseMode maps "dijkstra", "astar" or "a*" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Outcome reports how a search ended.
type Outcome int

const (
	// NotFound means the frontier emptied before the goal was expanded.
	NotFound Outcome = iota
	// Found means the goal was expanded.
	Found
	// Cancelled means the context was done before the goal was expanded.
	Cancelled
	// BudgetExhausted means StepBudget expansions ran without reaching the goal.
	BudgetExhausted
)

var outcomeNames = [...]string{"not-found", "found", "cancelled", "budget-exhausted"}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if int(o) >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Heuristic estimates the remaining cost from a cell to the goal.
type Heuristic func(from, goal *gridgraph.Cell) float64

// Option configures Search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of a single search.
type Options struct {
	// Mode selects Dijkstra or AStar ordering. Default Dijkstra.
	Mode Mode

	// Ctx is checked once per expansion; a done context yields Cancelled.
	Ctx context.Context

	// OnStep runs once after each expansion, after neighbors were queued.
	OnStep func()

	// StepBudget, if > 0, caps the number of expansions.
	StepBudget int

	// Heuristic used in AStar mode. Default Euclidean.
	Heuristic Heuristic

	// Logger receives a debug record per finished search.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - Mode Dijkstra
//   - context.Background()
//   - a no-op OnStep
//   - no step budget
//   - the Euclidean heuristic
//   - slog.Default() tagged with component=pathfind
func DefaultOptions() Options {
	return Options{
		Mode:      Dijkstra,
		Ctx:       context.Background(),
		OnStep:    func() {},
		Heuristic: Euclidean,
		Logger:    slog.Default().With(slog.String("component", "pathfind")),
	}
}

// WithMode selects the frontier ordering.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Dijkstra && m != AStar {
			o.err = fmt.Errorf("%w: mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs the per-expansion hook. Nil is ignored.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithStepBudget caps the number of expansions; 0 disables the cap.
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: step budget %d", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithHeuristic replaces the AStar estimate.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is what Search hands back.
//
// CameFrom maps every discovered cell to its predecessor; the start has no
// entry. It is populated for every Outcome so partial progress can be shown.
// Cost is the hop count of the route when Outcome is Found, otherwise -1.
type Result struct {
	Outcome  Outcome
	CameFrom map[*gridgraph.Cell]*gridgraph.Cell
	Cost     int
	Expanded int
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return r != nil && r.Outcome == Found }
