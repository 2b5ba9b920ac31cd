package pathfind

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search runs a best-first search from start to goal over the neighbor lists
// currently stored on g. Call g.RefreshNeighbors with the connectivity the
// mode expects before searching; Search does not refresh them itself.
//
// Preconditions and validation (in order):
//  1. No Option recorded a violation (ErrOptionViolation).
//  2. g is non-nil (ErrNilGrid).
//  3. start and goal are non-nil, owned by g, not barriers and distinct
//     (ErrInvalidEndpoints).
//
// Cells are re-marked as the search proceeds (Open when queued, Closed once
// expanded). The start keeps its role. The goal is marked Open when queued;
// the caller restores endpoint roles afterwards.
func Search(g *gridgraph.Grid, start, goal *gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := validateEndpoints(g, start, goal); err != nil {
		return nil, err
	}

	// 3) Run
	r := newRunner(g, start, goal, cfg)
	r.init()
	outcome := r.process()

	res := &Result{
		Outcome:  outcome,
		CameFrom: r.cameFrom,
		Cost:     -1,
		Expanded: r.expanded,
	}
	if outcome == Found {
		res.Cost = int(r.g[goal])
	}
	cfg.Logger.Debug("search finished",
		slog.String("mode", cfg.Mode.String()),
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.String("outcome", outcome.String()),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", r.expanded),
	)

	return res, nil
}

func validateEndpoints(g *gridgraph.Grid, start, goal *gridgraph.Cell) error {
	switch {
	case start == nil || goal == nil:
		return fmt.Errorf("%w: missing start or goal", ErrInvalidEndpoints)
	case !g.Owns(start) || !g.Owns(goal):
		return fmt.Errorf("%w: cell not on this grid", ErrInvalidEndpoints)
	case start == goal:
		return fmt.Errorf("%w: start equals goal %s", ErrInvalidEndpoints, start)
	case start.IsBarrier() || goal.IsBarrier():
		return fmt.Errorf("%w: endpoint is a barrier", ErrInvalidEndpoints)
	}
	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	grid     *gridgraph.Grid
	start    *gridgraph.Cell
	goal     *gridgraph.Cell
	options  Options
	g        map[*gridgraph.Cell]float64        // best-known hops from start; absent = +Inf
	cameFrom map[*gridgraph.Cell]*gridgraph.Cell // predecessor on the best-known route
	closed   map[*gridgraph.Cell]bool           // expanded cells
	open     *frontier
	expanded int
}

func newRunner(g *gridgraph.Grid, start, goal *gridgraph.Cell, cfg Options) *runner {
	n := g.Rows * g.Rows
	return &runner{
		grid:     g,
		start:    start,
		goal:     goal,
		options:  cfg,
		g:        make(map[*gridgraph.Cell]float64, n),
		cameFrom: make(map[*gridgraph.Cell]*gridgraph.Cell, n),
		closed:   make(map[*gridgraph.Cell]bool, n),
		open:     newFrontier(n),
	}
}

// init seeds the frontier with the start at g = 0.
func (r *runner) init() {
	r.g[r.start] = 0
	r.open.Push(r.start, r.estimate(r.start))
}

// estimate is h for AStar and 0 for Dijkstra.
func (r *runner) estimate(c *gridgraph.Cell) float64 {
	if r.options.Mode == AStar {
		return r.options.Heuristic(c, r.goal)
	}
	return 0
}

func (r *runner) gScore(c *gridgraph.Cell) float64 {
	if v, ok := r.g[c]; ok {
		return v
	}
	return math.Inf(1)
}

// process is the main loop. Each iteration:
//  1. checks the context and the step budget,
//  2. pops the best frontier entry and closes it,
//  3. stops if it is the goal,
//  4. relaxes its neighbors, runs OnStep and marks it Closed.
func (r *runner) process() Outcome {
	ctx := r.options.Ctx
	for r.open.Len() > 0 {
		select {
		case <-ctx.Done():
			return Cancelled
		default:
		}
		if r.options.StepBudget > 0 && r.expanded >= r.options.StepBudget {
			return BudgetExhausted
		}

		current := r.open.Pop()
		r.closed[current] = true
		r.expanded++
		if current == r.goal {
			return Found
		}

		r.relax(current)
		r.options.OnStep()
		if current != r.start {
			current.MarkClosed()
		}
	}

	return NotFound
}

// relax offers current's neighbors a route through current at unit cost.
// Expanded neighbors are skipped. A strictly better g updates the
// predecessor; a neighbor not yet queued is pushed with the new key and
// marked Open. A queued neighbor keeps the key it was pushed with.
func (r *runner) relax(current *gridgraph.Cell) {
	tentative := r.g[current] + 1
	for _, n := range current.Neighbors() {
		if r.closed[n] {
			continue
		}
		if tentative >= r.gScore(n) {
			continue
		}
		r.cameFrom[n] = current
		r.g[n] = tentative
		if r.open.Contains(n) {
			continue
		}
		r.open.Push(n, tentative+r.estimate(n))
		n.MarkOpen()
	}
}
