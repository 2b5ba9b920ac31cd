// Package session drives the user-facing flows over a painted grid: a
// single start→end search, and the chained start→end1→end2 run in which the
// second leg starts where the first one stopped.
//
// A Session owns one grid and serializes runs on it. Every run gets a uuid,
// is logged with log/slog, and returns a Report describing each leg.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Sentinel errors.
var (
	// ErrNilGrid is returned by New for a nil grid.
	ErrNilGrid = errors.New("session: grid is nil")

	// ErrMissingEndpoints is returned when a flow runs before its endpoints are placed.
	ErrMissingEndpoints = errors.New("session: endpoints not placed")
)

// Option configures a Session.
type Option func(*Options)

// Options holds the hooks and limits applied to every run.
type Options struct {
	// OnStep runs after each expansion and after each painted path cell.
	OnStep func()
	// StepBudget caps expansions per leg; 0 disables the cap.
	StepBudget int
	// Logger receives run and leg records.
	Logger *slog.Logger
}

// WithOnStep installs the per-step hook, typically a render.Recorder or
// render.Terminal.
func WithOnStep(fn func()) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithStepBudget caps the expansions of each leg. Negative values are treated as 0.
func WithStepBudget(n int) Option {
	return func(o *Options) { o.StepBudget = max(n, 0) }
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Leg is one search between two endpoints.
// Path is set only when Outcome is Found and holds From..To inclusive.
type Leg struct {
	From     *gridgraph.Cell
	To       *gridgraph.Cell
	Outcome  pathfind.Outcome
	Cost     int
	Expanded int
	Path     []*gridgraph.Cell
}

// Report describes a finished run.
type Report struct {
	ID      uuid.UUID
	Mode    pathfind.Mode
	Success bool
	Legs    []Leg
}

// Cost is the summed hop count of all legs, or -1 when the run failed.
func (r *Report) Cost() int {
	if !r.Success {
		return -1
	}
	total := 0
	for _, l := range r.Legs {
		total += l.Cost
	}
	return total
}

// Session runs flows on a single grid, one at a time.
type Session struct {
	mu      sync.Mutex
	grid    *gridgraph.Grid
	painter pathfind.Painter
	opts    Options
	log     *slog.Logger
}

// New binds a Session to g.
func New(g *gridgraph.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := Options{
		OnStep: func() {},
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.OnStep == nil {
		cfg.OnStep = func() {}
	}

	return &Session{
		grid: g,
		opts: cfg,
		log:  cfg.Logger.With(slog.String("component", "session")),
	}, nil
}

// Grid returns the grid the session runs on.
func (s *Session) Grid() *gridgraph.Grid { return s.grid }

// RunSingle searches from the start to the first placed end.
// Previous search marks are cleared, neighbors are rebuilt for the mode's
// connectivity, the route is painted when found and endpoint roles are
// restored before returning.
func (s *Session) RunSingle(ctx context.Context, mode pathfind.Mode) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, ends := s.grid.Start(), s.grid.Ends()
	if start == nil || len(ends) == 0 {
		return nil, fmt.Errorf("%w: need a start and an end", ErrMissingEndpoints)
	}
	end := ends[0]

	rep := s.begin(mode, "single")
	leg, res, err := s.search(ctx, rep, start, end)
	if err != nil {
		return nil, err
	}
	if res.Found() {
		leg.Path = s.painter.Reconstruct(res.CameFrom, end, s.opts.OnStep)
	}
	s.grid.RestoreEndpoints()

	rep.Legs = []Leg{leg}
	rep.Success = res.Found()
	s.finish(rep)

	return rep, nil
}

// RunChained searches start→end1 and, only if that leg is found,
// end1→end2. The second leg is painted before the first. The run succeeds
// only when both legs are found.
func (s *Session) RunChained(ctx context.Context, mode pathfind.Mode) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, mid, end := s.grid.Start(), s.grid.End(0), s.grid.End(1)
	if start == nil || mid == nil || end == nil {
		return nil, fmt.Errorf("%w: need a start and two ends", ErrMissingEndpoints)
	}

	rep := s.begin(mode, "chained")
	first, res1, err := s.search(ctx, rep, start, mid)
	if err != nil {
		return nil, err
	}
	rep.Legs = append(rep.Legs, first)

	if res1.Found() {
		second, res2, err := s.search(ctx, rep, mid, end)
		if err != nil {
			return nil, err
		}
		// the second leg is painted first; the Painter counter advances even
		// when there is nothing to paint
		route := s.painter.Reconstruct(res2.CameFrom, end, s.opts.OnStep)
		if res2.Found() {
			second.Path = route
		}
		rep.Legs[0].Path = s.painter.Reconstruct(res1.CameFrom, mid, s.opts.OnStep)
		rep.Legs = append(rep.Legs, second)
		rep.Success = res2.Found()
	}
	s.grid.RestoreEndpoints()
	s.finish(rep)

	return rep, nil
}

// begin clears old marks, rebuilds neighbors and logs reachability.
func (s *Session) begin(mode pathfind.Mode, flow string) *Report {
	rep := &Report{ID: uuid.New(), Mode: mode}

	s.grid.ResetSearchMarks()
	s.grid.RefreshNeighbors(mode.Connectivity())
	s.log.Info("run started",
		slog.String("run_id", rep.ID.String()),
		slog.String("flow", flow),
		slog.String("mode", mode.String()),
		slog.Int("rows", s.grid.Rows),
	)
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		s.log.Debug("grid regions",
			slog.String("run_id", rep.ID.String()),
			slog.Int("regions", len(s.grid.Regions())),
		)
	}

	return rep
}

func (s *Session) search(ctx context.Context, rep *Report, from, to *gridgraph.Cell) (Leg, *pathfind.Result, error) {
	res, err := pathfind.Search(s.grid, from, to,
		pathfind.WithMode(rep.Mode),
		pathfind.WithContext(ctx),
		pathfind.WithOnStep(s.opts.OnStep),
		pathfind.WithStepBudget(s.opts.StepBudget),
		pathfind.WithLogger(s.opts.Logger),
	)
	if err != nil {
		return Leg{}, nil, fmt.Errorf("session: leg %s→%s: %w", from, to, err)
	}

	leg := Leg{From: from, To: to, Outcome: res.Outcome, Cost: res.Cost, Expanded: res.Expanded}
	s.log.Info("leg finished",
		slog.String("run_id", rep.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Bool("same_region", s.grid.SameRegion(from, to)),
	)

	return leg, res, nil
}

func (s *Session) finish(rep *Report) {
	if rep.Success {
		s.log.Info("mission success",
			slog.String("run_id", rep.ID.String()),
			slog.Int("legs", len(rep.Legs)),
			slog.Int("cost", rep.Cost()),
		)
		return
	}
	s.log.Warn("mission failure",
		slog.String("run_id", rep.ID.String()),
		slog.Int("legs", len(rep.Legs)),
	)
}
