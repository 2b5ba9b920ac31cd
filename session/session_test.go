package session_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/session"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// SessionSuite exercises the single and chained flows.
type SessionSuite struct {
	suite.Suite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) newSession(lines []string, opts ...session.Option) *session.Session {
	g, err := gridgraph.FromLayout(lines)
	require.NoError(s.T(), err)
	sess, err := session.New(g, append([]session.Option{session.WithLogger(quiet)}, opts...)...)
	require.NoError(s.T(), err)
	return sess
}

// TestSingleFound checks cost, path shape, hook count and restored endpoints.
func (s *SessionSuite) TestSingleFound() {
	steps := 0
	sess := s.newSession([]string{
		"S....",
		".....",
		".....",
		".....",
		"....E",
	}, session.WithOnStep(func() { steps++ }))

	rep, err := sess.RunSingle(context.Background(), pathfind.Dijkstra)
	require.NoError(s.T(), err)
	s.True(rep.Success)
	s.NotEqual(uuid.Nil, rep.ID)
	s.Require().Len(rep.Legs, 1)

	leg := rep.Legs[0]
	s.Equal(pathfind.Found, leg.Outcome)
	s.Equal(8, leg.Cost)
	s.Equal(8, rep.Cost())
	s.Len(leg.Path, 9)
	s.Same(sess.Grid().Start(), leg.Path[0])
	s.Same(sess.Grid().End(0), leg.Path[8])
	// one hook per expansion except the goal, plus one per painted cell
	s.Equal(leg.Expanded-1+leg.Cost, steps)

	s.Equal(gridgraph.Start, sess.Grid().Start().Role())
	s.Equal(gridgraph.End, sess.Grid().End(0).Role())
	mid, _ := sess.Grid().CellAt(4, 0)
	s.Equal(gridgraph.Path, mid.Role())
}

// TestSingleEnclosed reports a failed run without a path.
func (s *SessionSuite) TestSingleEnclosed() {
	sess := s.newSession([]string{
		"S....",
		".....",
		".....",
		"...##",
		"...#E",
	})
	rep, err := sess.RunSingle(context.Background(), pathfind.AStar)
	require.NoError(s.T(), err)
	s.False(rep.Success)
	s.Equal(-1, rep.Cost())
	s.Equal(pathfind.NotFound, rep.Legs[0].Outcome)
	s.Nil(rep.Legs[0].Path)
}

// TestChainedCostIsSumOfLegs compares each leg with the hop oracle.
//
//	S . . . .
//	. # # # .
//	. # E # .
//	. # . # .
//	. . . # E
func (s *SessionSuite) TestChainedCostIsSumOfLegs() {
	lines := []string{
		"S....",
		".###.",
		".#E#.",
		".#.#.",
		"...#E",
	}
	sess := s.newSession(lines)
	g := sess.Grid()

	rep, err := sess.RunChained(context.Background(), pathfind.Dijkstra)
	require.NoError(s.T(), err)
	s.Require().True(rep.Success)
	s.Require().Len(rep.Legs, 2)

	toMid, ok := g.HopDistance(g.Start(), g.End(0))
	s.Require().True(ok)
	toEnd, ok := g.HopDistance(g.End(0), g.End(1))
	s.Require().True(ok)
	s.Equal(8, toMid)
	s.Equal(16, toEnd)
	s.Equal(toMid, rep.Legs[0].Cost)
	s.Equal(toEnd, rep.Legs[1].Cost)
	s.Equal(toMid+toEnd, rep.Cost())

	s.Same(g.End(0), rep.Legs[0].Path[len(rep.Legs[0].Path)-1])
	s.Same(g.End(0), rep.Legs[1].Path[0])
	for _, c := range []*gridgraph.Cell{g.Start(), g.End(0), g.End(1)} {
		s.NotEqual(gridgraph.Path, c.Role(), "endpoint %s restored", c)
	}
}

// TestChainedShades: the second leg is painted first, so it takes the
// primary shade and the first leg the secondary one.
func (s *SessionSuite) TestChainedShades() {
	sess := s.newSession([]string{
		"S....",
		".###.",
		".#E#.",
		".#.#.",
		"...#E",
	})
	rep, err := sess.RunChained(context.Background(), pathfind.AStar)
	require.NoError(s.T(), err)
	s.Require().True(rep.Success)
	s.Equal(6, rep.Legs[0].Cost)
	s.Equal(12, rep.Legs[1].Cost)

	// (1,4) lies only on the second leg; (1,0) is shared and keeps the
	// shade of the leg painted last
	only2, _ := sess.Grid().CellAt(1, 4)
	shared, _ := sess.Grid().CellAt(1, 0)
	s.Equal(gridgraph.ShadePrimary, only2.Shade())
	s.Equal(gridgraph.ShadeSecondary, shared.Shade())
}

// TestChainedFirstLegFails skips the second leg entirely.
func (s *SessionSuite) TestChainedFirstLegFails() {
	sess := s.newSession([]string{
		"S.#..",
		"..#..",
		"..#E.",
		"..###",
		"....E",
	})
	rep, err := sess.RunChained(context.Background(), pathfind.Dijkstra)
	require.NoError(s.T(), err)
	s.False(rep.Success)
	s.Require().Len(rep.Legs, 1)
	s.Equal(pathfind.NotFound, rep.Legs[0].Outcome)
	s.Equal("(2,3)", rep.Legs[0].To.String())
}

// TestChainedSecondLegFails still paints the first leg.
func (s *SessionSuite) TestChainedSecondLegFails() {
	sess := s.newSession([]string{
		"S.E..",
		".....",
		"...##",
		"...#E",
		"...#.",
	})
	rep, err := sess.RunChained(context.Background(), pathfind.Dijkstra)
	require.NoError(s.T(), err)
	s.False(rep.Success)
	s.Require().Len(rep.Legs, 2)
	s.Equal(pathfind.Found, rep.Legs[0].Outcome)
	s.Equal(2, rep.Legs[0].Cost)
	s.Len(rep.Legs[0].Path, 3)
	s.Equal(pathfind.NotFound, rep.Legs[1].Outcome)
	s.Nil(rep.Legs[1].Path)

	mid, _ := sess.Grid().CellAt(0, 1)
	s.Equal(gridgraph.Path, mid.Role())
}

func (s *SessionSuite) TestMissingEndpoints() {
	g, err := gridgraph.New(3, 10)
	require.NoError(s.T(), err)
	sess, err := session.New(g, session.WithLogger(quiet))
	require.NoError(s.T(), err)

	_, err = sess.RunSingle(context.Background(), pathfind.Dijkstra)
	s.ErrorIs(err, session.ErrMissingEndpoints)

	require.NoError(s.T(), g.SetStart(0, 0))
	require.NoError(s.T(), g.AddEnd(2, 2))
	_, err = sess.RunChained(context.Background(), pathfind.Dijkstra)
	s.ErrorIs(err, session.ErrMissingEndpoints)

	_, err = session.New(nil)
	s.ErrorIs(err, session.ErrNilGrid)
}

func (s *SessionSuite) TestBudgetAndCancel() {
	lines := []string{"S....", ".....", ".....", ".....", "....E"}

	sess := s.newSession(lines, session.WithStepBudget(3))
	rep, err := sess.RunSingle(context.Background(), pathfind.Dijkstra)
	require.NoError(s.T(), err)
	s.False(rep.Success)
	s.Equal(pathfind.BudgetExhausted, rep.Legs[0].Outcome)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sess = s.newSession(lines)
	_, err = sess.RunChained(context.Background(), pathfind.Dijkstra)
	s.ErrorIs(err, session.ErrMissingEndpoints, "only one end is placed")
	rep, err = sess.RunSingle(ctx, pathfind.Dijkstra)
	require.NoError(s.T(), err)
	s.Equal(pathfind.Cancelled, rep.Legs[0].Outcome)
}

// TestRerunIsStable runs the same flow twice; marks from the first run
// do not leak into the second.
func (s *SessionSuite) TestRerunIsStable() {
	sess := s.newSession([]string{
		"S..#.",
		".#...",
		".#.#.",
		"...#.",
		"##..E",
	})
	first, err := sess.RunSingle(context.Background(), pathfind.AStar)
	require.NoError(s.T(), err)
	layout := sess.Grid().Layout()

	second, err := sess.RunSingle(context.Background(), pathfind.AStar)
	require.NoError(s.T(), err)
	s.Equal(first.Legs[0].Cost, second.Legs[0].Cost)
	s.Equal(first.Legs[0].Expanded, second.Legs[0].Expanded)
	s.NotEqual(first.ID, second.ID)

	// the painter alternates, so only the path glyph differs
	for i, line := range sess.Grid().Layout() {
		for j := range line {
			if line[j] == '+' {
				s.Equal(byte('*'), layout[i][j])
				continue
			}
			s.Equal(layout[i][j], line[j])
		}
	}
}

func (s *SessionSuite) TestConcurrentRunsAreSerialized() {
	sess := s.newSession([]string{
		"S.....",
		"......",
		"..##..",
		"..##..",
		"......",
		".....E",
	})
	var wg sync.WaitGroup
	costs := make([]int, 4)
	for i := range costs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rep, err := sess.RunSingle(context.Background(), pathfind.Dijkstra)
			if err == nil {
				costs[i] = rep.Cost()
			}
		}(i)
	}
	wg.Wait()
	s.Equal([]int{10, 10, 10, 10}, costs)
}
