// Package render turns grid state into text frames. Its Step methods match
// the func() hook the search and session packages call after every step.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// clearScreen moves the cursor home and clears an ANSI terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Text is the grid layout as newline-separated rows.
func Text(g *gridgraph.Grid) string {
	return strings.Join(g.Layout(), "\n")
}

// Recorder captures one layout per Step, keeping at most Limit frames
// (0 = all). Frames beyond the limit are counted, not stored.
type Recorder struct {
	grid    *gridgraph.Grid
	limit   int
	frames  [][]string
	dropped int
}

// NewRecorder records frames of g.
func NewRecorder(g *gridgraph.Grid, limit int) *Recorder {
	return &Recorder{grid: g, limit: max(limit, 0)}
}

// Step captures the current layout.
func (r *Recorder) Step() {
	if r.limit > 0 && len(r.frames) >= r.limit {
		r.dropped++
		return
	}
	r.frames = append(r.frames, r.grid.Layout())
}

// Frames returns the captured layouts in order.
func (r *Recorder) Frames() [][]string { return r.frames }

// Dropped is the number of steps past the limit.
func (r *Recorder) Dropped() int { return r.dropped }

// Terminal writes a frame per Step to w and waits Delay between frames.
// The first write error is kept and later steps become no-ops.
type Terminal struct {
	w      io.Writer
	grid   *gridgraph.Grid
	delay  time.Duration
	clear  bool
	frames int
	err    error
	sleep  func(time.Duration)
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithDelay sets the pause after each frame.
func WithDelay(d time.Duration) TerminalOption {
	return func(t *Terminal) { t.delay = max(d, 0) }
}

// WithClear redraws in place using ANSI escapes instead of appending frames.
func WithClear() TerminalOption {
	return func(t *Terminal) { t.clear = true }
}

// NewTerminal renders g to w.
func NewTerminal(w io.Writer, g *gridgraph.Grid, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w, grid: g, sleep: time.Sleep}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Step writes the current layout.
func (t *Terminal) Step() {
	if t.err != nil {
		return
	}
	t.frames++
	prefix := fmt.Sprintf("-- frame %d --\n", t.frames)
	if t.clear {
		prefix = clearScreen
	}
	if _, err := io.WriteString(t.w, prefix+Text(t.grid)+"\n"); err != nil {
		t.err = fmt.Errorf("render: frame %d: %w", t.frames, err)
		return
	}
	if t.delay > 0 {
		t.sleep(t.delay)
	}
}

// Frames is the number of frames written.
func (t *Terminal) Frames() int { return t.frames }

// Err reports the first write failure.
func (t *Terminal) Err() error { return t.err }
