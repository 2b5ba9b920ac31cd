package searchapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
)

// ErrFramesTooLarge is returned when frames are requested for a grid whose
// single frame exceeds the configured cell budget.
var ErrFramesTooLarge = errors.New("searchapi: frames too large")

// Settings are the server-side limits applied to every request.
type Settings struct {
	DefaultRows int // used when the request omits rows
	Width       int // display width; cell size = Width / rows
	MaxSteps    int // expansion budget per leg, 0 = unlimited
	MaxFrames   int // cap on recorded frames, 0 = unlimited
	FrameCells  int // cap on rows² × frames per request, 0 = unlimited
	Logger      *slog.Logger
}

// SearchController runs searches on request-supplied grids.
type SearchController struct {
	settings Settings
	log      *slog.Logger
}

// NewSearchController initializes a SearchController.
func NewSearchController(s Settings) (*SearchController, error) {
	if s.DefaultRows <= 0 {
		return nil, fmt.Errorf("searchapi: default rows %d must be positive", s.DefaultRows)
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	return &SearchController{
		settings: s,
		log:      s.Logger.With(slog.String("component", "searchapi")),
	}, nil
}

// RegisterPublic registers public routes.
func (sc *SearchController) RegisterPublic(route *gin.RouterGroup) {
	searches := route.Group("/searches")
	{
		searches.POST("", sc.search)
	}
}

// search builds the grid from the request, runs the flow and reports it.
func (sc *SearchController) search(ctx *gin.Context) {
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mode, err := pathfind.ParseMode(request.Mode)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := sc.buildGrid(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := []session.Option{
		session.WithStepBudget(sc.settings.MaxSteps),
		session.WithLogger(sc.settings.Logger),
	}
	var rec *render.Recorder
	if request.Frames {
		limit, err := sc.frameLimit(g.Rows)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rec = render.NewRecorder(g, limit)
		opts = append(opts, session.WithOnStep(rec.Step))
	}
	sess, err := session.New(g, opts...)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while preparing search"})
		return
	}

	var report *session.Report
	if len(request.Ends) == 1 {
		report, err = sess.RunSingle(ctx.Request.Context(), mode)
	} else {
		report, err = sess.RunChained(ctx.Request.Context(), mode)
	}
	if err != nil {
		sc.log.Error("search failed", slog.Any("err", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while searching"})
		return
	}

	response := toResponse(report, g)
	if rec != nil {
		response.Frames = rec.Frames()
		response.DroppedFrames = rec.Dropped()
	}
	ctx.JSON(http.StatusOK, response)
}

// frameLimit is the number of frames a grid of the given size may record:
// MaxFrames, lowered so that frames × rows² stays within FrameCells.
// A grid too large for a single frame is rejected.
func (sc *SearchController) frameLimit(rows int) (int, error) {
	limit := sc.settings.MaxFrames
	if sc.settings.FrameCells <= 0 {
		return limit, nil
	}
	fit := sc.settings.FrameCells / (rows * rows)
	if fit == 0 {
		return 0, fmt.Errorf("%w: %d rows exceed %d recorded cells", ErrFramesTooLarge, rows, sc.settings.FrameCells)
	}
	if limit == 0 || fit < limit {
		limit = fit
	}
	return limit, nil
}

// buildGrid places endpoints and barriers through the input layer, so the
// same rules apply as for interactive painting.
func (sc *SearchController) buildGrid(req *SearchRequest) (*gridgraph.Grid, error) {
	rows := req.Rows
	if rows == 0 {
		rows = sc.settings.DefaultRows
	}
	g, err := gridgraph.New(rows, max(gridgraph.CellSizeFor(sc.settings.Width, rows), 1),
		gridgraph.WithEndSlots(len(req.Ends)))
	if err != nil {
		return nil, err
	}
	if err := g.SetStart(req.Start[0], req.Start[1]); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	for n, e := range req.Ends {
		if err := g.AddEnd(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("end %d: %w", n+1, err)
		}
	}
	for _, b := range req.Barriers {
		if err := g.SetBarrier(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("barrier %v: %w", b, err)
		}
	}

	return g, nil
}

func toResponse(rep *session.Report, g *gridgraph.Grid) *SearchResponse {
	resp := &SearchResponse{
		ID:      rep.ID,
		Mode:    rep.Mode.String(),
		Success: rep.Success,
		Cost:    rep.Cost(),
		Legs:    make([]LegResponse, 0, len(rep.Legs)),
		Final:   g.Layout(),
	}
	for _, l := range rep.Legs {
		leg := LegResponse{
			From:     coord(l.From),
			To:       coord(l.To),
			Outcome:  l.Outcome.String(),
			Cost:     l.Cost,
			Expanded: l.Expanded,
		}
		for _, c := range l.Path {
			leg.Path = append(leg.Path, coord(c))
		}
		resp.Legs = append(resp.Legs, leg)
	}
	return resp
}

func coord(c *gridgraph.Cell) [2]int { return [2]int{c.Row, c.Col} }
