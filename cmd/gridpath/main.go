// Command gridpath serves the search API or replays a search in the terminal.
//
// Usage:
//
//	gridpath [serve]
//	gridpath demo -layout maze.txt [-mode astar|dijkstra] [-clear]
//
// Layout files use one glyph per cell: '.' free, '#' barrier, 'S' start,
// 'E' end (one or two).
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/api"
	"github.com/katalvlaran/gridpath/api/i"
	"github.com/katalvlaran/gridpath/api/searchapi"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/session"
)

func main() {
	args := os.Args[1:]
	cmd := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = serve(args)
	case "demo":
		err = demo(args)
	default:
		err = fmt.Errorf("unknown command %q (want serve or demo)", cmd)
	}
	if err != nil {
		slog.Error("gridpath failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "optional .env file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := setupLogger(*verbose)

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	searchController, err := searchapi.NewSearchController(searchapi.Settings{
		DefaultRows: cfg.Rows,
		Width:       cfg.Width,
		MaxSteps:    cfg.MaxSteps,
		MaxFrames:   cfg.MaxFrames,
		FrameCells:  cfg.FrameCells,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []i.Controller{searchController},
	})

	srv := router.Server()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func demo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	layoutPath := fs.String("layout", "", "layout file (required)")
	modeName := fs.String("mode", "astar", "astar or dijkstra")
	redraw := fs.Bool("clear", false, "redraw in place")
	envFile := fs.String("env", ".env", "optional .env file")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *layoutPath == "" {
		return errors.New("demo: -layout is required")
	}
	logger := setupLogger(*verbose)

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	mode, err := pathfind.ParseMode(*modeName)
	if err != nil {
		return err
	}
	lines, err := readLines(*layoutPath)
	if err != nil {
		return err
	}
	g, err := gridgraph.FromLayout(lines)
	if err != nil {
		return fmt.Errorf("demo: %s: %w", *layoutPath, err)
	}

	termOpts := []render.TerminalOption{render.WithDelay(cfg.FrameDelay)}
	if *redraw {
		termOpts = append(termOpts, render.WithClear())
	}
	term := render.NewTerminal(os.Stdout, g, termOpts...)
	sess, err := session.New(g,
		session.WithOnStep(term.Step),
		session.WithStepBudget(cfg.MaxSteps),
		session.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var rep *session.Report
	if len(g.Ends()) == 2 {
		rep, err = sess.RunChained(ctx, mode)
	} else {
		rep, err = sess.RunSingle(ctx, mode)
	}
	if err != nil {
		return err
	}
	if err := term.Err(); err != nil {
		return err
	}

	fmt.Println(render.Text(g))
	verdict := "MISSION FAILURE"
	if rep.Success {
		verdict = "MISSION SUCCESS"
	}
	fmt.Printf("%s: %s, %d leg(s), cost %d, %d frames\n", verdict, rep.Mode, len(rep.Legs), rep.Cost(), term.Frames())

	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
