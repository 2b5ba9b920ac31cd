// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Rows       int           // Grid side length for the demo and the API default
	Width      int           // Display width in pixels; CellSize = Width / Rows
	MaxSteps   int           // Expansion budget per leg; 0 = unlimited
	MaxFrames  int           // Frames recorded per API request; 0 = unlimited
	FrameCells int           // Cells recorded per API request across all frames; 0 = unlimited
	FrameDelay time.Duration // Pause between terminal frames
	HostIP     string        // Host IP for the server
	RESTPort   int           // Port for the REST API
	GinMode    string        // Mode for the Gin framework (release, debug, test)
}

// Defaults returns the configuration used when no variable is set.
func Defaults() Config {
	return Config{
		Rows:       50,
		Width:      600,
		MaxFrames:  5000,
		FrameCells: 4_000_000,
		RESTPort:   8080,
		GinMode:    "release",
	}
}

// Load reads the given .env files (".env" when none are given), then the
// environment. A missing file is not an error; a malformed value is.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Debug("env file not loaded", slog.String("component", "config"), slog.Any("err", err))
	}

	cfg := Defaults()
	var err error
	if cfg.Rows, err = intEnv("GRIDPATH_ROWS", cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.Width, err = intEnv("GRIDPATH_WIDTH", cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.MaxSteps, err = intEnv("GRIDPATH_MAX_STEPS", cfg.MaxSteps); err != nil {
		return Config{}, err
	}
	if cfg.MaxFrames, err = intEnv("GRIDPATH_MAX_FRAMES", cfg.MaxFrames); err != nil {
		return Config{}, err
	}
	if cfg.FrameCells, err = intEnv("GRIDPATH_MAX_FRAME_CELLS", cfg.FrameCells); err != nil {
		return Config{}, err
	}
	delay, err := intEnv("GRIDPATH_FRAME_DELAY_MS", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.FrameDelay = time.Duration(delay) * time.Millisecond
	if cfg.RESTPort, err = intEnv("REST_PORT", cfg.RESTPort); err != nil {
		return Config{}, err
	}
	cfg.HostIP = getEnvWithDefault("HOST_IP", "")
	cfg.GinMode = getEnvWithDefault("GIN_MODE", cfg.GinMode)

	return cfg, cfg.Validate()
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: GRIDPATH_ROWS=%d must be positive", ErrInvalid, c.Rows)
	case c.Width < c.Rows:
		return fmt.Errorf("%w: GRIDPATH_WIDTH=%d smaller than rows", ErrInvalid, c.Width)
	case c.MaxSteps < 0:
		return fmt.Errorf("%w: GRIDPATH_MAX_STEPS=%d is negative", ErrInvalid, c.MaxSteps)
	case c.MaxFrames < 0:
		return fmt.Errorf("%w: GRIDPATH_MAX_FRAMES=%d is negative", ErrInvalid, c.MaxFrames)
	case c.FrameCells < 0:
		return fmt.Errorf("%w: GRIDPATH_MAX_FRAME_CELLS=%d is negative", ErrInvalid, c.FrameCells)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: negative frame delay", ErrInvalid)
	case c.RESTPort <= 0 || c.RESTPort > 65535:
		return fmt.Errorf("%w: REST_PORT=%d out of range", ErrInvalid, c.RESTPort)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.HostIP, strconv.Itoa(c.RESTPort))
}

// CellSize is the display width of one cell.
func (c Config) CellSize() int { return c.Width / c.Rows }

// intEnv retrieves an integer variable, or def when unset.
func intEnv(key string, def int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	return v, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
