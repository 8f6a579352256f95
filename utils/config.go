package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Output modes
const (
	ModeGIF      = "gif"
	ModeMJPEG    = "mjpeg"
	ModeLive     = "live"
	ModeTerminal = "terminal"
)

// Seeding modes
const (
	SeedingRandom    = "random"
	SeedingPattern   = "pattern"
	SeedingQuadrants = "quadrants"
	SeedingEmpty     = "empty"
)

// ErrInvalidConfig is returned by Validate for out-of-range or unknown settings
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Rows             int     `json:"rows"`
	Columns          int     `json:"columns"`
	Steps            int     `json:"steps"`
	Rule             string  `json:"rule"`
	Seeding          string  `json:"seeding"`
	PercentAlive     float64 `json:"percent_alive"`
	Pattern          string  `json:"pattern"`
	StrictPattern    bool    `json:"strict_pattern"`
	Seed             int64   `json:"seed"`
	Counter          string  `json:"counter"`
	Mode             string  `json:"mode"`
	OutputDir        string  `json:"output_dir"`
	OutputName       string  `json:"output_name"`
	FPS              int     `json:"fps"`
	CellSize         int     `json:"cell_size"`
	Background       string  `json:"background"`
	Foreground       string  `json:"foreground"`
	ShowTitle        bool    `json:"show_title"`
	StopWhenStagnant bool    `json:"stop_when_stagnant"`
	UseMemoryPool    bool    `json:"use_memory_pool"`
	Chart            bool    `json:"chart"`
}

// DefaultConfig returns the growing-heart setup: a heart on a 40x40 grid under B3/S2345
func DefaultConfig() Config {
	return Config{
		Rows:          40,
		Columns:       40,
		Steps:         41,
		Rule:          "growth",
		Seeding:       SeedingPattern,
		PercentAlive:  20,
		Pattern:       "heart",
		Seed:          1,
		Counter:       "parallel",
		Mode:          ModeGIF,
		OutputDir:     "figures/gif/tests",
		OutputName:    "gol",
		FPS:           10,
		CellSize:      8,
		Background:    "white",
		Foreground:    "#f77877",
		ShowTitle:     true,
		UseMemoryPool: true,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet, using current values as defaults
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Columns, "columns", c.Columns, "grid columns")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to render")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset or B/S notation, e.g. classic, growth, B36/S23")
	fs.StringVar(&c.Seeding, "seeding", c.Seeding, "initial grid: random, pattern, quadrants or empty")
	fs.Float64Var(&c.PercentAlive, "percent-alive", c.PercentAlive, "percent of cells alive with random seeding (0-100)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern name for pattern and quadrants seeding")
	fs.BoolVar(&c.StrictPattern, "strict-pattern", c.StrictPattern, "fail when the pattern does not fit instead of starting empty")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random seeding")
	fs.StringVar(&c.Counter, "counter", c.Counter, "neighbor counting strategy: literal, parallel, separable or fft")
	fs.StringVar(&c.Mode, "mode", c.Mode, "output: gif, mjpeg, live or terminal")
	fs.StringVar(&c.OutputDir, "out-dir", c.OutputDir, "directory for gif and mjpeg output")
	fs.StringVar(&c.OutputName, "out-name", c.OutputName, "base file name; a _vNNN suffix is added")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell")
	fs.StringVar(&c.Background, "background", c.Background, "dead cell color")
	fs.StringVar(&c.Foreground, "foreground", c.Foreground, "living cell color")
	fs.BoolVar(&c.ShowTitle, "title", c.ShowTitle, "draw the step number above each frame")
	fs.BoolVar(&c.StopWhenStagnant, "stop-when-stagnant", c.StopWhenStagnant, "stop early on extinction or a short cycle")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle grid buffers between generations")
	fs.BoolVar(&c.Chart, "chart", c.Chart, "also write a population chart next to the output")
}

// Probability converts PercentAlive to a fraction
func (c Config) Probability() float64 {
	return c.PercentAlive / 100
}

// Validate checks driver-level settings. Grid, rule and seeding values are checked by the engine.
func (c Config) Validate() error {
	switch {
	case c.Steps <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] steps must be positive: %+v", c.Steps)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] fps must be positive: %+v", c.FPS)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive: %+v", c.CellSize)
	}

	switch strings.ToLower(c.Mode) {
	case ModeGIF, ModeMJPEG, ModeLive, ModeTerminal:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown mode: %+v", c.Mode)
	}

	switch strings.ToLower(c.Seeding) {
	case SeedingRandom, SeedingPattern, SeedingQuadrants, SeedingEmpty:
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown seeding: %+v", c.Seeding)
	}

	return nil
}
