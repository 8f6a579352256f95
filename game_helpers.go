package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/sheikhrachel/go-gol-gif/model"
	"github.com/sheikhrachel/go-gol-gif/render"
	"github.com/sheikhrachel/go-gol-gif/rules"
	"github.com/sheikhrachel/go-gol-gif/utils"
)

// Reasons a run ends
const (
	reasonCompleted   = "completed"
	reasonInterrupted = "interrupted"
	reasonQuit        = "closed by user"
	reasonExtinction  = "extinction"
	reasonStagnation  = "stagnation detected"
)

// buildSeeder maps the seeding mode to a model.Seeder
func buildSeeder(config utils.Config) (model.Seeder, error) {
	switch strings.ToLower(config.Seeding) {
	case utils.SeedingRandom:
		return model.RandomSeeder{Probability: config.Probability(), RNGSeed: config.Seed}, nil
	case utils.SeedingEmpty:
		return model.EmptySeeder{}, nil
	}

	pattern, err := model.LookupPattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "[buildSeeder] failed to seed with pattern: %+v", config.Pattern)
	}
	if strings.ToLower(config.Seeding) == utils.SeedingQuadrants {
		return model.QuadrantSeeder{Pattern: pattern, Strict: config.StrictPattern}, nil
	}
	return model.PatternSeeder{Pattern: pattern, Strict: config.StrictPattern}, nil
}

// buildEngine sets up the engine described by the configuration
func buildEngine(config utils.Config) (*model.Engine, error) {
	rs, err := rules.Parse(config.Rule)
	if err != nil {
		return nil, errors.Wrapf(err, "[buildEngine] failed to parse rule: %+v", config.Rule)
	}

	seeder, err := buildSeeder(config)
	if err != nil {
		return nil, err
	}

	counter, err := model.CounterByName(config.Counter)
	if err != nil {
		return nil, errors.Wrapf(err, "[buildEngine] failed to select counter: %+v", config.Counter)
	}

	opts := []model.Option{model.WithCounter(counter)}
	if config.UseMemoryPool {
		opts = append(opts, model.WithGridPool(model.NewGridPool()))
	}

	return model.New(config.Rows, config.Columns, rs, seeder, opts...)
}

// buildStyle turns the color and frame settings into a render.Style
func buildStyle(config utils.Config) (render.Style, error) {
	style := render.DefaultStyle()
	style.CellSize = config.CellSize
	style.FPS = config.FPS
	style.ShowTitle = config.ShowTitle

	var err error
	if style.Background, err = render.ParseColor(config.Background); err != nil {
		return style, errors.Wrap(err, "[buildStyle] failed to parse background")
	}
	if style.Foreground, err = render.ParseColor(config.Foreground); err != nil {
		return style, errors.Wrap(err, "[buildStyle] failed to parse foreground")
	}
	return style, nil
}

// gifFile closes the output file after the animation is encoded.
// A run that rendered nothing leaves no file behind.
type gifFile struct {
	*render.GIFRenderer
	f *os.File
}

func (g *gifFile) Close() error {
	err := g.GIFRenderer.Close()
	if cerr := g.f.Close(); err == nil && cerr != nil {
		err = errors.Wrapf(cerr, "[gifFile.Close] failed to close: %+v", g.f.Name())
	}
	if errors.Is(err, render.ErrNoFrames) {
		if rerr := os.Remove(g.f.Name()); rerr != nil && !os.IsNotExist(rerr) {
			return errors.Wrapf(rerr, "[gifFile.Close] failed to remove empty output: %+v", g.f.Name())
		}
	}
	return err
}

// openRenderer creates the renderer for the configured mode. For file modes it also returns
// the versioned output path.
func openRenderer(config utils.Config, style render.Style) (render.Renderer, string, error) {
	switch strings.ToLower(config.Mode) {
	case utils.ModeGIF:
		path, err := utils.NextVersionedPath(config.OutputDir, config.OutputName, "gif")
		if err != nil {
			return nil, "", err
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, "", errors.Wrapf(err, "[openRenderer] failed to create file: %+v", path)
		}
		return &gifFile{GIFRenderer: render.NewGIF(f, style), f: f}, path, nil

	case utils.ModeMJPEG:
		path, err := utils.NextVersionedPath(config.OutputDir, config.OutputName, "avi")
		if err != nil {
			return nil, "", err
		}
		r, err := render.NewMJPEG(path, config.Rows, config.Columns, style)
		if err != nil {
			return nil, "", err
		}
		return r, path, nil

	case utils.ModeLive:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, "", errors.Wrap(err, "[openRenderer] failed to create screen")
		}
		r, err := render.NewLive(screen, style)
		if err != nil {
			return nil, "", err
		}
		return r, "", nil

	case utils.ModeTerminal:
		return render.NewTerminal(), "", nil
	}
	return nil, "", errors.Wrapf(utils.ErrInvalidConfig, "[openRenderer] unknown mode: %+v", config.Mode)
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, engine *model.Engine, outPath string) {
	grid := engine.Snapshot()
	fmt.Fprintf(out, "Rule: %s | Counter: %s | Memory Pool: %v\n",
		engine.Rules(), engine.Counter().Name(), config.UseMemoryPool)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Steps: %d\n",
		grid.Rows(), grid.Columns(), grid.CountLivingCells(), config.Steps)
	if outPath != "" {
		fmt.Fprintf(out, "Output: %s\n", outPath)
	}
	fmt.Fprintln(out, "Press Ctrl+C to stop early")
	fmt.Fprintln(out)
}

// runResult summarizes a finished run
type runResult struct {
	Rendered int
	Reason   string
}

// runSimulation renders the current generation and advances, steps times. It stops early when
// ctx is canceled, the renderer reports the user quit, or, with stopWhenStagnant, when the
// grid dies out or repeats. progress may be nil.
func runSimulation(
	ctx context.Context,
	engine *model.Engine,
	renderer render.Renderer,
	steps int,
	stopWhenStagnant bool,
	progress io.Writer,
	stats *utils.Stats,
) (runResult, error) {
	var (
		bar       *progressbar.ProgressBar
		userQuit  <-chan struct{}
		lastFrame = time.Now()
	)
	if progress != nil {
		bar = progressbar.NewOptions(steps,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Generating frames"),
			progressbar.OptionShowCount(),
		)
	}
	if d, ok := renderer.(interface{ Done() <-chan struct{} }); ok {
		userQuit = d.Done()
	}

	for step := range steps {
		select {
		case <-ctx.Done():
			return runResult{Rendered: step, Reason: reasonInterrupted}, nil
		case <-userQuit:
			return runResult{Rendered: step, Reason: reasonQuit}, nil
		default:
			// Continue with game loop
		}

		grid := engine.Snapshot()
		if err := renderer.Render(grid, engine.Generation()); err != nil {
			return runResult{Rendered: step}, errors.Wrapf(err, "[runSimulation] failed to render step: %+v", step)
		}

		frameStart := time.Now()
		livingCells := grid.CountLivingCells()
		stats.Update(engine.Generation(), livingCells, frameStart.Sub(lastFrame))
		lastFrame = frameStart
		if bar != nil {
			_ = bar.Add(1)
		}

		if stopWhenStagnant {
			if livingCells == 0 {
				return runResult{Rendered: step + 1, Reason: reasonExtinction}, nil
			}
			if engine.IsStagnant() {
				return runResult{Rendered: step + 1, Reason: reasonStagnation}, nil
			}
		}

		engine.Advance()
	}

	return runResult{Rendered: steps, Reason: reasonCompleted}, nil
}

// displayFinalStats shows how the run went
func displayFinalStats(out io.Writer, result runResult, stats *utils.Stats) {
	fmt.Fprintf(out, "\n🏁 Rendered %d generations (%s) in %.1f seconds\n",
		result.Rendered, result.Reason, stats.Elapsed().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// writeChart saves the population series next to the animation
func writeChart(path string, stats *utils.Stats, style render.Style) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writeChart] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "[writeChart] failed to close: %+v", path)
		}
	}()

	return render.WritePopulationChart(f, stats.Populations, style.Foreground)
}
