package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/rules"
)

// DefaultHistorySize is how many past generations are remembered for cycle detection
const DefaultHistorySize = 5

// Engine owns a grid and a rule set and advances the grid one generation at a time.
// An Engine is meant to be driven by a single goroutine.
type Engine struct {
	grid       *Grid
	rules      rules.RuleSet
	counter    NeighborCounter
	pool       *GridPool
	counts     []uint8
	generation int

	historySize int
	history     []string // hashes of past generations, oldest first
}

// Option configures an Engine
type Option func(*Engine)

// WithCounter selects the neighbor counting strategy
func WithCounter(c NeighborCounter) Option {
	return func(e *Engine) {
		if c != nil {
			e.counter = c
		}
	}
}

// WithGridPool recycles generation buffers through the given pool
func WithGridPool(p *GridPool) Option {
	return func(e *Engine) {
		e.pool = p
	}
}

// WithHistory sets how many past generations are kept for Period; 0 disables cycle detection
func WithHistory(n int) Option {
	return func(e *Engine) {
		e.historySize = max(n, 0)
	}
}

// New creates an engine with a rows x columns grid populated by seeder (nil means all dead)
func New(rows, columns int, rs rules.RuleSet, seeder Seeder, opts ...Option) (*Engine, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[New] grid must be at least 1x1, got: %dx%d", rows, columns)
	}

	e := &Engine{
		rules:       rs,
		counter:     ParallelCounter{},
		historySize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.grid = e.newGrid(rows, columns)
	if seeder != nil {
		if err := seeder.Seed(e.grid); err != nil {
			return nil, errors.Wrapf(err, "[New] failed to seed %dx%d grid", rows, columns)
		}
	}
	e.counts = make([]uint8, rows*columns)

	return e, nil
}

func (e *Engine) newGrid(rows, columns int) *Grid {
	if e.pool != nil {
		return e.pool.Get(rows, columns)
	}
	return NewGrid(rows, columns)
}

// Advance computes the next generation from a snapshot of the current one and replaces it
func (e *Engine) Advance() {
	cur := e.grid
	rows, cols := cur.rows, cur.columns

	e.counter.Count(cur, e.counts)

	next := e.newGrid(rows, cols)
	for i := range rows {
		base := i * cols
		for j := range cols {
			next.cells[i][j] = e.rules.Next(cur.cells[i][j], int(e.counts[base+j]))
		}
	}

	if e.historySize > 0 {
		e.history = append(e.history, cur.GetGridHash())
		if len(e.history) > e.historySize {
			e.history = e.history[1:]
		}
	}

	e.grid = next
	e.generation++
	GridToPool(cur, e.pool)
}

// Snapshot returns a copy of the current generation that later Advance calls do not touch
func (e *Engine) Snapshot() *Grid {
	return e.grid.Clone()
}

// Generation returns how many times Advance has been called
func (e *Engine) Generation() int {
	return e.generation
}

// Rules returns the engine's rule set
func (e *Engine) Rules() rules.RuleSet {
	return e.rules
}

// Counter returns the neighbor counting strategy in use
func (e *Engine) Counter() NeighborCounter {
	return e.counter
}

// Period returns the smallest p such that the current generation equals the one p steps
// earlier, looking back at most the history size. It returns 0 when no repeat is found.
func (e *Engine) Period() int {
	if len(e.history) == 0 {
		return 0
	}
	current := e.grid.GetGridHash()
	for p := 1; p <= len(e.history); p++ {
		if e.history[len(e.history)-p] == current {
			return p
		}
	}
	return 0
}

// IsStagnant checks if the grid is stuck in a static state or a short cycle
func (e *Engine) IsStagnant() bool {
	return e.Period() > 0
}
