package model

import (
	"runtime"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// NeighborCounter fills counts (row-major, len rows*columns) with the number of living cells
// among the 8 wrapped neighbors of every cell of g. Implementations differ only in speed.
type NeighborCounter interface {
	Name() string
	Count(g *Grid, counts []uint8)
}

// LiteralCounter visits the 8 neighbors of each cell one by one
type LiteralCounter struct{}

// Name implements NeighborCounter
func (LiteralCounter) Name() string { return "literal" }

// Count implements NeighborCounter
func (LiteralCounter) Count(g *Grid, counts []uint8) {
	countRows(g, counts, 0, g.rows)
}

func countRows(g *Grid, counts []uint8, startRow, endRow int) {
	for i := startRow; i < endRow; i++ {
		base := i * g.columns
		for j := range g.columns {
			counts[base+j] = uint8(g.CountNeighbors(i, j))
		}
	}
}

// ParallelCounter splits literal counting into row bands processed concurrently.
// Workers <= 0 means one worker per CPU.
type ParallelCounter struct {
	Workers int
}

// Name implements NeighborCounter
func (ParallelCounter) Name() string { return "parallel" }

// Count implements NeighborCounter
func (c ParallelCounter) Count(g *Grid, counts []uint8) {
	var (
		eg            errgroup.Group
		numWorkers    = c.Workers
		rowsPerWorker int
	)
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	rowsPerWorker = (g.rows + numWorkers - 1) / numWorkers // Ceiling division

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.rows)
		)
		if startRow >= g.rows {
			break
		}

		// each worker writes a disjoint slice of counts and only reads g
		eg.Go(func() error {
			countRows(g, counts, startRow, endRow)
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()
}

// SeparableCounter sums each cell's 3x3 wrapped box as a vertical 3-sum followed by a
// horizontal 3-sum, then subtracts the cell itself
type SeparableCounter struct{}

// Name implements NeighborCounter
func (SeparableCounter) Name() string { return "separable" }

// Count implements NeighborCounter
func (SeparableCounter) Count(g *Grid, counts []uint8) {
	rows, cols := g.rows, g.columns
	vertical := make([]uint8, cols)
	for i := range rows {
		up, down := g.cells[wrap(i-1, rows)], g.cells[wrap(i+1, rows)]
		mid := g.cells[i]
		for j := range cols {
			vertical[j] = b2u(up[j]) + b2u(mid[j]) + b2u(down[j])
		}
		base := i * cols
		for j := range cols {
			box := vertical[wrap(j-1, cols)] + vertical[j] + vertical[wrap(j+1, cols)]
			counts[base+j] = box - b2u(mid[j])
		}
	}
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

var counters = map[string]func() NeighborCounter{
	"literal":   func() NeighborCounter { return LiteralCounter{} },
	"parallel":  func() NeighborCounter { return ParallelCounter{} },
	"separable": func() NeighborCounter { return SeparableCounter{} },
	"fft":       func() NeighborCounter { return NewFFTCounter() },
}

// CounterByName returns a new neighbor counter for the given strategy name
func CounterByName(name string) (NeighborCounter, error) {
	newCounter, ok := counters[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCounter, "[CounterByName] no counter named: %+v", name)
	}
	return newCounter(), nil
}

// CounterNames lists the registered counting strategies in sorted order
func CounterNames() []string {
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
