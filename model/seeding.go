package model

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Seeder populates a freshly allocated, all-dead grid
type Seeder interface {
	Seed(g *Grid) error
}

// EmptySeeder leaves every cell dead
type EmptySeeder struct{}

// Seed implements Seeder
func (EmptySeeder) Seed(*Grid) error { return nil }

// RandomSeeder makes each cell alive independently with the given probability.
// The same RNGSeed always produces the same grid.
type RandomSeeder struct {
	Probability float64
	RNGSeed     int64
}

// Seed implements Seeder
func (s RandomSeeder) Seed(g *Grid) error {
	if math.IsNaN(s.Probability) || s.Probability < 0 || s.Probability > 1 {
		return errors.Wrapf(ErrInvalidProbability, "[RandomSeeder.Seed] probability outside [0,1]: %+v", s.Probability)
	}
	rng := rand.New(rand.NewPCG(uint64(s.RNGSeed), 0))
	for i := range g.rows {
		for j := range g.columns {
			g.cells[i][j] = rng.Float64() < s.Probability
		}
	}
	return nil
}

// PatternSeeder stamps a pattern centered on the grid.
// A pattern that does not fit leaves the grid empty, or fails with ErrPatternDoesNotFit when Strict.
type PatternSeeder struct {
	Pattern Pattern
	Strict  bool
}

// Seed implements Seeder
func (s PatternSeeder) Seed(g *Grid) error {
	return placeAll(g, s.Pattern, s.Strict, [][2]int{{g.rows / 2, g.columns / 2}})
}

// QuadrantSeeder stamps the same pattern at the center of each quadrant of the grid.
// Each placement follows the PatternSeeder fit policy on its own.
type QuadrantSeeder struct {
	Pattern Pattern
	Strict  bool
}

// Seed implements Seeder
func (s QuadrantSeeder) Seed(g *Grid) error {
	return placeAll(g, s.Pattern, s.Strict, QuadrantCenters(g.rows, g.columns))
}

// QuadrantCenters returns the centers of the four quadrants: upper-left, upper-right,
// lower-left, lower-right
func QuadrantCenters(rows, columns int) [][2]int {
	top, bottom := rows/4, 3*rows/4
	left, right := columns/4, 3*columns/4
	return [][2]int{
		{top, left},
		{top, right},
		{bottom, left},
		{bottom, right},
	}
}

func placeAll(g *Grid, p Pattern, strict bool, centers [][2]int) error {
	if strict {
		// check every placement first so a failure leaves the grid untouched
		probe := NewGrid(g.rows, g.columns)
		for _, c := range centers {
			if !probe.PlaceCentered(p, c[0], c[1]) {
				return errors.Wrapf(ErrPatternDoesNotFit,
					"[placeAll] %dx%d pattern centered at %v on %dx%d grid", p.Height(), p.Width(), c, g.rows, g.columns)
			}
		}
	}
	for _, c := range centers {
		g.PlaceCentered(p, c[0], c[1])
	}
	return nil
}
