package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/rules"
)

// gridFrom builds a grid from rows of '#' (alive) and '.' (dead)
func gridFrom(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g := NewGrid(len(lines), len(lines[0]))
	for i, line := range lines {
		if len(line) != g.Columns() {
			t.Fatalf("row %d has %d columns, want %d", i, len(line), g.Columns())
		}
		for j, r := range line {
			g.Set(i, j, r == '#')
		}
	}
	return g
}

// gridSeeder copies a prepared grid into the engine's grid
type gridSeeder struct{ src *Grid }

func (s gridSeeder) Seed(g *Grid) error {
	for i := range g.Rows() {
		for j := range g.Columns() {
			g.Set(i, j, s.src.Get(i, j))
		}
	}
	return nil
}

func newEngine(t *testing.T, rs rules.RuleSet, opts []Option, lines ...string) *Engine {
	t.Helper()
	src := gridFrom(t, lines...)
	e, err := New(src.Rows(), src.Columns(), rs, gridSeeder{src}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func assertGrid(t *testing.T, got *Grid, lines ...string) {
	t.Helper()
	want := gridFrom(t, lines...)
	if !got.Equal(want) {
		t.Fatalf("grid mismatch\ngot:\n%swant:\n%s", got, want)
	}
}

var allCounters = []struct {
	name string
	opts []Option
}{
	{"literal", []Option{WithCounter(LiteralCounter{})}},
	{"parallel", []Option{WithCounter(ParallelCounter{Workers: 3})}},
	{"separable", []Option{WithCounter(SeparableCounter{})}},
	{"fft", []Option{WithCounter(NewFFTCounter())}},
	{"pooled", []Option{WithGridPool(NewGridPool())}},
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name          string
		rows, columns int
		seeder        Seeder
		want          error
	}{
		{"zero rows", 0, 5, nil, ErrInvalidDimension},
		{"negative columns", 5, -1, nil, ErrInvalidDimension},
		{"probability above one", 5, 5, RandomSeeder{Probability: 1.5}, ErrInvalidProbability},
		{"negative probability", 5, 5, RandomSeeder{Probability: -0.1}, ErrInvalidProbability},
		{"strict pattern too large", 3, 3, PatternSeeder{Pattern: ParsePattern("####"), Strict: true}, ErrPatternDoesNotFit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := New(tc.rows, tc.columns, rules.Classic, tc.seeder)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New error = %v, want %v", err, tc.want)
			}
			if e != nil {
				t.Fatal("expected no engine on failure")
			}
		})
	}
}

func TestNewInvalidRule(t *testing.T) {
	_, err := rules.New([]int{9}, nil)
	if !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("rules.New error = %v, want ErrInvalidRule", err)
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	for _, c := range allCounters {
		t.Run(c.name, func(t *testing.T) {
			e, err := New(7, 9, rules.Classic, EmptySeeder{}, c.opts...)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			for range 10 {
				e.Advance()
				if n := e.Snapshot().CountLivingCells(); n != 0 {
					t.Fatalf("generation %d has %d living cells", e.Generation(), n)
				}
			}
		})
	}
}

func TestBlockStillLife(t *testing.T) {
	for _, c := range allCounters {
		t.Run(c.name, func(t *testing.T) {
			e := newEngine(t, rules.Classic, c.opts,
				"....",
				".##.",
				".##.",
				"....",
			)
			e.Advance()
			assertGrid(t, e.Snapshot(),
				"....",
				".##.",
				".##.",
				"....",
			)
			if p := e.Period(); p != 1 {
				t.Fatalf("Period() = %d, want 1", p)
			}
		})
	}
}

func TestBlinkerOscillation(t *testing.T) {
	for _, c := range allCounters {
		t.Run(c.name, func(t *testing.T) {
			e := newEngine(t, rules.Classic, c.opts,
				".....",
				".....",
				".###.",
				".....",
				".....",
			)
			e.Advance()
			assertGrid(t, e.Snapshot(),
				".....",
				"..#..",
				"..#..",
				"..#..",
				".....",
			)
			if e.IsStagnant() {
				t.Fatal("blinker should not repeat after one step")
			}

			e.Advance()
			assertGrid(t, e.Snapshot(),
				".....",
				".....",
				".###.",
				".....",
				".....",
			)
			if p := e.Period(); p != 2 {
				t.Fatalf("Period() = %d, want 2", p)
			}
			if e.Generation() != 2 {
				t.Fatalf("Generation() = %d, want 2", e.Generation())
			}
		})
	}
}

func TestBlinkerAcrossEdges(t *testing.T) {
	for _, c := range allCounters {
		t.Run(c.name, func(t *testing.T) {
			// horizontal blinker centered on column 0 wraps to column 4
			e := newEngine(t, rules.Classic, c.opts,
				"##..#",
				".....",
				".....",
				".....",
				".....",
			)
			e.Advance()
			assertGrid(t, e.Snapshot(),
				"#....",
				"#....",
				".....",
				".....",
				"#....",
			)
			e.Advance()
			assertGrid(t, e.Snapshot(),
				"##..#",
				".....",
				".....",
				".....",
				".....",
			)
		})
	}
}

func TestGrowthRules(t *testing.T) {
	for _, c := range allCounters {
		t.Run(c.name, func(t *testing.T) {
			lonely := newEngine(t, rules.Growth, c.opts,
				".....",
				".....",
				"..#..",
				".....",
				".....",
			)
			lonely.Advance()
			if lonely.Snapshot().Get(2, 2) {
				t.Fatal("an isolated cell must die under growth rules")
			}

			// center cell has exactly 4 living neighbors
			crowd := []string{
				".....",
				".#.#.",
				"..#..",
				".#.#.",
				".....",
			}
			growth := newEngine(t, rules.Growth, c.opts, crowd...)
			growth.Advance()
			if !growth.Snapshot().Get(2, 2) {
				t.Fatal("a cell with 4 neighbors should survive under growth rules")
			}

			classic := newEngine(t, rules.Classic, c.opts, crowd...)
			classic.Advance()
			if classic.Snapshot().Get(2, 2) {
				t.Fatal("a cell with 4 neighbors should die under classic rules")
			}
		})
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	e := newEngine(t, rules.Classic, []Option{WithGridPool(NewGridPool())},
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	before := e.Snapshot()
	want := before.Clone()
	for range 3 {
		e.Advance()
	}
	if !before.Equal(want) {
		t.Fatal("snapshot changed after Advance")
	}
	before.Set(0, 0, true)
	if e.Snapshot().Get(0, 0) {
		t.Fatal("writing to a snapshot leaked into the engine")
	}
}

func TestRandomSeedingIsDeterministic(t *testing.T) {
	a, err := New(20, 30, rules.Classic, RandomSeeder{Probability: 0.4, RNGSeed: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := New(20, 30, rules.Classic, RandomSeeder{Probability: 0.4, RNGSeed: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for range 5 {
		if !a.Snapshot().Equal(b.Snapshot()) {
			t.Fatalf("engines diverged at generation %d", a.Generation())
		}
		a.Advance()
		b.Advance()
	}
}

func TestHistoryDisabled(t *testing.T) {
	e := newEngine(t, rules.Classic, []Option{WithHistory(0)},
		"....",
		".##.",
		".##.",
		"....",
	)
	e.Advance()
	if e.IsStagnant() {
		t.Fatal("cycle detection should be off with an empty history")
	}
}
