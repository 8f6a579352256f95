package rules

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestNewRejectsOutOfRangeCounts(t *testing.T) {
	cases := []struct {
		name     string
		survival []int
		birth    []int
	}{
		{"survival above eight", []int{9}, []int{3}},
		{"survival negative", []int{-1}, []int{3}},
		{"birth above eight", []int{2, 3}, []int{3, 9}},
		{"birth negative", nil, []int{-2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.survival, tc.birth); !errors.Is(err, ErrInvalidRule) {
				t.Fatalf("New(%v, %v) error = %v, want ErrInvalidRule", tc.survival, tc.birth, err)
			}
		})
	}
}

func TestNewAcceptsBoundaryCounts(t *testing.T) {
	rs, err := New([]int{0, 8, 8}, []int{0, 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := rs.Survival(); !reflect.DeepEqual(got, []int{0, 8}) {
		t.Fatalf("Survival() = %v, want [0 8]", got)
	}
	if got := rs.Birth(); !reflect.DeepEqual(got, []int{0, 8}) {
		t.Fatalf("Birth() = %v, want [0 8]", got)
	}
}

func TestClassicNext(t *testing.T) {
	for n := 0; n <= MaxNeighbors; n++ {
		wantAlive := n == 2 || n == 3
		if got := Classic.Next(true, n); got != wantAlive {
			t.Errorf("Classic.Next(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Classic.Next(false, n); got != wantBorn {
			t.Errorf("Classic.Next(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

func TestGrowthDiffersFromClassic(t *testing.T) {
	if Growth.Survives(0) {
		t.Fatal("an isolated cell must not survive under growth rules")
	}
	if !Growth.Survives(4) || Classic.Survives(4) {
		t.Fatal("four neighbors should keep a cell alive under growth rules only")
	}
}

func TestNextIgnoresImpossibleCounts(t *testing.T) {
	rs := MustNew([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if rs.Next(true, 9) || rs.Next(false, -1) {
		t.Fatal("counts outside [0,8] must never produce a live cell")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"B3/S23", "B3/S23"},
		{"b3/s23", "B3/S23"},
		{"S23/B3", "B3/S23"},
		{"23/3", "B3/S23"},
		{"  classic ", "B3/S23"},
		{"growth", "B3/S2345"},
		{"HighLife", "B36/S23"},
		{"daynight", "B3678/S34678"},
		{"seeds", "B2/S"},
		{"B2/S", "B2/S"},
		{"B33/S32", "B3/S23"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			rs, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got := rs.String(); got != tc.want {
				t.Fatalf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S23/X", "B3/S2x", "B3/B3", "S23/S3", "B9/S23", "unknown"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidRule", in, err)
		}
	}
}
