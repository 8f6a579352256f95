package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the largest possible neighbor count on an 8-neighbor grid
const MaxNeighbors = 8

// ErrInvalidRule is returned when a rule value falls outside [0, MaxNeighbors]
var ErrInvalidRule = errors.New("invalid rule")

// RuleSet holds the neighbor counts at which a live cell survives and a dead cell is born.
// The zero value has no survival and no birth counts.
type RuleSet struct {
	survival [MaxNeighbors + 1]bool
	birth    [MaxNeighbors + 1]bool
}

// New builds a RuleSet from survival and birth neighbor counts
func New(survival, birth []int) (RuleSet, error) {
	var rs RuleSet
	for _, n := range survival {
		if n < 0 || n > MaxNeighbors {
			return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[New] survival count out of range: %+v", n)
		}
		rs.survival[n] = true
	}
	for _, n := range birth {
		if n < 0 || n > MaxNeighbors {
			return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[New] birth count out of range: %+v", n)
		}
		rs.birth[n] = true
	}
	return rs, nil
}

// MustNew is like New but panics on invalid input. Intended for package-level presets.
func MustNew(survival, birth []int) RuleSet {
	rs, err := New(survival, birth)
	if err != nil {
		panic(err)
	}
	return rs
}

// Survives reports whether a live cell with n neighbors stays alive
func (r RuleSet) Survives(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.survival[n]
}

// Born reports whether a dead cell with n neighbors becomes alive
func (r RuleSet) Born(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.birth[n]
}

// Next returns the next state of a cell given its current state and live neighbor count
func (r RuleSet) Next(alive bool, neighbors int) bool {
	if alive {
		return r.Survives(neighbors)
	}
	return r.Born(neighbors)
}

// Survival returns the survival counts in ascending order
func (r RuleSet) Survival() []int {
	return members(r.survival)
}

// Birth returns the birth counts in ascending order
func (r RuleSet) Birth() []int {
	return members(r.birth)
}

// String renders the rule in B/S notation, e.g. "B3/S23"
func (r RuleSet) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for _, n := range r.Birth() {
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString("/S")
	for _, n := range r.Survival() {
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

func members(set [MaxNeighbors + 1]bool) []int {
	out := make([]int, 0, len(set))
	for n, ok := range set {
		if ok {
			out = append(out, n)
		}
	}
	return out
}
