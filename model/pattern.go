package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a rectangular block of cells stamped onto a grid at construction.
// Rows shorter than the widest row are padded with dead cells.
type Pattern [][]bool

// ParsePattern builds a pattern from text rows where '#', 'O', '*' and '1' mark living cells
func ParsePattern(lines ...string) Pattern {
	p := make(Pattern, len(lines))
	for i, line := range lines {
		p[i] = make([]bool, len(line))
		for j, r := range line {
			switch r {
			case '#', 'O', 'o', '*', '1':
				p[i][j] = true
			}
		}
	}
	return p
}

// Height returns the number of rows of the pattern
func (p Pattern) Height() int {
	return len(p)
}

// Width returns the length of the widest row of the pattern
func (p Pattern) Width() int {
	w := 0
	for _, row := range p {
		w = max(w, len(row))
	}
	return w
}

var patterns = map[string]Pattern{
	"heart": ParsePattern(
		".##.##.",
		"#######",
		"#######",
		".#####.",
		"..###..",
		"...#...",
	),
	"glider": ParsePattern(
		".#.",
		"..#",
		"###",
	),
	"blinker": ParsePattern("###"),
	"block": ParsePattern(
		"##",
		"##",
	),
	"beacon": ParsePattern(
		"##..",
		"##..",
		"..##",
		"..##",
	),
	"r-pentomino": ParsePattern(
		".##",
		"##.",
		".#.",
	),
}

// LookupPattern returns a copy of a registered pattern by name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] no pattern named: %+v", name)
	}
	out := make(Pattern, len(p))
	for i := range p {
		out[i] = append([]bool(nil), p[i]...)
	}
	return out, nil
}

// PatternNames lists the registered pattern names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
