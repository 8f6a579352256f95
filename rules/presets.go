package rules

/*
Named life-like rule sets.

Classic is Conway's Game of Life: a live cell survives with 2 or 3 neighbors and a dead cell is
born with exactly 3. Growth keeps Conway's birth rule but lets crowded cells survive, so patterns
such as the heart keep expanding instead of thinning out.
*/
var (
	Classic     = MustNew([]int{2, 3}, []int{3})
	Growth      = MustNew([]int{2, 3, 4, 5}, []int{3})
	HighLife    = MustNew([]int{2, 3}, []int{3, 6})
	DayAndNight = MustNew([]int{3, 4, 6, 7, 8}, []int{3, 6, 7, 8})
	Seeds       = MustNew(nil, []int{2})
	Maze        = MustNew([]int{1, 2, 3, 4, 5}, []int{3})
)

var presets = map[string]RuleSet{
	"classic":  Classic,
	"life":     Classic,
	"conway":   Classic,
	"growth":   Growth,
	"highlife": HighLife,
	"daynight": DayAndNight,
	"seeds":    Seeds,
	"maze":     Maze,
}

// Preset looks up a named rule set
func Preset(name string) (RuleSet, bool) {
	rs, ok := presets[name]
	return rs, ok
}
