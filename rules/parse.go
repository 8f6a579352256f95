package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Parse reads a rule from a preset name, B/S notation ("B3/S23", "s23/b3") or the legacy S/B
// digit form ("23/3").
func Parse(s string) (RuleSet, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rs, ok := Preset(s); ok {
		return rs, nil
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] expected two '/'-separated parts: %+v", s)
	}

	var (
		survival, birth         []int
		haveSurvival, haveBirth bool
	)
	for _, part := range parts {
		var (
			counts []int
			err    error
		)
		switch {
		case strings.HasPrefix(part, "b"):
			if haveBirth {
				return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] birth given twice: %+v", s)
			}
			counts, err = digits(part[1:])
			birth, haveBirth = counts, true
		case strings.HasPrefix(part, "s"):
			if haveSurvival {
				return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] survival given twice: %+v", s)
			}
			counts, err = digits(part[1:])
			survival, haveSurvival = counts, true
		case !haveSurvival:
			counts, err = digits(part)
			survival, haveSurvival = counts, true
		default:
			counts, err = digits(part)
			birth, haveBirth = counts, true
		}
		if err != nil {
			return RuleSet{}, errors.Wrapf(err, "[Parse] failed to read rule: %+v", s)
		}
	}

	if !haveSurvival || !haveBirth {
		return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] rule needs both birth and survival: %+v", s)
	}
	return New(survival, birth)
}

func digits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, errors.Wrapf(ErrInvalidRule, "[digits] not a neighbor count: %q", r)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}
