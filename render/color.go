package render

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrInvalidColor is returned for color strings that are neither a known name nor #rrggbb
var ErrInvalidColor = errors.New("invalid color")

var namedColors = map[string]drawing.Color{
	"white": drawing.ColorWhite,
	"black": drawing.ColorBlack,
	"red":   drawing.ColorRed,
	"green": drawing.ColorGreen,
	"blue":  drawing.ColorBlue,
	"pink":  drawing.ColorFromHex("f77877"),
}

// ParseColor reads a named color or a hex color in #rgb / #rrggbb form
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	c, ok := namedColors[s]
	if !ok {
		hex := strings.TrimPrefix(s, "#")
		if (len(hex) != 3 && len(hex) != 6) || strings.Trim(hex, "0123456789abcdef") != "" {
			return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "[ParseColor] unrecognized color: %+v", s)
		}
		c = drawing.ColorFromHex(hex)
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}
