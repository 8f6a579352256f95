package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/sheikhrachel/go-gol-gif/model"
)

const (
	titlePadding = 4
)

var (
	// ErrNoFrames is returned when closing an animation that never received a frame
	ErrNoFrames = errors.New("no frames rendered")
	// ErrFrameSize is returned when a grid does not match the frame size a renderer was opened with
	ErrFrameSize = errors.New("grid does not match frame size")
)

// Renderer consumes one grid snapshot per generation
type Renderer interface {
	Render(g *model.Grid, step int) error
	Close() error
}

// Style controls how a grid is turned into a frame
type Style struct {
	CellSize   int
	Background color.RGBA
	Foreground color.RGBA
	Text       color.RGBA
	ShowTitle  bool
	FPS        int
}

// DefaultStyle returns white dead cells, pink living cells and a "Step: N" title at 10 fps
func DefaultStyle() Style {
	return Style{
		CellSize:   8,
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground: color.RGBA{R: 0xf7, G: 0x78, B: 0x77, A: 0xff},
		Text:       color.RGBA{A: 0xff},
		ShowTitle:  true,
		FPS:        10,
	}
}

func (s Style) titleHeight() int {
	if !s.ShowTitle {
		return 0
	}
	return basicfont.Face7x13.Height + 2*titlePadding
}

// FrameSize returns the pixel size of a frame for a rows x columns grid
func (s Style) FrameSize(rows, columns int) (width, height int) {
	cell := max(s.CellSize, 1)
	return columns * cell, rows*cell + s.titleHeight()
}

// Title returns the label drawn above a frame
func Title(step int) string {
	return fmt.Sprintf("Step: %d", step)
}

// drawFrame paints g onto dst, which must be at least FrameSize large
func drawFrame(dst draw.Image, g *model.Grid, step int, s Style) {
	cell := max(s.CellSize, 1)
	draw.Draw(dst, dst.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)

	top := s.titleHeight()
	if s.ShowTitle {
		width, _ := s.FrameSize(g.Rows(), g.Columns())
		label := Title(step)
		textWidth := font.MeasureString(basicfont.Face7x13, label).Ceil()
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(s.Text),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(max((width-textWidth)/2, 0), titlePadding+basicfont.Face7x13.Ascent),
		}
		d.DrawString(label)
	}

	fg := image.NewUniform(s.Foreground)
	for i := range g.Rows() {
		for j := range g.Columns() {
			if !g.Get(i, j) {
				continue
			}
			r := image.Rect(j*cell, top+i*cell, (j+1)*cell, top+(i+1)*cell)
			draw.Draw(dst, r, fg, image.Point{}, draw.Src)
		}
	}
}

// Frame renders g into a new RGBA image
func Frame(g *model.Grid, step int, s Style) *image.RGBA {
	w, h := s.FrameSize(g.Rows(), g.Columns())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	drawFrame(img, g, step, s)
	return img
}
