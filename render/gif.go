package render

import (
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/model"
)

// GIFRenderer collects frames into an infinitely looping animated GIF written on Close
type GIFRenderer struct {
	w       io.Writer
	style   Style
	palette color.Palette
	anim    gif.GIF
	closed  bool
}

// NewGIF returns a renderer that encodes to w when closed
func NewGIF(w io.Writer, style Style) *GIFRenderer {
	return &GIFRenderer{
		w:       w,
		style:   style,
		palette: color.Palette{style.Background, style.Foreground, style.Text},
		anim:    gif.GIF{LoopCount: 0},
	}
}

// delay converts frames per second to the GIF unit of 1/100 s
func (r *GIFRenderer) delay() int {
	fps := r.style.FPS
	if fps <= 0 {
		fps = 10
	}
	return max(100/fps, 1)
}

// Render appends a frame for g
func (r *GIFRenderer) Render(g *model.Grid, step int) error {
	w, h := r.style.FrameSize(g.Rows(), g.Columns())
	if n := len(r.anim.Image); n > 0 && r.anim.Image[n-1].Bounds() != image.Rect(0, 0, w, h) {
		return errors.Wrapf(ErrFrameSize, "[GIFRenderer.Render] step %d grid is %dx%d", step, g.Rows(), g.Columns())
	}

	img := image.NewPaletted(image.Rect(0, 0, w, h), r.palette)
	drawFrame(img, g, step, r.style)
	r.anim.Image = append(r.anim.Image, img)
	r.anim.Delay = append(r.anim.Delay, r.delay())
	return nil
}

// Frames returns how many frames have been collected
func (r *GIFRenderer) Frames() int {
	return len(r.anim.Image)
}

// Close encodes the animation. Calling Close again is a no-op.
func (r *GIFRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if len(r.anim.Image) == 0 {
		return errors.Wrap(ErrNoFrames, "[GIFRenderer.Close] failed to encode gif")
	}
	if err := gif.EncodeAll(r.w, &r.anim); err != nil {
		return errors.Wrapf(err, "[GIFRenderer.Close] failed to encode %d frames", len(r.anim.Image))
	}
	return nil
}
