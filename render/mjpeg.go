package render

import (
	"bytes"
	"image/jpeg"

	"github.com/icza/mjpeg"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-gif/model"
)

const jpegQuality = 90

// MJPEGRenderer streams frames into a Motion-JPEG AVI file
type MJPEGRenderer struct {
	aw            mjpeg.AviWriter
	style         Style
	rows, columns int
	buf           bytes.Buffer
}

// NewMJPEG creates the AVI file at path sized for a rows x columns grid
func NewMJPEG(path string, rows, columns int, style Style) (*MJPEGRenderer, error) {
	w, h := style.FrameSize(rows, columns)
	fps := style.FPS
	if fps <= 0 {
		fps = 10
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, errors.Wrapf(err, "[NewMJPEG] failed to create video: %+v", path)
	}
	return &MJPEGRenderer{aw: aw, style: style, rows: rows, columns: columns}, nil
}

// Render encodes g as a JPEG frame and appends it to the video
func (r *MJPEGRenderer) Render(g *model.Grid, step int) error {
	if g.Rows() != r.rows || g.Columns() != r.columns {
		return errors.Wrapf(ErrFrameSize, "[MJPEGRenderer.Render] step %d grid is %dx%d, video is %dx%d",
			step, g.Rows(), g.Columns(), r.rows, r.columns)
	}
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, Frame(g, step, r.style), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return errors.Wrapf(err, "[MJPEGRenderer.Render] failed to encode step: %+v", step)
	}
	if err := r.aw.AddFrame(r.buf.Bytes()); err != nil {
		return errors.Wrapf(err, "[MJPEGRenderer.Render] failed to add step: %+v", step)
	}
	return nil
}

// Close finalizes the AVI index and closes the file
func (r *MJPEGRenderer) Close() error {
	if err := r.aw.Close(); err != nil {
		return errors.Wrap(err, "[MJPEGRenderer.Close] failed to close video")
	}
	return nil
}
