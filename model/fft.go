package model

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTCounter counts neighbors as a circular 2-D convolution of the grid with the 8-neighbor
// kernel, computed in the frequency domain. Circular convolution wraps at the edges exactly
// like the torus does. Plans are rebuilt when the grid dimensions change.
type FFTCounter struct {
	rows, columns int
	halfC         int
	norm          float64

	rowFFT     *fourier.FFT
	colFFT     *fourier.CmplxFFT
	kernelFreq []complex128 // rows x halfC
	freq       []complex128 // rows x halfC
	col        []complex128
	line       []float64
}

// NewFFTCounter returns an FFTCounter with no plan; the first Count builds one
func NewFFTCounter() *FFTCounter {
	return &FFTCounter{}
}

// Name implements NeighborCounter
func (*FFTCounter) Name() string { return "fft" }

func (c *FFTCounter) plan(rows, columns int) {
	if c.rows == rows && c.columns == columns && c.rowFFT != nil {
		return
	}
	c.rows, c.columns = rows, columns
	c.halfC = columns/2 + 1
	c.norm = 1 / float64(rows*columns)
	c.rowFFT = fourier.NewFFT(columns)
	c.colFFT = fourier.NewCmplxFFT(rows)
	c.freq = make([]complex128, rows*c.halfC)
	c.kernelFreq = make([]complex128, rows*c.halfC)
	c.col = make([]complex128, rows)
	c.line = make([]float64, columns)

	// offsets that alias on tiny grids accumulate, matching the literal count
	kernel := make([]float64, rows*columns)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			kernel[wrap(dy, rows)*columns+wrap(dx, columns)]++
		}
	}
	for y := range rows {
		c.rowFFT.Coefficients(c.kernelFreq[y*c.halfC:(y+1)*c.halfC], kernel[y*columns:(y+1)*columns])
	}
	c.columnsForward(c.kernelFreq)
}

func (c *FFTCounter) columnsForward(buf []complex128) {
	for x := range c.halfC {
		for y := range c.rows {
			c.col[y] = buf[y*c.halfC+x]
		}
		c.colFFT.Coefficients(c.col, c.col)
		for y := range c.rows {
			buf[y*c.halfC+x] = c.col[y]
		}
	}
}

func (c *FFTCounter) columnsInverse(buf []complex128) {
	for x := range c.halfC {
		for y := range c.rows {
			c.col[y] = buf[y*c.halfC+x]
		}
		c.colFFT.Sequence(c.col, c.col)
		for y := range c.rows {
			buf[y*c.halfC+x] = c.col[y]
		}
	}
}

// Count implements NeighborCounter
func (c *FFTCounter) Count(g *Grid, counts []uint8) {
	c.plan(g.rows, g.columns)

	for y := range c.rows {
		for x := range c.columns {
			c.line[x] = 0
			if g.cells[y][x] {
				c.line[x] = 1
			}
		}
		c.rowFFT.Coefficients(c.freq[y*c.halfC:(y+1)*c.halfC], c.line)
	}
	c.columnsForward(c.freq)

	for i := range c.freq {
		c.freq[i] *= c.kernelFreq[i]
	}

	c.columnsInverse(c.freq)
	for y := range c.rows {
		c.rowFFT.Sequence(c.line, c.freq[y*c.halfC:(y+1)*c.halfC])
		base := y * c.columns
		for x := range c.columns {
			v := math.Round(c.line[x] * c.norm)
			counts[base+x] = uint8(min(max(v, 0), 8))
		}
	}
}
