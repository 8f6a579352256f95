package model

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// Grid is a rows x columns board of binary cells whose neighborhoods wrap around both edges
type Grid struct {
	rows    int
	columns int
	cells   [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, columns int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns of the grid
func (g *Grid) Columns() int {
	return g.columns
}

// Reset resets the grid to new dimensions, all cells dead
func (g *Grid) Reset(rows, columns int) {
	g.rows = rows
	g.columns = columns

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != columns {
			g.cells[i] = make([]bool, columns)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for i := range g.rows {
		clear(g.cells[i])
	}
}

// Set sets a cell to alive (true) or dead (false). Out-of-range positions are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if row >= 0 && row < g.rows && col >= 0 && col < g.columns {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell. Out-of-range positions read as dead.
func (g *Grid) Get(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.columns {
		return false
	}
	return g.cells[row][col]
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.columns)
	for i := range g.rows {
		copy(c.cells[i], g.cells[i])
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for i := range g.rows {
		for j := range g.columns {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

func wrap(v, n int) int {
	return (v%n + n) % n
}

// NeighborCoords returns the 8 toroidally wrapped positions around (row, col), row-major from
// the upper-left neighbor. On grids narrower than 3 cells some positions repeat.
func (g *Grid) NeighborCoords(row, col int) [8][2]int {
	var (
		out [8][2]int
		k   int
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			out[k] = [2]int{wrap(row+dy, g.rows), wrap(col+dx, g.columns)}
			k++
		}
	}
	return out
}

// CountNeighbors counts living cells among the 8 wrapped neighbor positions of (row, col)
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0
	for _, p := range g.NeighborCoords(row, col) {
		if g.cells[p[0]][p[1]] {
			count++
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for i := range g.rows {
		for j := range g.columns {
			if g.cells[i][j] {
				count++
			}
		}
	}
	return
}

// GetBoundingBoxSize returns the area of the smallest rectangle holding every living cell
func (g *Grid) GetBoundingBoxSize() int {
	minRow, maxRow, minCol, maxCol := g.rows, -1, g.columns, -1
	for i := range g.rows {
		for j := range g.columns {
			if g.cells[i][j] {
				minRow = min(minRow, i)
				maxRow = max(maxRow, i)
				minCol = min(minCol, j)
				maxCol = max(maxCol, j)
			}
		}
	}
	if maxRow < 0 {
		return 0
	}
	return (maxRow - minRow + 1) * (maxCol - minCol + 1)
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	row := make([]byte, g.columns)
	for i := range g.rows {
		for j := range g.columns {
			row[j] = 0
			if g.cells[i][j] {
				row[j] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// PlaceCentered stamps the pattern so that its middle lands on (centerRow, centerCol).
// Nothing is written and false is returned when the pattern would cross the grid boundary.
func (g *Grid) PlaceCentered(p Pattern, centerRow, centerCol int) bool {
	height, width := p.Height(), p.Width()
	startRow := centerRow - height/2
	startCol := centerCol - width/2

	if startRow < 0 || startCol < 0 || startRow+height > g.rows || startCol+width > g.columns {
		return false
	}
	for i, row := range p {
		for j := range width {
			g.cells[startRow+i][startCol+j] = j < len(row) && row[j]
		}
	}
	return true
}

// String draws the grid with '#' for living and '.' for dead cells, one line per row
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for i := range g.rows {
		for j := range g.columns {
			if g.cells[i][j] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
