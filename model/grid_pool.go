package model

import "sync"

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles generation buffers between Advance calls
type GridPool struct {
	pool sync.Pool
}

// NewGridPool creates an empty pool; grids are allocated on demand
func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid from the pool, resized to the given dimensions
func (p *GridPool) Get(rows, columns int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(rows, columns)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
