// Package farm provides the deterministic farm simulation: a grid of cells,
// crops that grow through timed stages, plague agents that consume and
// spread between adjacent crops, and the money economy that ties them
// together. This package is UI-agnostic; presentation reads Snapshot values
// and issues commands.
package farm

import "fmt"

// Pos is a grid position. Row 0 is the top row.
type Pos struct {
	Row int
	Col int
}

// P is a shorthand constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Neighbours returns the four orthogonal neighbours in N, S, W, E order.
// Positions may be out of bounds.
func (p Pos) Neighbours() [4]Pos {
	return [4]Pos{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	}
}

// Cell is one grid position. A dead cell stays dead for the rest of the run.
type Cell struct {
	Pos   Pos
	Alive bool
	Crop  *Crop // nil when empty
}

// Empty returns true if the cell holds no crop.
func (c *Cell) Empty() bool {
	return c.Crop == nil
}

// Plantable returns true if the cell is alive and empty.
func (c *Cell) Plantable() bool {
	return c.Alive && c.Crop == nil
}

// Grid is a fixed-size lattice of cells stored in row-major order:
// index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid with every cell alive and empty.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = Cell{Pos: P(r, c), Alive: true}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if p lies within [0,rows) x [0,cols).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CellAt returns the cell at p, or nil when p is out of bounds.
func (g *Grid) CellAt(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[p.Row*g.cols+p.Col]
}

// Adjacent returns the in-bounds orthogonal neighbours of p in N, S, W, E
// order. No diagonals, no wraparound. An out-of-bounds p has no neighbours.
func (g *Grid) Adjacent(p Pos) []*Cell {
	if !g.InBounds(p) {
		return nil
	}
	out := make([]*Cell, 0, 4)
	for _, n := range p.Neighbours() {
		if c := g.CellAt(n); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// IsAdjacent returns true if a and b are orthogonal neighbours.
func IsAdjacent(a, b Pos) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Cells returns pointers to every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	for i := range g.cells {
		out[i] = &g.cells[i]
	}
	return out
}

// CropCount returns the number of cells holding a crop.
func (g *Grid) CropCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Crop != nil {
			n++
		}
	}
	return n
}

// DeadCount returns the number of dead cells.
func (g *Grid) DeadCount() int {
	n := 0
	for i := range g.cells {
		if !g.cells[i].Alive {
			n++
		}
	}
	return n
}
