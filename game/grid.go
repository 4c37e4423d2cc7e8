package game

// Grid is the fixed rows x columns cell store
type Grid struct {
	rows    int
	columns int
	cells   []Cell // row-major: cells[row*columns + column]
}

// NewGrid allocates an all-empty grid
func NewGrid(rows, columns int) *Grid {
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	g.Initialize()
	return g
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// Initialize fills every cell with CellEmpty
func (g *Grid) Initialize() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
}

// InBounds reports whether p lies on the board
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Column >= 0 && p.Column < g.columns
}

// Mark sets the cell at p, caller guarantees p is in bounds
func (g *Grid) Mark(p Position, c Cell) {
	g.cells[p.Row*g.columns+p.Column] = c
}

// CellAt returns the cell at p, caller guarantees p is in bounds
func (g *Grid) CellAt(p Position) Cell {
	return g.cells[p.Row*g.columns+p.Column]
}

// ClearSnakeCells resets snake cells to empty, food is left in place
func (g *Grid) ClearSnakeCells() {
	for i, c := range g.cells {
		if c == CellSnake {
			g.cells[i] = CellEmpty
		}
	}
}

// Count returns the number of cells holding c
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// EmptyPositions lists empty cells in row-major order
func (g *Grid) EmptyPositions() []Position {
	var out []Position
	for i, c := range g.cells {
		if c == CellEmpty {
			out = append(out, Position{Row: i / g.columns, Column: i % g.columns})
		}
	}
	return out
}

// Snapshot returns a deep copy indexed [row][column]
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]Cell, g.columns)
		copy(row, g.cells[r*g.columns:(r+1)*g.columns])
		out[r] = row
	}
	return out
}
