package game

// Snake is an ordered run of positions, index 0 is the head
// segments has fixed capacity rows*columns; only segments[:length] is live
type Snake struct {
	segments []Position
	length   int
}

// NewSnake allocates storage for a snake that can cover the whole board
func NewSnake(capacity int) *Snake {
	return &Snake{segments: make([]Position, capacity)}
}

// Initialize lays length segments on the centre column, head on the centre
// cell and the body extending upward, and marks them on grid
func (s *Snake) Initialize(grid *Grid, length int) {
	row := grid.Rows() / 2
	column := grid.Columns() / 2
	for i := 0; i < length; i++ {
		p := Position{Row: row - i, Column: column}
		s.segments[i] = p
		grid.Mark(p, CellSnake)
	}
	s.length = length
}

// ShiftInto moves every live segment one slot toward the tail and writes
// newHead at index 0. When growing, the old tail is kept in slot length and
// the live length grows by one; otherwise the old tail is dropped.
func (s *Snake) ShiftInto(newHead Position, growing bool) {
	last := s.length - 1
	if growing {
		last = s.length
	}
	for i := last; i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}
	s.segments[0] = newHead
	if growing {
		s.length++
	}
}

// MarkOn marks every live segment as a snake cell
func (s *Snake) MarkOn(grid *Grid) {
	for _, p := range s.segments[:s.length] {
		grid.Mark(p, CellSnake)
	}
}

func (s *Snake) Head() Position { return s.segments[0] }
func (s *Snake) Len() int       { return s.length }

// Segments returns a copy of the live segments, head first
func (s *Snake) Segments() []Position {
	out := make([]Position, s.length)
	copy(out, s.segments[:s.length])
	return out
}
