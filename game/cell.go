package game

// Cell is the content of one board square
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	default:
		return "invalid"
	}
}
