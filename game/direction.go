// Package game holds the snake rules and the state machine that drives a
// session. It does no terminal I/O; rendering and raw key input are
// collaborators wired up by the command.
package game

// Direction is a heading on the board. The zero value DirNone means "no
// change requested".
type Direction uint8

const (
	DirNone Direction = iota
	Up
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "None"
	}
}

// Delta returns the unit step for d. Up decreases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return DirNone
	}
}

// Point is a cell coordinate. The board's wall ring sits at x == 0,
// y == 0, x == width-1 and y == height-1.
type Point struct {
	X, Y int
}

func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{p.X + dx, p.Y + dy}
}
