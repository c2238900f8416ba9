package game

import (
	"errors"
	"fmt"
)

// Rules that are not configurable.
const (
	BoardWidth    = 42 // including walls
	BoardHeight   = 22 // including walls
	MaxFood       = 3
	PointsPerFood = 10
	FrameRate     = 60
	BoostFactor   = 1.2
)

var (
	ErrEmptySnake = errors.New("snake needs at least one segment")
	ErrNoHeading  = errors.New("snake needs a heading")
)

// Board is the state of one playing session: the snake, the food on the
// board and the score. It is created when a session starts and dropped when
// it ends.
type Board struct {
	width, height int

	// body is stored tail first so that growing at the head is an append
	// and moving the tail is a reslice.
	body     []Point
	occupied []bool
	food     []Point
	heading  Direction
	score    int
}

// NewBoard builds a board of the given outer size (walls included) with a
// snake whose cells are listed head first.
func NewBoard(width, height int, heading Direction, body ...Point) (*Board, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("board %dx%d has no interior", width, height)
	}
	if len(body) == 0 {
		return nil, ErrEmptySnake
	}
	if heading == DirNone {
		return nil, ErrNoHeading
	}

	b := &Board{
		width:    width,
		height:   height,
		body:     make([]Point, 0, len(body)),
		occupied: make([]bool, width*height),
		heading:  heading,
	}
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if !b.Interior(p) {
			return nil, fmt.Errorf("snake cell %v is outside the interior", p)
		}
		if b.Occupied(p) {
			return nil, fmt.Errorf("snake cell %v is repeated", p)
		}
		b.push(p)
	}
	return b, nil
}

// StartBoard returns the board a new session begins with: a three segment
// snake in the middle row with its head at the centre, heading right.
func StartBoard(width, height int) *Board {
	cx, cy := width/2, height/2
	body := []Point{{cx, cy}}
	for x := cx - 1; x >= cx-2 && x >= 1; x-- {
		body = append(body, Point{x, cy})
	}
	b, err := NewBoard(width, height, Right, body...)
	if err != nil {
		panic(fmt.Sprintf("start board %dx%d: %v", width, height, err))
	}
	return b
}

func (b *Board) Width() int         { return b.width }
func (b *Board) Height() int        { return b.height }
func (b *Board) Heading() Direction { return b.heading }
func (b *Board) Score() int         { return b.score }
func (b *Board) Len() int           { return len(b.body) }
func (b *Board) Head() Point        { return b.body[len(b.body)-1] }
func (b *Board) Tail() Point        { return b.body[0] }
func (b *Board) InteriorCells() int { return (b.width - 2) * (b.height - 2) }
func (b *Board) EmptyCells() int    { return b.InteriorCells() - len(b.body) - len(b.food) }
func (b *Board) Full() bool         { return len(b.body) == b.InteriorCells() }
func (b *Board) index(p Point) int  { return p.Y*b.width + p.X }

func (b *Board) Interior(p Point) bool {
	return p.X > 0 && p.Y > 0 && p.X < b.width-1 && p.Y < b.height-1
}

// Occupied reports whether a snake segment is on p.
func (b *Board) Occupied(p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= b.width || p.Y >= b.height {
		return false
	}
	return b.occupied[b.index(p)]
}

// Snake returns a copy of the body, head first.
func (b *Board) Snake() []Point {
	out := make([]Point, len(b.body))
	for i, p := range b.body {
		out[len(b.body)-1-i] = p
	}
	return out
}

func (b *Board) Food() []Point {
	return append([]Point(nil), b.food...)
}

func (b *Board) HasFood(p Point) bool {
	return b.foodIndex(p) >= 0
}

// AddFood places food on p if p is an empty interior cell and fewer than
// MaxFood items are out.
func (b *Board) AddFood(p Point) bool {
	if len(b.food) >= MaxFood || !b.Interior(p) || b.Occupied(p) || b.HasFood(p) {
		return false
	}
	b.food = append(b.food, p)
	return true
}

func (b *Board) foodIndex(p Point) int {
	for i, f := range b.food {
		if f == p {
			return i
		}
	}
	return -1
}

func (b *Board) removeFood(i int) {
	b.food = append(b.food[:i], b.food[i+1:]...)
}

func (b *Board) push(p Point) {
	b.body = append(b.body, p)
	b.occupied[b.index(p)] = true
}

func (b *Board) popTail() {
	b.occupied[b.index(b.body[0])] = false
	b.body = b.body[1:]
}
