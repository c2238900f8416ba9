package game

import (
	"reflect"
	"testing"
)

func mustBoard(t *testing.T, width, height int, heading Direction, body ...Point) *Board {
	t.Helper()
	b, err := NewBoard(width, height, heading, body...)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewBoardValidates(t *testing.T) {
	tests := []struct {
		name    string
		heading Direction
		body    []Point
	}{
		{"empty", Right, nil},
		{"no heading", DirNone, []Point{{2, 2}}},
		{"on the wall", Right, []Point{{0, 2}}},
		{"repeated", Right, []Point{{2, 2}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBoard(6, 6, tt.heading, tt.body...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestStartBoard(t *testing.T) {
	b := StartBoard(BoardWidth, BoardHeight)
	want := []Point{{21, 11}, {20, 11}, {19, 11}}
	if !reflect.DeepEqual(b.Snake(), want) {
		t.Fatalf("Snake() = %v, want %v", b.Snake(), want)
	}
	if b.Heading() != Right || b.Score() != 0 {
		t.Fatalf("heading %v score %d", b.Heading(), b.Score())
	}
	if b.InteriorCells() != 40*20 {
		t.Fatalf("InteriorCells() = %d", b.InteriorCells())
	}
}

func TestStepMoves(t *testing.T) {
	b := mustBoard(t, 8, 8, Right, Point{3, 3}, Point{2, 3})
	res := b.Step(DirNone)
	if res != (StepResult{Outcome: Continue}) {
		t.Fatalf("Step = %+v", res)
	}
	if want := []Point{{4, 3}, {3, 3}}; !reflect.DeepEqual(b.Snake(), want) {
		t.Fatalf("Snake() = %v, want %v", b.Snake(), want)
	}
	if b.Occupied(Point{2, 3}) {
		t.Fatal("old tail cell still occupied")
	}
}

func TestStepWallCollision(t *testing.T) {
	b := mustBoard(t, 6, 6, Up, Point{1, 1})
	res := b.Step(DirNone)
	if res.Outcome != Dead || res.Cause != WallCollision {
		t.Fatalf("Step = %+v, want wall collision", res)
	}
	if b.Head() != (Point{1, 1}) {
		t.Fatal("dead step moved the snake")
	}

	b = mustBoard(t, 6, 6, Up, Point{3, 1})
	if res := b.Step(Right); res.Cause != NoCause {
		t.Fatalf("Step(Right) = %+v", res)
	}
	if res := b.Step(DirNone); res.Cause != WallCollision {
		t.Fatalf("Step = %+v, want wall collision", res)
	}
}

func TestStepSelfCollision(t *testing.T) {
	// A hook: turning up from (3,3) runs into (3,2).
	b := mustBoard(t, 8, 8, Left, Point{3, 3}, Point{4, 3}, Point{4, 2}, Point{3, 2}, Point{2, 2})
	res := b.Step(Up)
	if res.Outcome != Dead || res.Cause != SelfCollision {
		t.Fatalf("Step = %+v, want self collision", res)
	}
	if b.Len() != 5 {
		t.Fatalf("Len() = %d", b.Len())
	}
}

func TestStepIntoVacatedTail(t *testing.T) {
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	b := mustBoard(t, 8, 8, Left, Point{2, 3}, Point{3, 3}, Point{3, 2}, Point{2, 2})
	res := b.Step(Up)
	if res.Outcome != Continue {
		t.Fatalf("Step = %+v, want continue", res)
	}
	if want := []Point{{2, 2}, {2, 3}, {3, 3}, {3, 2}}; !reflect.DeepEqual(b.Snake(), want) {
		t.Fatalf("Snake() = %v, want %v", b.Snake(), want)
	}
	if !b.Occupied(Point{2, 2}) {
		t.Fatal("head cell not marked occupied")
	}
}

func TestStepIntoTailWhileEatingDies(t *testing.T) {
	b := mustBoard(t, 8, 8, Left, Point{2, 3}, Point{3, 3}, Point{3, 2}, Point{2, 2})
	// Food can't sit under the snake, so force it there directly.
	b.food = append(b.food, Point{2, 2})
	res := b.Step(Up)
	if res.Outcome != Dead || res.Cause != SelfCollision {
		t.Fatalf("Step = %+v, want self collision", res)
	}
}

func TestStepRejectsReversal(t *testing.T) {
	b := mustBoard(t, 8, 8, Right, Point{3, 3}, Point{2, 3})
	if res := b.Step(Left); res.Outcome != Continue {
		t.Fatalf("Step(Left) = %+v", res)
	}
	if b.Heading() != Right || b.Head() != (Point{4, 3}) {
		t.Fatalf("heading %v head %v; reversal should be ignored", b.Heading(), b.Head())
	}
}

func TestStepEats(t *testing.T) {
	b := mustBoard(t, 10, 6, Right, Point{2, 2})
	for x := 3; x <= 5; x++ {
		if !b.AddFood(Point{x, 2}) {
			t.Fatalf("AddFood(%d,2) refused", x)
		}
	}
	for i := 0; i < 3; i++ {
		res := b.Step(DirNone)
		if res.Outcome != Continue || !res.Ate {
			t.Fatalf("step %d = %+v, want eat", i, res)
		}
	}
	if b.Score() != 30 || b.Len() != 4 || len(b.Food()) != 0 {
		t.Fatalf("score %d len %d food %v", b.Score(), b.Len(), b.Food())
	}
	if res := b.Step(DirNone); res.Ate {
		t.Fatal("ate without food")
	}
	if b.Len() != 4 {
		t.Fatalf("Len() = %d after a plain move", b.Len())
	}
}

// serpentine lists every interior cell of a width x height board, row by row,
// alternating direction.
func serpentine(width, height int) []Point {
	var path []Point
	for y := 1; y < height-1; y++ {
		if y%2 == 1 {
			for x := 1; x < width-1; x++ {
				path = append(path, Point{x, y})
			}
		} else {
			for x := width - 2; x >= 1; x-- {
				path = append(path, Point{x, y})
			}
		}
	}
	return path
}

func directionTo(from, to Point) Direction {
	switch {
	case to.X > from.X:
		return Right
	case to.X < from.X:
		return Left
	case to.Y > from.Y:
		return Down
	default:
		return Up
	}
}

func TestStepWinsWhenBoardIsFull(t *testing.T) {
	path := serpentine(6, 6)
	if len(path) != 16 {
		t.Fatalf("path covers %d cells", len(path))
	}

	b := mustBoard(t, 6, 6, Right, path[0])
	for i := 1; i < len(path); i++ {
		if !b.AddFood(path[i]) {
			t.Fatalf("AddFood(%v) refused", path[i])
		}
		res := b.Step(directionTo(path[i-1], path[i]))
		want := Continue
		if i == len(path)-1 {
			want = Won
		}
		if res.Outcome != want || !res.Ate {
			t.Fatalf("step %d = %+v, want %v", i, res, want)
		}
	}
	if b.Len() != 16 || b.EmptyCells() != 0 {
		t.Fatalf("len %d empty %d", b.Len(), b.EmptyCells())
	}
}

func TestSnakeNeverOverlapsItself(t *testing.T) {
	b := mustBoard(t, 12, 12, Right, Point{5, 5}, Point{4, 5}, Point{3, 5})
	s := NewSpawner(99, MaxFood)
	s.Replenish(b)

	turns := []Direction{Right, Down, Left, Up}
	for i := 0; i < 500; i++ {
		res := b.Step(turns[(i/3)%len(turns)])
		if res.Ate {
			s.Replenish(b)
		}
		seen := make(map[Point]bool)
		for _, p := range b.Snake() {
			if seen[p] {
				t.Fatalf("step %d: cell %v occupied twice", i, p)
			}
			seen[p] = true
		}
		for _, f := range b.Food() {
			if seen[f] {
				t.Fatalf("step %d: food %v under the snake", i, f)
			}
		}
		if res.Outcome != Continue {
			return
		}
	}
}
