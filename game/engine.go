package game

type Outcome uint8

const (
	Continue Outcome = iota
	Dead
	Won
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Dead:
		return "dead"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Cause says why a session ended in a loss.
type Cause uint8

const (
	NoCause Cause = iota
	WallCollision
	SelfCollision
	// Abandoned is a round the player quit from.
	Abandoned
)

func (c Cause) String() string {
	switch c {
	case WallCollision:
		return "hit the wall"
	case SelfCollision:
		return "ran into itself"
	case Abandoned:
		return "gave up"
	default:
		return ""
	}
}

type StepResult struct {
	Outcome Outcome
	Cause   Cause
	// Ate is set when food was eaten and the spawner should top the board up.
	Ate bool
}

// Step advances the snake one cell. turn is applied first unless it is
// DirNone or a reversal of the current heading. A Dead result leaves the
// body, food and score untouched.
func (b *Board) Step(turn Direction) StepResult {
	if turn != DirNone && turn != b.heading.Opposite() {
		b.heading = turn
	}

	head := b.Head().Add(b.heading)
	if !b.Interior(head) {
		return StepResult{Outcome: Dead, Cause: WallCollision}
	}

	food := b.foodIndex(head)
	// The tail leaves its cell on a move that doesn't eat, so the head may
	// take it.
	if b.Occupied(head) && (food >= 0 || head != b.Tail()) {
		return StepResult{Outcome: Dead, Cause: SelfCollision}
	}

	res := StepResult{Outcome: Continue}
	if food >= 0 {
		b.removeFood(food)
		b.score += PointsPerFood
		res.Ate = true
	} else {
		b.popTail()
	}
	b.push(head)

	if b.Full() {
		res.Outcome = Won
	}
	return res
}
