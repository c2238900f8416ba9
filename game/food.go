package game

import (
	"time"

	"golang.org/x/exp/rand"
)

// Spawner keeps the board stocked with food.
type Spawner struct {
	rng *rand.Rand
	max int
}

// NewSpawner returns a spawner that keeps up to max items out. A zero seed
// picks one from the clock.
func NewSpawner(seed uint64, max int) *Spawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if max <= 0 || max > MaxFood {
		max = MaxFood
	}
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		max: max,
	}
}

// Replenish adds food on uniformly chosen empty cells until the board holds
// the maximum or no empty cell is left. Food already out is never moved.
func (s *Spawner) Replenish(b *Board) {
	want := s.max - len(b.food)
	if want <= 0 {
		return
	}

	empty := make([]Point, 0, b.EmptyCells())
	for y := 1; y < b.height-1; y++ {
		for x := 1; x < b.width-1; x++ {
			p := Point{x, y}
			if !b.Occupied(p) && !b.HasFood(p) {
				empty = append(empty, p)
			}
		}
	}

	for ; want > 0 && len(empty) > 0; want-- {
		i := s.rng.Intn(len(empty))
		b.AddFood(empty[i])
		empty[i] = empty[len(empty)-1]
		empty = empty[:len(empty)-1]
	}
}
