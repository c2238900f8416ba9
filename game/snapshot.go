package game

import "time"

// Snapshot is a copy of everything the renderer needs for one frame.
// Renderers must treat the slices as read-only.
type Snapshot struct {
	State     State
	Menu      MenuItem
	Width     int
	Height    int
	Snake     []Point // head first
	Food      []Point
	Heading   Direction
	Score     int
	HighScore int
	Cause     Cause
	Boosted   bool
	NewRecord bool
	Played    time.Duration
}

func (c *Controller) Snapshot() Snapshot {
	var s Snapshot
	switch c.state {
	case StatePlaying:
		s = c.boardSnapshot()
	case StateGameOver, StateWin:
		s = c.final
	default:
		s.Width, s.Height = c.settings.Width, c.settings.Height
	}
	s.State = c.state
	s.Menu = c.menu
	s.HighScore = c.high
	s.Cause = c.cause
	s.Boosted = c.clock.Boosted()
	s.NewRecord = c.newRecord
	return s
}

func (c *Controller) boardSnapshot() Snapshot {
	return Snapshot{
		Width:   c.board.Width(),
		Height:  c.board.Height(),
		Snake:   c.board.Snake(),
		Food:    c.board.Food(),
		Heading: c.board.Heading(),
		Score:   c.board.Score(),
	}
}
