package ui

import (
	"strings"
	"testing"

	"github.com/rovaughn/termsnake/game"
	"github.com/rovaughn/termsnake/termapp"
)

func contains(screen *termapp.Screen, want string) bool {
	for y := 0; y < screen.Height(); y++ {
		if strings.Contains(screen.Line(y), want) {
			return true
		}
	}
	return false
}

func playing() game.Snapshot {
	return game.Snapshot{
		State:     game.StatePlaying,
		Width:     10,
		Height:    6,
		Snake:     []game.Point{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:      []game.Point{{X: 7, Y: 4}},
		Heading:   game.Right,
		Score:     20,
		HighScore: 50,
	}
}

func TestDrawMenu(t *testing.T) {
	screen := termapp.NewScreen(80, 24)
	Draw(screen, game.Snapshot{State: game.StateMenu, Menu: game.MenuExit, HighScore: 120})

	for _, want := range []string{title, "Play", "Exit", "High score: 120"} {
		if !contains(screen, want) {
			t.Errorf("menu is missing %q", want)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	screen := termapp.NewScreen(30, 10)
	s := playing()
	Draw(screen, s)

	x0, y0 := origin(screen, s)
	if got := screen.Rune(x0+3, y0+2); got != '>' {
		t.Errorf("head = %q, want '>'", got)
	}
	if got := screen.Rune(x0+1, y0+2); got != bodyGlyph {
		t.Errorf("tail = %q", got)
	}
	if got := screen.Rune(x0+7, y0+4); got != foodGlyph {
		t.Errorf("food = %q", got)
	}
	if got := screen.Rune(x0, y0); got != '┌' {
		t.Errorf("corner = %q", got)
	}
	if !contains(screen, "Score: 20   High: 50") {
		t.Error("missing score line")
	}
	if contains(screen, "BOOST") {
		t.Error("boost shown while not boosting")
	}
}

func TestDrawOutcome(t *testing.T) {
	screen := termapp.NewScreen(40, 12)
	s := playing()
	s.State = game.StateGameOver
	s.Cause = game.WallCollision
	s.NewRecord = true
	s.Width = 30
	Draw(screen, s)

	for _, want := range []string{"YOU LOSE", "Final score: 20", "hit the wall", "New high score!", "Press ENTER"} {
		if !contains(screen, want) {
			t.Errorf("game over screen is missing %q", want)
		}
	}

	screen = termapp.NewScreen(40, 12)
	s.State = game.StateWin
	s.Cause = game.NoCause
	s.NewRecord = false
	Draw(screen, s)
	if !contains(screen, "YOU WIN!") || contains(screen, "New high score!") {
		t.Error("unexpected win screen")
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := termapp.NewScreen(40, 5)
	s := playing()
	s.Width = 42
	Draw(screen, s)
	if !contains(screen, "terminal too small") {
		t.Error("missing size warning")
	}
}
