// Package ui draws game snapshots onto a termapp screen.
package ui

import (
	"fmt"
	"unicode/utf8"

	"github.com/rovaughn/termsnake/game"
	"github.com/rovaughn/termsnake/termapp"
)

func color(c int) termapp.Color {
	return termapp.Color{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c >> 0),
	}
}

var (
	background = termapp.Black
	text       = color(0xbcbcbc)
	dim        = color(0x4e4e4e)
	accent     = color(0x5fd7ff)
	foodColor  = color(0xffff00)
	bodyColor  = color(0x87af87)
	alert      = color(0xff5f5f)
)

const (
	title     = "[  S N A K E  ]"
	subtitle  = "eat, grow, don't bite the wall"
	controls  = "WASD/arrows move  SPACE boost  Q quit"
	foodGlyph = '✦'
	bodyGlyph = 'o'
)

var headGlyph = map[game.Direction]rune{
	game.Up:    '^',
	game.Down:  'v',
	game.Left:  '<',
	game.Right: '>',
}

// Draw paints s onto screen. The board is centred with the score line above
// it; end-of-round messages are drawn over the board.
func Draw(screen *termapp.Screen, s game.Snapshot) {
	switch s.State {
	case game.StateMenu:
		drawMenu(screen, s)
	default:
		if screen.Width() < s.Width || screen.Height() < s.Height+1 {
			drawTooSmall(screen, s)
			return
		}
		x0, y0 := origin(screen, s)
		drawBoard(screen, s, x0, y0)
		if s.State == game.StateGameOver || s.State == game.StateWin {
			drawOutcome(screen, s, x0, y0)
		}
	}
}

func origin(screen *termapp.Screen, s game.Snapshot) (int, int) {
	x0 := (screen.Width() - s.Width) / 2
	y0 := (screen.Height() - s.Height) / 2
	if y0 < 1 {
		y0 = 1
	}
	return x0, y0
}

func centered(screen *termapp.Screen, y int, back, fore termapp.Color, line string) {
	x := (screen.Width() - utf8.RuneCountInString(line)) / 2
	if x < 0 {
		x = 0
	}
	screen.Print(x, y, back, fore, line)
}

func drawMenu(screen *termapp.Screen, s game.Snapshot) {
	top := screen.Height() / 6
	if top < 1 {
		top = 1
	}
	centered(screen, top, background, accent, title)
	centered(screen, top+1, background, dim, subtitle)

	y := top + 4
	for item := game.MenuPlay; item <= game.MenuExit; item++ {
		label := fmt.Sprintf("  %-6s  ", item)
		if item == s.Menu {
			centered(screen, y, text, background, label)
		} else {
			centered(screen, y, background, text, label)
		}
		y += 2
	}

	centered(screen, y+1, background, foodColor, fmt.Sprintf("High score: %d", s.HighScore))
	centered(screen, y+3, background, dim, "ENTER select  W/S choose")
}

func drawBoard(screen *termapp.Screen, s game.Snapshot, x0, y0 int) {
	hud := fmt.Sprintf("Score: %d   High: %d", s.Score, s.HighScore)
	if s.Boosted {
		hud += "   BOOST"
	}
	screen.Print(x0, y0-1, background, text, hud)

	right, bottom := x0+s.Width-1, y0+s.Height-1
	for x := x0 + 1; x < right; x++ {
		screen.PrintRune(x, y0, background, dim, '─')
		screen.PrintRune(x, bottom, background, dim, '─')
	}
	for y := y0 + 1; y < bottom; y++ {
		screen.PrintRune(x0, y, background, dim, '│')
		screen.PrintRune(right, y, background, dim, '│')
	}
	screen.PrintRune(x0, y0, background, dim, '┌')
	screen.PrintRune(right, y0, background, dim, '┐')
	screen.PrintRune(x0, bottom, background, dim, '└')
	screen.PrintRune(right, bottom, background, dim, '┘')

	for _, p := range s.Food {
		screen.PrintRune(x0+p.X, y0+p.Y, background, foodColor, foodGlyph)
	}
	// Tail first so the head wins if a frame ever shows an overlap.
	for i := len(s.Snake) - 1; i > 0; i-- {
		p := s.Snake[i]
		screen.PrintRune(x0+p.X, y0+p.Y, background, bodyColor, bodyGlyph)
	}
	if len(s.Snake) > 0 {
		head := s.Snake[0]
		screen.PrintRune(x0+head.X, y0+head.Y, background, accent, headGlyph[s.Heading])
	}

	if y := bottom + 1; y < screen.Height() {
		centered(screen, y, background, dim, controls)
	}
}

func drawOutcome(screen *termapp.Screen, s game.Snapshot, x0, y0 int) {
	headline, fore := " YOU LOSE ", alert
	if s.State == game.StateWin {
		headline, fore = " YOU WIN! ", foodColor
	}

	lines := []string{headline, fmt.Sprintf(" Final score: %d ", s.Score)}
	if s.Cause != game.NoCause {
		lines = append(lines, fmt.Sprintf(" The snake %s ", s.Cause))
	}
	if s.NewRecord {
		lines = append(lines, " New high score! ")
	}
	lines = append(lines, " Press ENTER ")

	y := y0 + (s.Height-len(lines))/2
	for i, line := range lines {
		c := text
		if i == 0 {
			c = fore
		}
		x := x0 + (s.Width-utf8.RuneCountInString(line))/2
		screen.Print(x, y+i, background, c, line)
	}
}

func drawTooSmall(screen *termapp.Screen, s game.Snapshot) {
	msg := fmt.Sprintf("terminal too small: need %dx%d", s.Width, s.Height+1)
	centered(screen, screen.Height()/2, background, alert, msg)
}
