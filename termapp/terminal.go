package termapp

import (
	"fmt"
	"golang.org/x/crypto/ssh/terminal"
	"io"
	"os"
	"strconv"
	"sync"
	"unicode/utf8"
)

// Opportunities for optimization:
// - We don't need to set the foreground color of the cursor if we're just
//   changing the background color of a blank cell.
// - If a cell is blank we can ignore any foreground color change.
// - We might be able to make color specifications shorter if it matches a
//   "standard" color.

// CSI is "\x1b["

type Color struct {
	R, G, B uint8
}

type Style struct {
	fore Color
	back Color
}

type Cell struct {
	Style
	text rune
}

type Cursor struct {
	Style
	x, y    int
	visible bool
}

// Screen is one frame. Render functions build a fresh Screen and the
// Terminal diffs it against what is already on the display.
type Screen struct {
	width, height int
	cells         []Cell
	cursor        Cursor
}

func NewScreen(width, height int) *Screen {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

var Black = Color{0x00, 0x00, 0x00}
var White = Color{0xff, 0xff, 0xff}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Print writes text starting at (x, y). Text running past the right edge is
// clipped; nothing wraps.
func (s *Screen) Print(x, y int, back, fore Color, text string) {
	for _, r := range text {
		s.PrintRune(x, y, back, fore, r)
		x++
	}
}

func (s *Screen) PrintRune(x, y int, back, fore Color, r rune) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{
		Style: Style{
			back: back,
			fore: fore,
		},
		text: r,
	}
}

// Rune returns the character at (x, y), or 0 for blank or out of range cells.
func (s *Screen) Rune(x, y int) rune {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.cells[y*s.width+x].text
}

// Line returns row y as a string with blank cells as spaces.
func (s *Screen) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	line := make([]rune, s.width)
	for x := range line {
		line[x] = s.cells[y*s.width+x].text
		if line[x] == 0 {
			line[x] = ' '
		}
	}
	return string(line)
}

func (s *Screen) SetCursor(x, y int, visible bool) {
	s.cursor.x = x
	s.cursor.y = y
	s.cursor.visible = visible
}

type RenderFunc func(width, height int) *Screen

type Terminal struct {
	f      *os.File
	out    io.Writer
	render RenderFunc
	buf    []byte
	state  *terminal.State
	Screen

	KeyCh <-chan Key
	ErrCh <-chan error

	closeOnce sync.Once
	closeErr  error
}

func (t *Terminal) flush() error {
	n, err := t.out.Write(t.buf)
	if n == len(t.buf) {
		t.buf = t.buf[:0]
	} else {
		copy(t.buf, t.buf[n:])
		t.buf = t.buf[:len(t.buf)-n]
	}
	return err
}

// NewTerminal puts f into raw mode and starts reading keys from it. The
// caller must Close the terminal on every exit path to get the original mode
// back.
func NewTerminal(f *os.File, render RenderFunc) (*Terminal, error) {
	fd := int(f.Fd())

	width, height, err := terminal.GetSize(fd)
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}

	state, err := terminal.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	keyCh := make(chan Key, 16)
	errCh := make(chan error, 1)

	t := &Terminal{
		f:      f,
		out:    f,
		render: render,
		state:  state,
		Screen: *NewScreen(width, height),
		KeyCh:  keyCh,
		ErrCh:  errCh,
	}

	// Clear the screen, so that we are in a known state.
	t.clear()
	t.redraw()

	if err := t.flush(); err != nil {
		terminal.Restore(fd, state)
		return nil, fmt.Errorf("initial draw: %w", err)
	}

	go readKeys(f, keyCh, errCh)

	return t, nil
}

// Resize picks up a new window size. The next Redraw repaints everything.
func (t *Terminal) Resize() error {
	width, height, err := terminal.GetSize(int(t.f.Fd()))
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	t.Screen = *NewScreen(width, height)
	t.clear()
	return nil
}

func (t *Terminal) clear() {
	t.buf = append(t.buf, "\x1b[H\x1b[2J\x1b[0m\x1b[?25l"...)
	t.cursor = Cursor{}
}

func (t *Terminal) moveCursor(x, y int) {
	if t.cursor.x == x && t.cursor.y == y {
		return
	}

	t.buf = append(t.buf, "\x1b["...)
	t.buf = strconv.AppendInt(t.buf, int64(y)+1, 10)
	t.buf = append(t.buf, ';')
	t.buf = strconv.AppendInt(t.buf, int64(x)+1, 10)
	t.buf = append(t.buf, 'H')

	t.cursor.x = x
	t.cursor.y = y
}

var numTable = func() (table []string) {
	table = make([]string, 256)
	for i := 0; i < 256; i++ {
		table[i] = strconv.Itoa(i)
	}
	return
}()

func (t *Terminal) setCursorStyle(s Style) {
	// SGR is short for Select Graphic Rendition
	sgrs := make([]int, 0, 10)

	if s.fore != t.cursor.fore {
		sgrs = append(sgrs, 38, 2, int(s.fore.R), int(s.fore.G), int(s.fore.B))
		t.cursor.fore = s.fore
	}

	if s.back != t.cursor.back {
		sgrs = append(sgrs, 48, 2, int(s.back.R), int(s.back.G), int(s.back.B))
		t.cursor.back = s.back
	}

	if len(sgrs) > 0 {
		t.buf = append(t.buf, "\x1b["...)
		t.buf = append(t.buf, numTable[sgrs[0]]...)
		for _, sgr := range sgrs[1:] {
			t.buf = append(t.buf, ';')
			t.buf = append(t.buf, numTable[sgr]...)
		}
		t.buf = append(t.buf, 'm')
	}
}

func (t *Terminal) setCursorVisibility(visible bool) {
	if visible && !t.cursor.visible {
		t.buf = append(t.buf, "\x1b[?25h"...)
	} else if !visible && t.cursor.visible {
		t.buf = append(t.buf, "\x1b[?25l"...)
	}
	t.cursor.visible = visible
}

func (t *Terminal) redraw() {
	newScreen := t.render(t.width, t.height)
	if newScreen.width != t.width || newScreen.height != t.height {
		// Render ignored the size it was given; draw what overlaps.
		resized := NewScreen(t.width, t.height)
		for y := 0; y < t.height && y < newScreen.height; y++ {
			for x := 0; x < t.width && x < newScreen.width; x++ {
				resized.cells[y*t.width+x] = newScreen.cells[y*newScreen.width+x]
			}
		}
		resized.cursor = newScreen.cursor
		newScreen = resized
	}

	t.setCursorVisibility(newScreen.cursor.visible)

	p := make([]byte, utf8.UTFMax)

	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i := y*t.width + x

			a := t.cells[i]
			b := newScreen.cells[i]
			if b.text == 0 {
				b.text = ' '
			}

			if a != b {
				t.moveCursor(x, y)
				t.setCursorStyle(b.Style)
				n := utf8.EncodeRune(p, b.text)
				t.buf = append(t.buf, p[:n]...)
				t.cells[i] = b
				t.cursor.x++
			}
		}
	}

	t.moveCursor(newScreen.cursor.x, newScreen.cursor.y)
}

func (t *Terminal) Redraw() error {
	t.redraw()
	return t.flush()
}

// Close shows the cursor, resets attributes, clears the display and puts the
// terminal back in the mode it had before NewTerminal. It is safe to call
// more than once.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.buf = append(t.buf[:0], "\x1b[0m\x1b[H\x1b[2J\x1b[?25h"...)
		flushErr := t.flush()
		restoreErr := terminal.Restore(int(t.f.Fd()), t.state)
		switch {
		case restoreErr != nil:
			t.closeErr = fmt.Errorf("restore terminal: %w", restoreErr)
		case flushErr != nil:
			t.closeErr = fmt.Errorf("reset display: %w", flushErr)
		}
	})
	return t.closeErr
}
