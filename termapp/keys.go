package termapp

import (
	"io"
	"unicode/utf8"
)

// Key is either a printable rune or one of the special keys below. The
// special keys live in the Unicode private use area so they never collide
// with typed characters.
type Key rune

const (
	KeyCtrlC  Key = 0x03
	KeyEnter  Key = '\r'
	KeyEscape Key = 0x1b
)

const (
	KeyUp Key = 0xe000 + iota
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
)

func (k Key) Special() bool {
	return k >= KeyUp && k <= KeyEnd
}

var csiKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// DecodeKeys splits one read from the terminal into keys. A read ending in a
// lone ESC is reported as KeyEscape; terminals send escape sequences in a
// single write, so a split sequence is not expected.
func DecodeKeys(b []byte) []Key {
	var keys []Key
	for len(b) > 0 {
		switch {
		case b[0] == 0x1b && len(b) >= 3 && (b[1] == '[' || b[1] == 'O'):
			// Skip parameters such as the "1;5" in "\x1b[1;5A".
			i := 2
			for i < len(b) && (b[i] == ';' || (b[i] >= '0' && b[i] <= '9')) {
				i++
			}
			if i == len(b) {
				return keys
			}
			if k, ok := csiKeys[b[i]]; ok {
				keys = append(keys, k)
			}
			b = b[i+1:]
		case b[0] == '\n' || b[0] == '\r':
			keys = append(keys, KeyEnter)
			b = b[1:]
		case b[0] < utf8.RuneSelf:
			keys = append(keys, Key(b[0]))
			b = b[1:]
		default:
			r, n := utf8.DecodeRune(b)
			if r != utf8.RuneError {
				keys = append(keys, Key(r))
			}
			b = b[n:]
		}
	}
	return keys
}

func readKeys(r io.Reader, keyCh chan<- Key, errCh chan<- error) {
	defer close(keyCh)

	p := make([]byte, 64)
	for {
		n, err := r.Read(p)
		for _, k := range DecodeKeys(p[:n]) {
			keyCh <- k
		}
		if err != nil {
			errCh <- err
			return
		}
	}
}
