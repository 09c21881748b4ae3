package terminal

import "unicode/utf8"

// Key types.
const (
	KeyRune       = iota // Normal printable character
	KeyEscape            // Escape key (standalone)
	KeyEnter             // Enter/Return
	KeyShiftEnter        // Shift+Enter (CSI-u or modifyOtherKeys terminals)
	KeyBackspace         // Backspace/Delete-backward
	KeyTab               // Tab
	KeyUp                // Arrow up
	KeyDown              // Arrow down
	KeyLeft              // Arrow left
	KeyRight             // Arrow right
	KeyCtrlLeft          // Ctrl+Left
	KeyCtrlRight         // Ctrl+Right
	KeyHome              // Home
	KeyEnd               // End
	KeyDelete            // Delete/Forward-delete
	KeyCtrlS             // Ctrl+S
	KeyCtrlF             // Ctrl+F
	KeyCtrlG             // Ctrl+G
	KeyCtrlO             // Ctrl+O
	KeyCtrlP             // Ctrl+P
	KeyCtrlZ             // Ctrl+Z
	KeyCtrlY             // Ctrl+Y
	KeyUnknown           // Unrecognised sequence
)

type Key struct {
	Type int
	Rune rune
}

// Rune returns a printable key for r.
func Rune(r rune) Key { return Key{Type: KeyRune, Rune: r} }

// Of returns a non-printable key of the given type.
func Of(t int) Key { return Key{Type: t} }

// Runes returns one key per rune of s, handy for scripting input.
func Runes(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

// IsChord reports whether the key is one of the Ctrl chords that switch the
// editor between modes.
func (k Key) IsChord() bool {
	switch k.Type {
	case KeyCtrlS, KeyCtrlF, KeyCtrlG, KeyCtrlO:
		return true
	}
	return false
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyShiftEnter:
		return "Shift+Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlLeft:
		return "Ctrl+Left"
	case KeyCtrlRight:
		return "Ctrl+Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyDelete:
		return "Delete"
	case KeyCtrlS:
		return "Ctrl+S"
	case KeyCtrlF:
		return "Ctrl+F"
	case KeyCtrlG:
		return "Ctrl+G"
	case KeyCtrlO:
		return "Ctrl+O"
	case KeyCtrlP:
		return "Ctrl+P"
	case KeyCtrlZ:
		return "Ctrl+Z"
	case KeyCtrlY:
		return "Ctrl+Y"
	}
	return "Unknown"
}

// parseKeys splits one read into the keys it holds. A paste or a burst of
// typing arrives as several keys in a single read.
func parseKeys(buf []byte) []Key {
	var keys []Key
	for len(buf) > 0 {
		n := keyLen(buf)
		keys = append(keys, parseKey(buf[:n]))
		buf = buf[n:]
	}
	return keys
}

// keyLen returns the length in bytes of the first key in buf.
func keyLen(buf []byte) int {
	if buf[0] != 27 {
		if buf[0] < utf8.RuneSelf {
			return 1
		}
		_, n := utf8.DecodeRune(buf)
		return n
	}
	if len(buf) == 1 {
		return 1
	}
	switch buf[1] {
	case '[':
		// CSI runs up to and including its final byte.
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7E {
				return i + 1
			}
		}
		return len(buf)
	case 'O':
		return min(3, len(buf))
	case 27:
		return 1
	}
	// Alt+key arrives as ESC and the key. It must not read as Escape.
	if buf[1] < utf8.RuneSelf {
		return 2
	}
	return 1
}

// parseKey decodes buf as exactly one key.
func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	// Single byte.
	if len(buf) == 1 {
		b := buf[0]
		switch {
		case b == 27:
			return Key{Type: KeyEscape}
		case b == 13 || b == 10:
			return Key{Type: KeyEnter}
		case b == 127 || b == 8:
			return Key{Type: KeyBackspace}
		case b == 9:
			return Key{Type: KeyTab}
		case b == 19: // Ctrl+S
			return Key{Type: KeyCtrlS}
		case b == 6: // Ctrl+F
			return Key{Type: KeyCtrlF}
		case b == 7: // Ctrl+G
			return Key{Type: KeyCtrlG}
		case b == 15: // Ctrl+O
			return Key{Type: KeyCtrlO}
		case b == 16: // Ctrl+P
			return Key{Type: KeyCtrlP}
		case b == 26: // Ctrl+Z
			return Key{Type: KeyCtrlZ}
		case b == 25: // Ctrl+Y
			return Key{Type: KeyCtrlY}
		case b >= 32 && b < 127:
			return Key{Type: KeyRune, Rune: rune(b)}
		default:
			return Key{Type: KeyUnknown}
		}
	}

	// SS3 sequences sent in application cursor mode: ESC O <c>
	if buf[0] == 27 && len(buf) == 3 && buf[1] == 'O' {
		switch buf[2] {
		case 'A':
			return Key{Type: KeyUp}
		case 'B':
			return Key{Type: KeyDown}
		case 'C':
			return Key{Type: KeyRight}
		case 'D':
			return Key{Type: KeyLeft}
		case 'H':
			return Key{Type: KeyHome}
		case 'F':
			return Key{Type: KeyEnd}
		}
		return Key{Type: KeyUnknown}
	}

	// Escape sequences.
	if buf[0] == 27 && len(buf) >= 3 && buf[1] == '[' {
		switch string(buf[2:]) {
		case "1;5C", "5C":
			return Key{Type: KeyCtrlRight}
		case "1;5D", "5D":
			return Key{Type: KeyCtrlLeft}
		case "13;2u", "27;2;13~":
			return Key{Type: KeyShiftEnter}
		}

		// CSI 3-byte sequences.
		if len(buf) == 3 {
			switch buf[2] {
			case 'A':
				return Key{Type: KeyUp}
			case 'B':
				return Key{Type: KeyDown}
			case 'C':
				return Key{Type: KeyRight}
			case 'D':
				return Key{Type: KeyLeft}
			case 'H':
				return Key{Type: KeyHome}
			case 'F':
				return Key{Type: KeyEnd}
			}
		}

		// CSI 4-byte sequences: ESC [ <n> ~
		if len(buf) == 4 && buf[3] == '~' {
			switch buf[2] {
			case '1', '7':
				return Key{Type: KeyHome}
			case '3':
				return Key{Type: KeyDelete}
			case '4', '8':
				return Key{Type: KeyEnd}
			}
		}
		return Key{Type: KeyUnknown}
	}

	// Multi-byte UTF-8 character.
	r := decodeUTF8(buf)
	if r >= 32 {
		return Key{Type: KeyRune, Rune: r}
	}

	return Key{Type: KeyUnknown}
}

func decodeUTF8(buf []byte) rune {
	if len(buf) == 0 {
		return 0
	}
	// Simple UTF-8 decode for 1-4 byte sequences.
	b := buf[0]
	switch {
	case b < 0x80:
		return rune(b)
	case b < 0xC0:
		return 0xFFFD
	case b < 0xE0 && len(buf) >= 2:
		return rune(b&0x1F)<<6 | rune(buf[1]&0x3F)
	case b < 0xF0 && len(buf) >= 3:
		return rune(b&0x0F)<<12 | rune(buf[1]&0x3F)<<6 | rune(buf[2]&0x3F)
	case b < 0xF8 && len(buf) >= 4:
		return rune(b&0x07)<<18 | rune(buf[1]&0x3F)<<12 | rune(buf[2]&0x3F)<<6 | rune(buf[3]&0x3F)
	}
	return 0xFFFD
}
