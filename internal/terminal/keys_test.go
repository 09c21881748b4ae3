package terminal

import (
	"errors"
	"io"
	"os"
	"testing"
)

func TestParseKeyRune(t *testing.T) {
	k := parseKey([]byte{'a'})
	if k.Type != KeyRune || k.Rune != 'a' {
		t.Errorf("expected rune 'a', got type=%d rune=%c", k.Type, k.Rune)
	}
}

func TestParseKeyEscape(t *testing.T) {
	k := parseKey([]byte{27})
	if k.Type != KeyEscape {
		t.Errorf("expected escape, got type=%d", k.Type)
	}
}

func TestParseKeyEnter(t *testing.T) {
	for _, b := range []byte{13, 10} {
		k := parseKey([]byte{b})
		if k.Type != KeyEnter {
			t.Errorf("byte %d: expected enter, got type=%d", b, k.Type)
		}
	}
}

func TestParseKeyBackspace(t *testing.T) {
	k := parseKey([]byte{127})
	if k.Type != KeyBackspace {
		t.Errorf("expected backspace (127), got type=%d", k.Type)
	}
	k = parseKey([]byte{8})
	if k.Type != KeyBackspace {
		t.Errorf("expected backspace (8), got type=%d", k.Type)
	}
}

func TestParseKeyChords(t *testing.T) {
	tests := []struct {
		b        byte
		expected int
		name     string
	}{
		{19, KeyCtrlS, "ctrl-s"},
		{6, KeyCtrlF, "ctrl-f"},
		{7, KeyCtrlG, "ctrl-g"},
		{15, KeyCtrlO, "ctrl-o"},
		{16, KeyCtrlP, "ctrl-p"},
		{26, KeyCtrlZ, "ctrl-z"},
		{25, KeyCtrlY, "ctrl-y"},
		{9, KeyTab, "tab"},
	}
	for _, tc := range tests {
		k := parseKey([]byte{tc.b})
		if k.Type != tc.expected {
			t.Errorf("%s: expected type %d, got %d", tc.name, tc.expected, k.Type)
		}
	}
}

func TestIsChord(t *testing.T) {
	for _, typ := range []int{KeyCtrlS, KeyCtrlF, KeyCtrlG, KeyCtrlO} {
		if !Of(typ).IsChord() {
			t.Errorf("%s should be a chord", Of(typ))
		}
	}
	for _, k := range []Key{Rune('s'), Of(KeyCtrlZ), Of(KeyEscape), Of(KeyCtrlP)} {
		if k.IsChord() {
			t.Errorf("%s should not be a chord", k)
		}
	}
}

func TestParseKeyArrows(t *testing.T) {
	tests := []struct {
		seq      []byte
		expected int
	}{
		{[]byte{27, '[', 'A'}, KeyUp},
		{[]byte{27, '[', 'B'}, KeyDown},
		{[]byte{27, '[', 'C'}, KeyRight},
		{[]byte{27, '[', 'D'}, KeyLeft},
		{[]byte{27, 'O', 'A'}, KeyUp},
		{[]byte{27, 'O', 'B'}, KeyDown},
		{[]byte{27, 'O', 'C'}, KeyRight},
		{[]byte{27, 'O', 'D'}, KeyLeft},
	}
	for _, tc := range tests {
		k := parseKey(tc.seq)
		if k.Type != tc.expected {
			t.Errorf("seq %v: expected type %d, got %d", tc.seq, tc.expected, k.Type)
		}
	}
}

func TestParseKeyModified(t *testing.T) {
	tests := []struct {
		seq      string
		expected int
	}{
		{"\x1b[1;5C", KeyCtrlRight},
		{"\x1b[1;5D", KeyCtrlLeft},
		{"\x1b[13;2u", KeyShiftEnter},
		{"\x1b[27;2;13~", KeyShiftEnter},
		{"\x1b[1;2A", KeyUnknown},
	}
	for _, tc := range tests {
		k := parseKey([]byte(tc.seq))
		if k.Type != tc.expected {
			t.Errorf("seq %q: expected type %d, got %d", tc.seq, tc.expected, k.Type)
		}
	}
}

func TestParseKeyEmpty(t *testing.T) {
	k := parseKey([]byte{})
	if k.Type != KeyUnknown {
		t.Errorf("expected unknown for empty input, got type=%d", k.Type)
	}
}

func TestParseKeyControlChar(t *testing.T) {
	// Control char that isn't specifically handled.
	k := parseKey([]byte{1}) // Ctrl+A
	if k.Type != KeyUnknown {
		t.Errorf("expected unknown for ctrl-a, got type=%d", k.Type)
	}
}

func TestDecodeUTF8(t *testing.T) {
	// ASCII
	if r := decodeUTF8([]byte{'A'}); r != 'A' {
		t.Errorf("ASCII: got %c", r)
	}
	// 2-byte: é (U+00E9) = 0xC3 0xA9
	if r := decodeUTF8([]byte{0xC3, 0xA9}); r != 'é' {
		t.Errorf("2-byte: got %c (%x)", r, r)
	}
	// 3-byte: 日 (U+65E5) = 0xE6 0x97 0xA5
	if r := decodeUTF8([]byte{0xE6, 0x97, 0xA5}); r != '日' {
		t.Errorf("3-byte: got %c (%x)", r, r)
	}
	// Empty
	if r := decodeUTF8([]byte{}); r != 0 {
		t.Errorf("empty: got %x", r)
	}
	// Invalid continuation byte
	if r := decodeUTF8([]byte{0x80}); r != 0xFFFD {
		t.Errorf("invalid: got %x", r)
	}
}

func TestParseKeyMultibyteUTF8(t *testing.T) {
	k := parseKey([]byte{0xC3, 0xA9})
	if k.Type != KeyRune || k.Rune != 'é' {
		t.Errorf("expected rune é, got type=%d rune=%c", k.Type, k.Rune)
	}
}

func TestParseKeyHomeEnd3Byte(t *testing.T) {
	// Home: ESC [ H
	k := parseKey([]byte{27, '[', 'H'})
	if k.Type != KeyHome {
		t.Errorf("expected home (3-byte), got type=%d", k.Type)
	}
	// End: ESC [ F
	k = parseKey([]byte{27, '[', 'F'})
	if k.Type != KeyEnd {
		t.Errorf("expected end (3-byte), got type=%d", k.Type)
	}
}

func TestParseKeyCSI4Byte(t *testing.T) {
	tests := []struct {
		seq      []byte
		expected int
		name     string
	}{
		{[]byte{27, '[', '1', '~'}, KeyHome, "home"},
		{[]byte{27, '[', '7', '~'}, KeyHome, "home (rxvt)"},
		{[]byte{27, '[', '3', '~'}, KeyDelete, "delete"},
		{[]byte{27, '[', '4', '~'}, KeyEnd, "end"},
		{[]byte{27, '[', '8', '~'}, KeyEnd, "end (rxvt)"},
		{[]byte{27, '[', '5', '~'}, KeyUnknown, "pgup"},
	}
	for _, tc := range tests {
		k := parseKey(tc.seq)
		if k.Type != tc.expected {
			t.Errorf("%s: expected type %d, got %d", tc.name, tc.expected, k.Type)
		}
	}
}

func TestRunes(t *testing.T) {
	keys := Runes("ab")
	if len(keys) != 2 || keys[0] != Rune('a') || keys[1] != Rune('b') {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestParseKeysSplitsBurst(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Key
	}{
		{"typed run", "hello", Runes("hello")},
		{"repeated arrows", "\x1b[A\x1b[A", []Key{Of(KeyUp), Of(KeyUp)}},
		{"mixed", "a\x1b[1;5Cé\r\x1bOD\x7f", []Key{Rune('a'), Of(KeyCtrlRight), Rune('é'), Of(KeyEnter), Of(KeyLeft), Of(KeyBackspace)}},
		{"delete then rune", "\x1b[3~x", []Key{Of(KeyDelete), Rune('x')}},
		{"shift enter forms", "\x1b[13;2u\x1b[27;2;13~", []Key{Of(KeyShiftEnter), Of(KeyShiftEnter)}},
		{"lone escape", "\x1b", []Key{Of(KeyEscape)}},
		{"double escape", "\x1b\x1b", []Key{Of(KeyEscape), Of(KeyEscape)}},
		{"alt letter", "\x1bxa", []Key{Of(KeyUnknown), Rune('a')}},
		{"chords", "\x13\x06", []Key{Of(KeyCtrlS), Of(KeyCtrlF)}},
	}
	for _, tc := range tests {
		got := parseKeys([]byte(tc.in))
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %d keys %v, want %v", tc.name, len(got), got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: key %d is %v, want %v", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestReadKeyQueuesBurst(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if _, err := w.Write([]byte("ab\x1b[B")); err != nil {
		t.Fatal(err)
	}
	w.Close()

	term := &Terminal{in: r}
	want := []Key{Rune('a'), Rune('b'), Of(KeyDown)}
	for i, k := range want {
		got, err := term.ReadKey()
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		if got != k {
			t.Errorf("key %d is %v, want %v", i, got, k)
		}
	}
	if _, err := term.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF once drained, got %v", err)
	}
}
