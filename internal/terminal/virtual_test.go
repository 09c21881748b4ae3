package terminal

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestVirtualWriteAndCursor(t *testing.T) {
	v := NewVirtual(10, 3)
	v.MoveTo(2, 3)
	v.WriteStyled("abc", Style{Bold: true})

	if got := v.Text(2); got != "  abc" {
		t.Errorf("row 2: got %q", got)
	}
	if r, c := v.Cursor(); r != 2 || c != 6 {
		t.Errorf("cursor: got (%d,%d), want (2,6)", r, c)
	}
	if !v.StyleAt(2, 4).Bold {
		t.Error("expected bold cell at (2,4)")
	}
	if v.StyleAt(2, 1).Bold {
		t.Error("expected plain cell at (2,1)")
	}
}

func TestVirtualClipsAtRightEdge(t *testing.T) {
	v := NewVirtual(4, 1)
	v.WriteStyled("abcdef", Plain)
	if got := v.Row(1); got != "abcd" {
		t.Errorf("got %q, want %q", got, "abcd")
	}
	if _, c := v.Cursor(); c != 4 {
		t.Errorf("cursor col: got %d, want 4", c)
	}
}

func TestVirtualClearToEOL(t *testing.T) {
	v := NewVirtual(6, 1)
	v.WriteStyled("abcdef", Plain)
	v.MoveCol(3)
	v.ClearToEOL()
	if got := v.Text(1); got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestVirtualSaveRestore(t *testing.T) {
	v := NewVirtual(10, 5)
	v.MoveTo(3, 4)
	v.SaveCursor()
	v.MoveTo(5, 1)
	v.WriteStyled("status", Plain)
	v.RestoreCursor()
	if r, c := v.Cursor(); r != 3 || c != 4 {
		t.Errorf("cursor: got (%d,%d), want (3,4)", r, c)
	}
}

func TestVirtualRelativeMovesClamp(t *testing.T) {
	v := NewVirtual(5, 5)
	v.Up(3)
	v.Left(2)
	if r, c := v.Cursor(); r != 1 || c != 1 {
		t.Errorf("cursor: got (%d,%d), want (1,1)", r, c)
	}
	v.Down(10)
	v.Right(10)
	if r, c := v.Cursor(); r != 5 || c != 5 {
		t.Errorf("cursor: got (%d,%d), want (5,5)", r, c)
	}
	v.MoveRow(2)
	if r, c := v.Cursor(); r != 2 || c != 5 {
		t.Errorf("cursor: got (%d,%d), want (2,5)", r, c)
	}
}

func TestVirtualReadKey(t *testing.T) {
	v := NewVirtual(5, 5)
	v.Feed(Rune('x'), Of(KeyEnter))

	k, err := v.ReadKey()
	if err != nil || k != Rune('x') {
		t.Fatalf("first key: got %v, %v", k, err)
	}
	k, err = v.ReadKey()
	if err != nil || k.Type != KeyEnter {
		t.Fatalf("second key: got %v, %v", k, err)
	}
	if _, err := v.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestVirtualFailWith(t *testing.T) {
	v := NewVirtual(5, 5)
	boom := errors.New("boom")
	v.FailWith(boom)
	if err := v.Flush(); !errors.Is(err, boom) {
		t.Errorf("flush: got %v", err)
	}
	v.Feed(Rune('a'))
	if _, err := v.ReadKey(); !errors.Is(err, boom) {
		t.Errorf("read: got %v", err)
	}
}

func TestVirtualResize(t *testing.T) {
	v := NewVirtual(10, 10)
	v.MoveTo(9, 9)
	v.Resize(4, 3)
	if v.Width() != 4 || v.Height() != 3 {
		t.Fatalf("size: got %dx%d", v.Width(), v.Height())
	}
	if r, c := v.Cursor(); r != 3 || c != 4 {
		t.Errorf("cursor: got (%d,%d), want (3,4)", r, c)
	}
	select {
	case <-v.Resized():
	default:
		t.Error("expected a resize notification")
	}
}

func TestStyleRender(t *testing.T) {
	s := Style{Bold: true, Fg: termenv.ANSIBlack, Bg: termenv.ANSIWhite}
	if got := s.Render(termenv.Ascii, "hi"); got != "hi" {
		t.Errorf("ascii profile: got %q", got)
	}
	got := s.Render(termenv.ANSI, "hi")
	if !strings.HasPrefix(got, termenv.CSI) || !strings.Contains(got, "hi") {
		t.Errorf("ansi profile: got %q", got)
	}
	if got := Plain.Render(termenv.ANSI, "hi"); got != "hi" {
		t.Errorf("plain: got %q", got)
	}
}
