package terminal

import (
	"os"

	"github.com/muesli/termenv"
)

// Screen is everything the editor needs from a terminal: dimensions, a
// hardware cursor, styled output and a stream of decoded keys.
//
// Rows and columns are 1-based. Output is buffered until Flush; write errors
// are sticky and surface from Flush.
type Screen interface {
	Width() int
	Height() int

	MoveTo(row, col int)
	MoveCol(col int)
	MoveRow(row int)
	Up(n int)
	Down(n int)
	Left(n int)
	Right(n int)
	SaveCursor()
	RestoreCursor()
	HideCursor()
	ShowCursor()

	ClearToEOL()
	WriteStyled(text string, style Style)
	Flush() error

	ReadKey() (Key, error)
	// Resized delivers a value whenever the terminal changes size. Screens
	// with a fixed size return nil.
	Resized() <-chan os.Signal
}

// Style describes how a run of text is drawn. Nil colors keep the terminal
// default.
type Style struct {
	Bold bool
	Dim  bool
	Fg   termenv.Color
	Bg   termenv.Color
}

// Plain is the default style.
var Plain = Style{}

// Render wraps text in the escape sequences for the style using the given
// color profile.
func (s Style) Render(p termenv.Profile, text string) string {
	st := p.String(text)
	if s.Bold {
		st = st.Bold()
	}
	if s.Dim {
		st = st.Faint()
	}
	if s.Fg != nil {
		st = st.Foreground(p.Convert(s.Fg))
	}
	if s.Bg != nil {
		st = st.Background(p.Convert(s.Bg))
	}
	return st.String()
}
