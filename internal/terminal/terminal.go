package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Terminal manages raw mode, alternate screen buffer, and terminal dimensions.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	buf      *bufio.Writer
	output   *termenv.Output
	width    int
	height   int
	sigwinch chan os.Signal
	restored bool
	pending  []Key
}

// Open puts stdin into raw mode and switches stdout to the alternate screen.
// On failure everything acquired so far is released before returning.
func Open() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	// Switch to raw mode.
	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t.oldState = oldState

	profile := termenv.ANSI
	if termenv.EnvNoColor() {
		profile = termenv.Ascii
	}
	t.buf = bufio.NewWriterSize(t.out, 16*1024)
	t.output = termenv.NewOutput(t.buf, termenv.WithProfile(profile))

	// Query size.
	t.width, t.height, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("query size: %w", err), t.Restore())
	}

	// Enter alternate screen buffer and hide cursor during setup.
	t.output.AltScreen()
	t.output.ClearScreen()
	t.output.HideCursor()
	if err := t.buf.Flush(); err != nil {
		return nil, errors.Join(fmt.Errorf("init screen: %w", err), t.Restore())
	}

	// Listen for resize signals.
	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Restore returns the terminal to its original state. It is safe to call
// more than once.
func (t *Terminal) Restore() error {
	if t.restored {
		return nil
	}
	t.restored = true
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}

	var errs []error
	if t.output != nil {
		t.output.Reset()
		t.output.ShowCursor()
		t.output.ExitAltScreen()
		if err := t.buf.Flush(); err != nil {
			errs = append(errs, fmt.Errorf("reset screen: %w", err))
		}
	}
	if t.oldState != nil {
		if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
			errs = append(errs, fmt.Errorf("leave raw mode: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (t *Terminal) size() (int, int) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err == nil && w > 0 && h > 0 {
		t.width, t.height = w, h
	}
	return t.width, t.height
}

// Width returns the current terminal width.
func (t *Terminal) Width() int {
	w, _ := t.size()
	return w
}

// Height returns the current terminal height.
func (t *Terminal) Height() int {
	_, h := t.size()
	return h
}

// Resized returns the channel that receives SIGWINCH signals.
func (t *Terminal) Resized() <-chan os.Signal {
	return t.sigwinch
}

func (t *Terminal) MoveTo(row, col int) { t.output.MoveCursor(row, col) }

func (t *Terminal) MoveCol(col int) {
	fmt.Fprintf(t.buf, termenv.CSI+termenv.CursorHorizontalSeq, col)
}

func (t *Terminal) MoveRow(row int) {
	fmt.Fprintf(t.buf, termenv.CSI+"%dd", row)
}

func (t *Terminal) Up(n int) {
	if n > 0 {
		t.output.CursorUp(n)
	}
}

func (t *Terminal) Down(n int) {
	if n > 0 {
		t.output.CursorDown(n)
	}
}

func (t *Terminal) Left(n int) {
	if n > 0 {
		t.output.CursorBack(n)
	}
}

func (t *Terminal) Right(n int) {
	if n > 0 {
		t.output.CursorForward(n)
	}
}

func (t *Terminal) SaveCursor()    { t.output.SaveCursorPosition() }
func (t *Terminal) RestoreCursor() { t.output.RestoreCursorPosition() }
func (t *Terminal) HideCursor()    { t.output.HideCursor() }
func (t *Terminal) ShowCursor()    { t.output.ShowCursor() }
func (t *Terminal) ClearToEOL()    { t.output.ClearLineRight() }

func (t *Terminal) WriteStyled(text string, style Style) {
	if style == Plain {
		t.buf.WriteString(text)
		return
	}
	t.buf.WriteString(style.Render(t.output.Profile, text))
}

// Flush writes buffered output. A failed write is reported here.
func (t *Terminal) Flush() error {
	if err := t.buf.Flush(); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}

// ReadKey reads a single keypress from stdin in raw mode.
// Keys left over from an earlier read are returned first.
func (t *Terminal) ReadKey() (Key, error) {
	for len(t.pending) == 0 {
		buf := make([]byte, 64)
		n, err := t.in.Read(buf)
		if err != nil {
			return Key{}, fmt.Errorf("read terminal: %w", err)
		}
		t.pending = parseKeys(buf[:n])
	}
	k := t.pending[0]
	t.pending = t.pending[1:]
	return k, nil
}
