package terminal

import (
	"io"
	"os"
	"strings"
	"syscall"
)

type cell struct {
	ch    rune
	style Style
}

// Virtual is an in-memory Screen. It keeps a grid of cells and a hardware
// cursor, and replays keys queued with Feed. Once the queue is drained
// ReadKey returns io.EOF.
type Virtual struct {
	width, height int
	grid          [][]cell
	row, col      int
	savedRow      int
	savedCol      int
	hidden        bool
	keys          []Key
	resized       chan os.Signal
	flushes       int
	err           error
}

// NewVirtual returns a blank screen of the given size with the cursor at
// the top left corner.
func NewVirtual(width, height int) *Virtual {
	v := &Virtual{row: 1, col: 1, savedRow: 1, savedCol: 1, resized: make(chan os.Signal, 1)}
	v.alloc(width, height)
	return v
}

func (v *Virtual) alloc(width, height int) {
	v.width, v.height = width, height
	v.grid = make([][]cell, height)
	for i := range v.grid {
		v.grid[i] = make([]cell, width)
		for j := range v.grid[i] {
			v.grid[i][j] = cell{ch: ' '}
		}
	}
}

// Resize changes the screen size, blanks it and signals Resized.
func (v *Virtual) Resize(width, height int) {
	v.alloc(width, height)
	v.row, v.col = v.clamp(v.row, v.col)
	select {
	case v.resized <- syscall.SIGWINCH:
	default:
	}
}

// Feed appends keys to the input queue.
func (v *Virtual) Feed(keys ...Key) {
	v.keys = append(v.keys, keys...)
}

// Pending reports how many queued keys have not been read yet.
func (v *Virtual) Pending() int { return len(v.keys) }

// FailWith makes every later Flush and ReadKey return err.
func (v *Virtual) FailWith(err error) { v.err = err }

// Flushes returns how many times Flush was called.
func (v *Virtual) Flushes() int { return v.flushes }

// Row returns the text of screen row n (1-based), padded to the width.
func (v *Virtual) Row(n int) string {
	if n < 1 || n > v.height {
		return ""
	}
	var b strings.Builder
	for _, c := range v.grid[n-1] {
		b.WriteRune(c.ch)
	}
	return b.String()
}

// Text returns row n with trailing blanks removed.
func (v *Virtual) Text(n int) string {
	return strings.TrimRight(v.Row(n), " ")
}

// Cursor returns the hardware cursor position.
func (v *Virtual) Cursor() (row, col int) { return v.row, v.col }

// CursorHidden reports whether the hardware cursor is hidden.
func (v *Virtual) CursorHidden() bool { return v.hidden }

// StyleAt returns the style of the cell at row, col (1-based).
func (v *Virtual) StyleAt(row, col int) Style {
	if row < 1 || row > v.height || col < 1 || col > v.width {
		return Plain
	}
	return v.grid[row-1][col-1].style
}

func (v *Virtual) clamp(row, col int) (int, int) {
	row = max(1, min(row, v.height))
	col = max(1, min(col, v.width))
	return row, col
}

func (v *Virtual) Width() int                { return v.width }
func (v *Virtual) Height() int               { return v.height }
func (v *Virtual) Resized() <-chan os.Signal { return v.resized }

func (v *Virtual) MoveTo(row, col int) { v.row, v.col = v.clamp(row, col) }
func (v *Virtual) MoveCol(col int)     { v.row, v.col = v.clamp(v.row, col) }
func (v *Virtual) MoveRow(row int)     { v.row, v.col = v.clamp(row, v.col) }
func (v *Virtual) Up(n int)            { v.row, v.col = v.clamp(v.row-n, v.col) }
func (v *Virtual) Down(n int)          { v.row, v.col = v.clamp(v.row+n, v.col) }
func (v *Virtual) Left(n int)          { v.row, v.col = v.clamp(v.row, v.col-n) }
func (v *Virtual) Right(n int)         { v.row, v.col = v.clamp(v.row, v.col+n) }

func (v *Virtual) SaveCursor()    { v.savedRow, v.savedCol = v.row, v.col }
func (v *Virtual) RestoreCursor() { v.row, v.col = v.clamp(v.savedRow, v.savedCol) }
func (v *Virtual) HideCursor()    { v.hidden = true }
func (v *Virtual) ShowCursor()    { v.hidden = false }

func (v *Virtual) ClearToEOL() {
	if v.height == 0 {
		return
	}
	line := v.grid[v.row-1]
	for i := v.col - 1; i < len(line); i++ {
		line[i] = cell{ch: ' '}
	}
}

// WriteStyled writes text at the cursor. Text past the right edge is
// dropped and the cursor stops at the last column.
func (v *Virtual) WriteStyled(text string, style Style) {
	if v.height == 0 {
		return
	}
	line := v.grid[v.row-1]
	col := v.col
	for _, r := range text {
		if col <= v.width {
			line[col-1] = cell{ch: r, style: style}
		}
		col++
	}
	v.col = min(col, v.width)
}

func (v *Virtual) Flush() error {
	v.flushes++
	return v.err
}

func (v *Virtual) ReadKey() (Key, error) {
	if v.err != nil {
		return Key{}, v.err
	}
	if len(v.keys) == 0 {
		return Key{}, io.EOF
	}
	k := v.keys[0]
	v.keys = v.keys[1:]
	return k, nil
}
