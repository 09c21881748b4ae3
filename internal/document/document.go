// Package document holds the multi-line text being edited together with its
// vertical viewport and cursor.
package document

import (
	"strings"

	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/textfield"
)

// Vertical directions.
const (
	Up   = -1
	Down = 1
)

// Document is a non-empty list of lines, a current row and a window of
// visible rows. Screen row 1 belongs to the title and the last row to the
// dashboard; the document is drawn between them.
type Document struct {
	screen  terminal.Screen
	lines   []*Line
	current int // 1-based
	top     int // lines scrolled off above the window
}

func New(screen terminal.Screen) *Document {
	d := &Document{screen: screen}
	d.Load(nil)
	return d
}

// Load replaces the content with the given lines and resets the cursor to
// the start of the document. It does not draw.
func (d *Document) Load(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	d.lines = make([]*Line, len(lines))
	for i, s := range lines {
		d.lines[i] = NewLine(d.screen, s)
	}
	d.current = 1
	d.top = 0
	d.lines[0].active = true
}

func (d *Document) Len() int { return len(d.lines) }

// CurrentRow is the 1-based index of the line holding the cursor.
func (d *Document) CurrentRow() int { return d.current }

// Line returns line n (1-based).
func (d *Document) Line(n int) *Line { return d.lines[n-1] }

func (d *Document) line() *Line { return d.lines[d.current-1] }

// Lines returns the text of every line.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.Content()
	}
	return out
}

// Content joins the lines with CRLF.
func (d *Document) Content() string {
	return strings.Join(d.Lines(), "\r\n")
}

// Pos is the cursor position in document coordinates.
func (d *Document) Pos() Pos {
	return Pos{Row: d.current, Col: d.line().Cursor() + 1}
}

// CursorScreen is where the hardware cursor belongs for the current line.
func (d *Document) CursorScreen() (row, col int) {
	return d.screenRow(d.current), d.line().Col()
}

// setCurrent moves the cursor to line n, updating the active labels.
func (d *Document) setCurrent(n int) {
	d.line().SetActive(false)
	d.current = n
	d.line().SetActive(true)
}

// MoveVertical steps one line up or down, keeping the screen column where
// the destination line is long enough. It reports false at the first or
// last line.
func (d *Document) MoveVertical(dir int) bool {
	moved, scrolled := d.moveVertical(dir)
	if scrolled {
		d.RenderAll()
	}
	return moved
}

func (d *Document) moveVertical(dir int) (moved, scrolled bool) {
	target := d.current + dir
	if target < 1 || target > len(d.lines) {
		return false, false
	}
	offset := d.line().Offset()
	top := d.top
	d.setCurrent(target)
	d.clampViewport()
	d.line().SetColumn(offset)
	return true, d.top != top
}

// MoveHorizontal steps one column, crossing to the end of the previous line
// or the start of the next one at the line boundaries.
func (d *Document) MoveHorizontal(dir textfield.Direction) {
	l := d.line()
	switch dir {
	case textfield.Left:
		if l.IsAtLineStart() {
			if d.MoveVertical(Up) {
				d.line().MoveToEnd()
			}
			return
		}
		l.MoveLeft()
	case textfield.Right:
		if l.IsAtLineEnd() {
			if d.MoveVertical(Down) {
				d.line().MoveToStart()
			}
			return
		}
		l.MoveRight()
	}
}

// JumpWord moves past the word next to the cursor. At a line boundary it
// behaves like MoveHorizontal.
func (d *Document) JumpWord(dir textfield.Direction) {
	l := d.line()
	if (dir == textfield.Left && l.IsAtLineStart()) || (dir == textfield.Right && l.IsAtLineEnd()) {
		d.MoveHorizontal(dir)
		return
	}
	l.JumpToWordEdge(dir)
}

func (d *Document) Home() { d.line().MoveToStart() }
func (d *Document) End()  { d.line().MoveToEnd() }

func (d *Document) InsertChar(ch rune) { d.line().Insert(ch) }

// InsertLine splits the current line at the cursor and moves to the start
// of the new line below it.
func (d *Document) InsertLine() {
	cur := d.line()
	rest := ""
	if !cur.IsAtLineEnd() {
		rest = cur.TruncateAfterCursor()
	}
	nl := NewLine(d.screen, rest)

	d.lines = append(d.lines, nil)
	copy(d.lines[d.current+1:], d.lines[d.current:])
	d.lines[d.current] = nl

	d.setCurrent(d.current + 1)
	if len(d.lines) > d.height() {
		d.top++
	}
	d.clampViewport()
	d.RenderAll()
}

// DeleteLine removes the current line and appends its text to the previous
// line, leaving the cursor at the join point. It reports false on the first
// line.
func (d *Document) DeleteLine() bool {
	if d.current == 1 {
		return false
	}
	idx := d.current - 1
	removed := d.lines[idx]
	removed.Detach()
	d.lines = append(d.lines[:idx], d.lines[idx+1:]...)
	d.current--

	prev := d.line()
	prev.PushStr(removed.Content())
	prev.MoveToEnd()
	for i, n := 0, removed.Len(); i < n; i++ {
		prev.MoveLeft()
	}

	if len(d.lines) >= d.height() && d.top > 0 {
		d.top--
	}
	d.clampViewport()
	d.RenderAll()
	return true
}

// Delete removes the character before the cursor, joining with the previous
// line at a line start. It returns the removed character, '\n' for a join,
// and reports false at the very start of the document.
func (d *Document) Delete() (rune, bool) {
	l := d.line()
	if l.IsAtLineStart() {
		if !d.DeleteLine() {
			return 0, false
		}
		return '\n', true
	}
	return l.DeleteBackward()
}

// Search returns the position of every occurrence of target, line by line.
func (d *Document) Search(target string) ([]Pos, bool) {
	var found []Pos
	for i, l := range d.lines {
		offsets, ok := l.FindAll(target)
		if !ok {
			continue
		}
		for _, off := range offsets {
			found = append(found, Pos{Row: i + 1, Col: off + 1})
		}
	}
	return found, len(found) > 0
}

// Valid reports whether pos lies inside the document.
func (d *Document) Valid(pos Pos) bool {
	if pos.Row < 1 || pos.Row > len(d.lines) {
		return false
	}
	return pos.Col >= 1 && pos.Col <= d.lines[pos.Row-1].Len()+1
}

// JumpTo walks the cursor to pos with the same single steps the arrow keys
// use, then redraws. Positions outside the document are refused.
func (d *Document) JumpTo(pos Pos) bool {
	if !d.Valid(pos) {
		return false
	}
	dir := Down
	if pos.Row < d.current {
		dir = Up
	}
	for d.current != pos.Row {
		d.moveVertical(dir)
	}
	l := d.line()
	l.Detach()
	l.MoveToStart()
	for i, n := 0, pos.Col-1; i < n; i++ {
		l.MoveRight()
	}
	d.RenderAll()
	return true
}
