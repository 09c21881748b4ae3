// Package textfield implements a single-line editable text area with a
// horizontally scrolling window, used for document lines and prompt inputs.
package textfield

import (
	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/theme"
)

// Field is one line of editable text drawn between a left and a right
// margin. The window over the content starts at overflowLeft and spans the
// viewport width; the logical cursor always lies inside it, possibly one
// past its last column.
type Field struct {
	screen      terminal.Screen
	content     []rune
	placeholder string

	marginLeft  int
	marginRight int

	overflowLeft int
	cursor       int

	// Screen row the field was last drawn on; 0 when it is not on screen.
	row int
}

// Edge describes where the cursor sits relative to one side of the field.
type Edge struct {
	AtSide bool // cursor is at the visible edge of the window
	AtEnd  bool // cursor is at the absolute start or end of the content
}

func New(screen terminal.Screen, marginLeft, marginRight int) *Field {
	return &Field{screen: screen, marginLeft: marginLeft, marginRight: marginRight}
}

// Viewport is the number of columns available for content.
func (f *Field) Viewport() int {
	return max(0, f.screen.Width()-f.marginLeft-f.marginRight)
}

func (f *Field) Content() string     { return string(f.content) }
func (f *Field) Len() int            { return len(f.content) }
func (f *Field) Placeholder() string { return f.placeholder }
func (f *Field) Cursor() int         { return f.cursor }
func (f *Field) OverflowLeft() int   { return f.overflowLeft }
func (f *Field) MarginLeft() int     { return f.marginLeft }
func (f *Field) MarginRight() int    { return f.marginRight }

// OverflowRight is the number of characters hidden past the right edge.
func (f *Field) OverflowRight() int {
	return max(0, len(f.content)-f.overflowLeft-f.Viewport())
}

// Offset is the cursor's distance from the left edge of the window.
func (f *Field) Offset() int { return f.cursor - f.overflowLeft }

// Col is the 1-based screen column of the cursor.
func (f *Field) Col() int { return f.marginLeft + f.Offset() + 1 }

// Row is the screen row the field was last rendered on, or 0.
func (f *Field) Row() int { return f.row }

// Detach marks the field as off screen so edits stop redrawing it.
func (f *Field) Detach() { f.row = 0 }

func (f *Field) StateLeft() Edge {
	return Edge{AtSide: f.cursor == f.overflowLeft, AtEnd: f.cursor == 0}
}

func (f *Field) StateRight() Edge {
	return Edge{AtSide: f.cursor == f.overflowLeft+f.Viewport(), AtEnd: f.cursor == len(f.content)}
}

func (f *Field) AtStart() bool { return f.cursor == 0 }
func (f *Field) AtEnd() bool   { return f.cursor == len(f.content) }

// clamp restores the window invariants after any change to the content,
// the cursor or the screen width.
func (f *Field) clamp() {
	n := len(f.content)
	f.cursor = max(0, min(f.cursor, n))
	vp := f.Viewport()
	if n <= vp {
		f.overflowLeft = 0
		return
	}
	f.overflowLeft = max(0, min(f.overflowLeft, n-vp))
	if f.cursor < f.overflowLeft {
		f.overflowLeft = f.cursor
	}
	if f.cursor > f.overflowLeft+vp {
		f.overflowLeft = f.cursor - vp
	}
}

func (f *Field) redraw() {
	if f.row > 0 {
		f.Render(f.row)
	}
}

// Insert puts ch at the cursor. At the right edge of the window the content
// scrolls under the cursor instead of the cursor moving.
func (f *Field) Insert(ch rune) {
	f.content = append(f.content, 0)
	copy(f.content[f.cursor+1:], f.content[f.cursor:])
	f.content[f.cursor] = ch
	f.cursor++
	f.clamp()
	f.redraw()
}

// DeleteBackward removes the character left of the cursor and returns it.
// It reports false when the cursor is at the start of the content. When the
// tail of the content is showing, the window is pulled back by one, which
// undoes the scroll an Insert at the right edge makes.
func (f *Field) DeleteBackward() (rune, bool) {
	if f.cursor == 0 {
		return 0, false
	}
	tailShown := f.OverflowRight() == 0
	removed := f.content[f.cursor-1]
	f.content = append(f.content[:f.cursor-1], f.content[f.cursor:]...)
	f.cursor--
	if tailShown && f.overflowLeft > 0 {
		f.overflowLeft--
	}
	f.clamp()
	f.redraw()
	return removed, true
}

// MoveLeft steps the cursor one column left, scrolling when it is at the
// visible edge. It reports false at the start of the content.
func (f *Field) MoveLeft() bool {
	return f.move(Left, true)
}

// MoveRight is the mirror of MoveLeft.
func (f *Field) MoveRight() bool {
	return f.move(Right, true)
}

func (f *Field) move(dir Direction, rerender bool) bool {
	switch dir {
	case Left:
		state := f.StateLeft()
		if state.AtEnd {
			return false
		}
		f.cursor--
		if !state.AtSide {
			return true
		}
		f.overflowLeft--
	case Right:
		state := f.StateRight()
		if state.AtEnd {
			return false
		}
		f.cursor++
		if !state.AtSide {
			return true
		}
		f.overflowLeft++
	}
	if rerender {
		f.redraw()
	}
	return true
}

func (f *Field) MoveToStart() {
	scrolled := f.overflowLeft != 0
	f.cursor = 0
	f.overflowLeft = 0
	if scrolled {
		f.redraw()
	}
}

// MoveToEnd puts the cursor after the last character, showing the tail of
// overflowing content.
func (f *Field) MoveToEnd() {
	before := f.overflowLeft
	f.cursor = len(f.content)
	if vp := f.Viewport(); len(f.content) > vp {
		f.overflowLeft = len(f.content) - vp
	}
	if f.overflowLeft != before {
		f.redraw()
	}
}

// JumpToWordEdge moves past the run of letters next to the cursor, or one
// column when there is none. The field is redrawn once at the end.
func (f *Field) JumpToWordEdge(dir Direction) {
	steps := wordRun(f.content, f.cursor, dir)
	if steps == 0 {
		steps = 1
	}
	before := f.overflowLeft
	for i := 0; i < steps; i++ {
		if !f.move(dir, false) {
			break
		}
	}
	if f.overflowLeft != before {
		f.redraw()
	}
}

// SetColumn places the cursor at the given offset from the left edge of the
// window, stopping at the end of the content.
func (f *Field) SetColumn(offset int) {
	f.cursor = min(f.overflowLeft+max(0, offset), len(f.content))
	f.clamp()
}

// TruncateAfterCursor cuts the content at the cursor and returns the part
// that was to its right.
func (f *Field) TruncateAfterCursor() string {
	rest := string(f.content[f.cursor:])
	f.content = f.content[:f.cursor]
	f.clamp()
	f.redraw()
	return rest
}

func (f *Field) SetContent(s string) {
	f.content = []rune(s)
	f.clamp()
	f.redraw()
}

// PushStr appends s without moving the cursor.
func (f *Field) PushStr(s string) {
	f.content = append(f.content, []rune(s)...)
	f.clamp()
	f.redraw()
}

func (f *Field) Clear() {
	f.content = f.content[:0]
	f.cursor = 0
	f.overflowLeft = 0
	f.redraw()
}

func (f *Field) SetPlaceholder(s string) {
	f.placeholder = s
	if len(f.content) == 0 {
		f.redraw()
	}
}

// SetMargins changes the reserved columns on either side and re-fits the
// window. It does not redraw.
func (f *Field) SetMargins(left, right int) {
	f.marginLeft, f.marginRight = left, right
	f.clamp()
}

// Refit re-fits the window after the screen width changed.
func (f *Field) Refit() { f.clamp() }

// Render draws the field on the given screen row: the placeholder, dimmed,
// when the content is empty, otherwise the visible slice. The rest of the
// viewport is blanked. The hardware cursor is left where it was.
func (f *Field) Render(row int) {
	f.row = row
	if row <= 0 {
		return
	}
	vp := f.Viewport()
	f.screen.SaveCursor()
	f.screen.MoveTo(row, f.marginLeft+1)
	if len(f.content) == 0 && f.placeholder != "" {
		hint := runewidth.Truncate(f.placeholder, vp, "")
		f.screen.WriteStyled(hint, theme.Placeholder())
		f.screen.WriteStyled(runewidth.FillRight("", vp-runewidth.StringWidth(hint)), terminal.Plain)
	} else {
		end := min(len(f.content), f.overflowLeft+vp)
		f.screen.WriteStyled(runewidth.FillRight(string(f.content[f.overflowLeft:end]), vp), terminal.Plain)
	}
	f.screen.RestoreCursor()
}
