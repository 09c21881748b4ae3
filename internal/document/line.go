package document

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/textfield"
	"github.com/JackWReid/quill/internal/theme"
)

// LabelWidth is the width of the line number gutter for a document of n
// lines: the digits of n plus one separating space.
func LabelWidth(n int) int {
	return len(strconv.Itoa(max(n, 1))) + 1
}

// Line is a document line: an editable field behind a line number label.
type Line struct {
	*textfield.Field
	screen terminal.Screen

	index      int
	labelWidth int
	active     bool
}

func NewLine(screen terminal.Screen, content string) *Line {
	l := &Line{Field: textfield.New(screen, 2, 1), screen: screen, labelWidth: 2}
	l.Field.SetContent(content)
	return l
}

func (l *Line) Index() int      { return l.index }
func (l *Line) LabelWidth() int { return l.labelWidth }
func (l *Line) Active() bool    { return l.active }

// Render draws the label, the content and the trailing margin column on the
// given screen row, recording index and label width for later redraws.
func (l *Line) Render(row, index, labelWidth int) {
	l.index, l.labelWidth = index, labelWidth
	l.Field.SetMargins(labelWidth, 1)
	l.Field.Render(row)
	if row <= 0 {
		return
	}
	l.renderLabel()
	l.screen.SaveCursor()
	l.screen.MoveTo(row, l.screen.Width())
	l.screen.WriteStyled(" ", terminal.Plain)
	l.screen.RestoreCursor()
}

func (l *Line) renderLabel() {
	row := l.Row()
	if row <= 0 {
		return
	}
	style := theme.InactiveLabel()
	if l.active {
		style = theme.ActiveLabel()
	}
	label := runewidth.FillRight(strconv.Itoa(l.index), l.labelWidth)
	l.screen.SaveCursor()
	l.screen.MoveTo(row, 1)
	l.screen.WriteStyled(runewidth.Truncate(label, l.screen.Width(), ""), style)
	l.screen.RestoreCursor()
}

// SetActive marks the line as holding the cursor and redraws its label.
func (l *Line) SetActive(active bool) {
	if l.active == active {
		return
	}
	l.active = active
	l.renderLabel()
}

func (l *Line) IsAtLineStart() bool { return l.StateLeft().AtEnd }
func (l *Line) IsAtLineEnd() bool   { return l.StateRight().AtEnd }

// FindAll returns the offset of every occurrence of pattern, scanning left
// to right and resuming after each match, so overlapping occurrences are
// not reported.
func (l *Line) FindAll(pattern string) ([]int, bool) {
	if pattern == "" {
		return nil, false
	}
	text := l.Content()
	var offsets []int
	consumed := 0
	for {
		i := strings.Index(text, pattern)
		if i < 0 {
			break
		}
		offsets = append(offsets, consumed+utf8.RuneCountInString(text[:i]))
		consumed += utf8.RuneCountInString(text[:i+len(pattern)])
		text = text[i+len(pattern):]
	}
	return offsets, len(offsets) > 0
}
