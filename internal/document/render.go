package document

import (
	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/quill/internal/theme"
)

// RenderAll redraws every document row: the visible lines with fresh labels
// and an empty gutter on rows past the last line. Lines outside the window
// are detached so edits to them do not draw.
func (d *Document) RenderAll() {
	lw := LabelWidth(len(d.lines))
	d.screen.SaveCursor()
	for i, l := range d.lines {
		n := i + 1
		l.active = n == d.current
		if !d.visible(n) {
			l.SetMargins(lw, 1)
			l.Detach()
			continue
		}
		l.Render(d.screenRow(n), n, lw)
	}
	for row := d.screenRow(len(d.lines)) + 1; row < firstRow+d.height(); row++ {
		d.blankRow(row, lw)
	}
	d.screen.RestoreCursor()
}

// RestoreRow redraws a single screen row inside the document area, used
// after a prompt that covered it closes.
func (d *Document) RestoreRow(row int) {
	n, ok := d.lineAt(row)
	if !ok {
		if row >= firstRow && row < firstRow+d.height() {
			d.screen.SaveCursor()
			d.blankRow(row, LabelWidth(len(d.lines)))
			d.screen.RestoreCursor()
		}
		return
	}
	d.lines[n-1].Render(row, n, LabelWidth(len(d.lines)))
}

func (d *Document) blankRow(row, labelWidth int) {
	d.screen.MoveTo(row, 1)
	d.screen.WriteStyled(runewidth.FillRight("", labelWidth), theme.InactiveLabel())
	d.screen.ClearToEOL()
}

// Relayout re-fits every line and the window after the screen size changed,
// then redraws.
func (d *Document) Relayout() {
	for _, l := range d.lines {
		l.Refit()
	}
	d.clampViewport()
	d.RenderAll()
}
