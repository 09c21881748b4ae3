package document

// The document window spans screen rows 2 through Height-1.
const firstRow = 2

// height is the number of screen rows available to the document.
func (d *Document) height() int {
	return max(1, d.screen.Height()-2)
}

// Height is the number of document rows that fit on screen.
func (d *Document) Height() int { return d.height() }

// OverflowTop is the number of lines scrolled off above the window.
func (d *Document) OverflowTop() int { return d.top }

// OverflowBottom is the number of lines hidden below the window.
func (d *Document) OverflowBottom() int {
	return max(0, len(d.lines)-d.top-d.height())
}

// screenRow maps line n (1-based) to its screen row. The result is only
// meaningful for visible lines.
func (d *Document) screenRow(n int) int {
	return n - d.top + firstRow - 1
}

// lineAt maps a screen row back to a line number, reporting false for rows
// outside the document area or past the last line.
func (d *Document) lineAt(row int) (int, bool) {
	if row < firstRow || row >= firstRow+d.height() {
		return 0, false
	}
	n := row - firstRow + 1 + d.top
	return n, n <= len(d.lines)
}

func (d *Document) visible(n int) bool {
	return n > d.top && n <= d.top+d.height()
}

// clampViewport keeps the window inside the document and the current line
// inside the window.
func (d *Document) clampViewport() {
	h := d.height()
	d.top = max(0, min(d.top, len(d.lines)-h))
	if d.current-1 < d.top {
		d.top = d.current - 1
	}
	if d.current > d.top+h {
		d.top = d.current - h
	}
}
