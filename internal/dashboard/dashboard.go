// Package dashboard draws the status bar on the last screen row.
package dashboard

import (
	"path/filepath"

	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/quill/internal/document"
	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/theme"
)

// State is the editor mode shown in the left segment.
type State int

const (
	Saved State = iota
	Modified
	Saving
	Finding
	Positioning
	Opening
)

func (s State) String() string {
	switch s {
	case Saved:
		return "Saved"
	case Modified:
		return "Modified"
	case Saving:
		return "Saving"
	case Finding:
		return "Finding"
	case Positioning:
		return "Positioning"
	case Opening:
		return "Opening"
	}
	return "Unknown"
}

// Dashboard is the status bar: state on the left, cursor position on the
// right, and the file name or a message in between.
type Dashboard struct {
	screen  terminal.Screen
	state   State
	dirty   bool
	pos     document.Pos
	file    string
	message string
}

func New(screen terminal.Screen) *Dashboard {
	return &Dashboard{screen: screen, pos: document.Pos{Row: 1, Col: 1}}
}

func (d *Dashboard) State() State          { return d.state }
func (d *Dashboard) Pos() document.Pos     { return d.pos }
func (d *Dashboard) Message() string       { return d.message }
func (d *Dashboard) Dirty() bool           { return d.dirty }
func (d *Dashboard) SetFile(path string)   { d.file = path }
func (d *Dashboard) SetMessage(msg string) { d.message = msg }
func (d *Dashboard) ClearMessage()         { d.message = "" }

// SetState switches to a prompt state.
func (d *Dashboard) SetState(s State) { d.state = s }

// SetDirty records whether the document has unsaved changes. Outside of a
// prompt the state follows it.
func (d *Dashboard) SetDirty(dirty bool) {
	d.dirty = dirty
	if d.state == Saved || d.state == Modified {
		d.RestoreState()
	}
}

// RestoreState leaves a prompt state for Saved or Modified.
func (d *Dashboard) RestoreState() {
	if d.dirty {
		d.state = Modified
	} else {
		d.state = Saved
	}
}

func (d *Dashboard) SetPos(pos document.Pos) { d.pos = pos }

// Render draws the bar on the last row. The hardware cursor is left where
// it was.
func (d *Dashboard) Render() {
	width := d.screen.Width()
	row := d.screen.Height()
	if width <= 0 || row <= 0 {
		return
	}
	left := " " + d.state.String() + " "
	right := " " + d.pos.Label() + " "

	middle := d.message
	if middle == "" {
		middle = shortPath(d.file)
	}
	room := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if room < 0 {
		right = ""
		room = width - runewidth.StringWidth(left)
	}
	if room < 0 {
		left = runewidth.Truncate(left, width, "")
		room = 0
	}
	filler := ""
	if room > 0 {
		filler = runewidth.FillRight(runewidth.Truncate(" "+middle, room, "…"), room)
	}

	d.screen.SaveCursor()
	d.screen.MoveTo(row, 1)
	d.screen.WriteStyled(left, theme.Segment())
	d.screen.WriteStyled(filler, theme.Filler())
	d.screen.WriteStyled(right, theme.Segment())
	d.screen.RestoreCursor()
}

// shortPath shows a file as parent/base.
func shortPath(path string) string {
	if path == "" {
		return "[unnamed]"
	}
	dir := filepath.Base(filepath.Dir(path))
	base := filepath.Base(path)
	if dir == "." || dir == "/" {
		return base
	}
	return dir + "/" + base
}
