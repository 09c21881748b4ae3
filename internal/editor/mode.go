package editor

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/quill/internal/dashboard"
	"github.com/JackWReid/quill/internal/prompt"
	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/theme"
)

// Kind names one of the prompts.
type Kind int

const (
	KindSave Kind = iota
	KindFind
	KindGoto
	KindOpen
)

func (k Kind) String() string {
	switch k {
	case KindSave:
		return "save"
	case KindFind:
		return "find"
	case KindGoto:
		return "goto"
	case KindOpen:
		return "open"
	}
	return "unknown"
}

var chordKinds = map[int]Kind{
	terminal.KeyCtrlS: KindSave,
	terminal.KeyCtrlF: KindFind,
	terminal.KeyCtrlG: KindGoto,
	terminal.KeyCtrlO: KindOpen,
}

// chordKind maps a mode chord to the prompt it toggles.
func chordKind(key terminal.Key) (Kind, bool) {
	if !key.IsChord() {
		return 0, false
	}
	k, ok := chordKinds[key.Type]
	return k, ok
}

func (e *Editor) component(k Kind) prompt.Component {
	switch k {
	case KindSave:
		return e.saver
	case KindFind:
		return e.finder
	case KindGoto:
		return e.positioner
	case KindOpen:
		return e.opener
	}
	panic(fmt.Sprintf("editor: unknown prompt kind %d", k))
}

// toggle is the mode transition for a chord. From normal mode it opens the
// prompt; the same chord closes it again. Other chords are ignored while a
// prompt is open.
func (e *Editor) toggle(k Kind) {
	c := e.component(k)
	if e.active != nil {
		if e.active == c {
			e.closePrompt()
		}
		return
	}

	var state dashboard.State
	switch k {
	case KindSave:
		e.saver.Activate(e.doc.Content())
		state = dashboard.Saving
	case KindFind:
		e.finder.Activate()
		state = dashboard.Finding
	case KindGoto:
		e.positioner.Activate(e.doc.Pos())
		state = dashboard.Positioning
	case KindOpen:
		e.opener.Activate()
		state = dashboard.Opening
	}
	e.active = c
	e.dashboard.ClearMessage()
	e.dashboard.SetState(state)
	c.Prompt().Open()
	e.logger.Printf("mode: %s", k)
}

// closePrompt returns to normal mode and redraws the row the prompt covered.
func (e *Editor) closePrompt() {
	if e.active == nil {
		return
	}
	row := e.active.Prompt().Close()
	e.active = nil
	e.doc.RestoreRow(row)
	e.dashboard.RestoreState()
	e.logger.Printf("mode: normal")
}

func (e *Editor) modeName() string {
	switch e.active {
	case nil:
		return "normal"
	case prompt.Component(e.saver):
		return KindSave.String()
	case prompt.Component(e.finder):
		return KindFind.String()
	case prompt.Component(e.positioner):
		return KindGoto.String()
	case prompt.Component(e.opener):
		return KindOpen.String()
	}
	return "unknown"
}

// renderTitle draws the centred title bar on the first row.
func (e *Editor) renderTitle() {
	width := e.screen.Width()
	title := runewidth.Truncate(fmt.Sprintf("quill %s", e.version), width, "")
	pad := (width - runewidth.StringWidth(title)) / 2

	e.screen.SaveCursor()
	e.screen.MoveTo(1, 1)
	e.screen.WriteStyled(runewidth.FillRight(runewidth.FillLeft(title, pad+runewidth.StringWidth(title)), width), theme.Title())
	e.screen.RestoreCursor()
}
