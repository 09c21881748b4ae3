// Package prompt implements the single-line modal prompts drawn over the
// document: save, find, goto and open.
package prompt

import (
	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/quill/internal/document"
	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/textfield"
	"github.com/JackWReid/quill/internal/theme"
)

// Prompt is a label, an editable field and a button drawn on one row of the
// document area. A positive Anchor counts rows down from the first document
// row (1 is the first); a negative one counts up from the last (-1 is the
// last).
type Prompt struct {
	Label  string
	Button string
	Anchor int
	Field  *textfield.Field

	screen terminal.Screen
}

func New(screen terminal.Screen, label, button string, anchor int) *Prompt {
	p := &Prompt{Label: label, Button: button, Anchor: anchor, screen: screen}
	p.Field = textfield.New(screen, runewidth.StringWidth(label), runewidth.StringWidth(button)+1)
	return p
}

// Row is the screen row the prompt is drawn on.
func (p *Prompt) Row() int {
	if p.Anchor > 0 {
		return p.Anchor + 1
	}
	return p.screen.Height() + p.Anchor
}

// CursorCol is the screen column of the field cursor.
func (p *Prompt) CursorCol() int { return p.Field.Col() }

func (p *Prompt) Content() string { return p.Field.Content() }

// Open draws the prompt with the field cursor at the end of its content.
func (p *Prompt) Open() {
	p.Field.SetMargins(runewidth.StringWidth(p.Label), runewidth.StringWidth(p.Button)+1)
	p.Field.MoveToEnd()
	p.Render()
}

// Render redraws the whole prompt row without moving the field cursor.
func (p *Prompt) Render() {
	row := p.Row()
	width := p.screen.Width()
	p.Field.Refit()

	p.screen.SaveCursor()
	p.screen.MoveTo(row, 1)
	p.screen.WriteStyled(runewidth.Truncate(p.Label, width, ""), theme.PromptLabel())
	if bw := runewidth.StringWidth(p.Button); bw+1 <= width {
		p.screen.MoveTo(row, width-bw)
		p.screen.WriteStyled(" ", terminal.Plain)
		p.screen.WriteStyled(p.Button, theme.PromptLabel())
	}
	p.screen.RestoreCursor()
	p.Field.Render(row)
}

// Close stops the field from drawing and returns the row it covered.
func (p *Prompt) Close() int {
	p.Field.Detach()
	return p.Row()
}

// Edit applies a line editing key to the field. It reports whether the key
// was one.
func (p *Prompt) Edit(key terminal.Key) bool {
	f := p.Field
	switch key.Type {
	case terminal.KeyBackspace:
		f.DeleteBackward()
	case terminal.KeyDelete:
		if f.MoveRight() {
			f.DeleteBackward()
		}
	case terminal.KeyLeft:
		f.MoveLeft()
	case terminal.KeyRight:
		f.MoveRight()
	case terminal.KeyCtrlLeft:
		f.JumpToWordEdge(textfield.Left)
	case terminal.KeyCtrlRight:
		f.JumpToWordEdge(textfield.Right)
	case terminal.KeyHome:
		f.MoveToStart()
	case terminal.KeyEnd:
		f.MoveToEnd()
	case terminal.KeyRune:
		// The window arithmetic counts one cell per character.
		if runewidth.RuneWidth(key.Rune) != 1 {
			return false
		}
		f.Insert(key.Rune)
	default:
		return false
	}
	return true
}

// Outcome is what a prompt asks of the editor after handling a key. Close
// returns to normal mode and Jump moves the document cursor to Target.
type Outcome struct {
	Close   bool
	Jump    bool
	Target  document.Pos
	Message string
	Err     error
}

// Component is a prompt with its own behaviour for the keys it receives
// while it is open.
type Component interface {
	Prompt() *Prompt
	HandleKey(key terminal.Key) Outcome
}
