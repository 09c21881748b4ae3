// Package editor runs the event loop that ties the document, the prompts
// and the dashboard to a terminal screen.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/JackWReid/quill/internal/config"
	"github.com/JackWReid/quill/internal/dashboard"
	"github.com/JackWReid/quill/internal/document"
	"github.com/JackWReid/quill/internal/prompt"
	"github.com/JackWReid/quill/internal/terminal"
	"github.com/JackWReid/quill/internal/textfield"
)

// Editor is the top-level editor state. A nil active component means
// normal mode; otherwise keys go to that prompt.
type Editor struct {
	screen    terminal.Screen
	doc       *document.Document
	dashboard *dashboard.Dashboard

	saver      *prompt.Saver
	finder     *prompt.Finder
	positioner *prompt.Positioner
	opener     *prompt.Opener
	active     prompt.Component

	history  *History
	logger   *log.Logger
	settings config.Settings
	version  string
	path     string
	dirty    bool
	quit     bool
}

type Option func(*Editor)

// WithLogger sends diagnostics to l instead of discarding them.
func WithLogger(l *log.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

func WithSettings(s config.Settings) Option {
	return func(e *Editor) { e.settings = s.Normalise() }
}

// WithVersion sets the version shown in the title bar.
func WithVersion(v string) Option {
	return func(e *Editor) { e.version = v }
}

func New(screen terminal.Screen, opts ...Option) *Editor {
	e := &Editor{
		screen:   screen,
		logger:   log.New(io.Discard, "", 0),
		settings: config.Defaults(),
		version:  "dev",
		history:  NewHistory(MaxHistory),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.doc = document.New(screen)
	e.dashboard = dashboard.New(screen)
	e.saver = prompt.NewSaver(screen, e.settings.SavePath, e.save)
	e.finder = prompt.NewFinder(screen, e.doc, e.settings.HistorySize)
	e.positioner = prompt.NewPositioner(screen, e.doc)
	e.opener = prompt.NewOpener(screen, e.open)
	return e
}

func (e *Editor) Document() *document.Document    { return e.doc }
func (e *Editor) Dashboard() *dashboard.Dashboard { return e.dashboard }
func (e *Editor) History() *History               { return e.history }
func (e *Editor) Path() string                    { return e.path }
func (e *Editor) Dirty() bool                     { return e.dirty }

// Active returns the open prompt, or nil in normal mode.
func (e *Editor) Active() prompt.Component { return e.active }

// LoadLines replaces the document with lines already read from path.
func (e *Editor) LoadLines(path string, lines []string) {
	e.replace(path, lines)
	e.logger.Printf("loaded %s: %d lines", path, e.doc.Len())
}

// open replaces the document with an existing file.
func (e *Editor) open(path string) error {
	lines, err := ReadLines(path)
	if err != nil {
		e.logger.Printf("open %s: %v", path, err)
		return err
	}
	e.replace(path, lines)
	e.doc.RenderAll()
	e.logger.Printf("opened %s: %d lines", path, e.doc.Len())
	return nil
}

func (e *Editor) replace(path string, lines []string) {
	e.doc.Load(lines)
	e.history.Clear()
	e.path = path
	e.saver.SetPath(path)
	e.dashboard.SetFile(path)
	e.setDirty(false)
}

func (e *Editor) save(path, content string) error {
	if err := WriteFile(path, content); err != nil {
		e.logger.Printf("save failed: %v", err)
		return err
	}
	e.path = path
	e.dashboard.SetFile(path)
	e.setDirty(false)
	e.logger.Printf("saved %s", path)
	return nil
}

func (e *Editor) setDirty(dirty bool) {
	e.dirty = dirty
	e.dashboard.SetDirty(dirty)
}

// Run draws the screen and processes keys until Esc is pressed in normal
// mode or the input ends. Terminal errors end the loop and are returned.
func (e *Editor) Run() error {
	e.renderAll()
	if err := e.present(); err != nil {
		return err
	}
	for !e.quit {
		select {
		case <-e.screen.Resized():
			e.relayout()
		default:
		}

		key, err := e.screen.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		e.HandleKey(key)
		if err := e.present(); err != nil {
			return err
		}
	}
	return nil
}

// HandleKey dispatches one key to the open prompt or to normal mode.
func (e *Editor) HandleKey(key terminal.Key) {
	if kind, ok := chordKind(key); ok {
		e.toggle(kind)
		return
	}
	if e.active != nil {
		if key.Type == terminal.KeyEscape {
			e.closePrompt()
			return
		}
		e.handlePromptKey(key)
		return
	}
	e.dashboard.ClearMessage()
	e.handleNormalKey(key)
}

func (e *Editor) handleNormalKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyEscape:
		e.quit = true
	case terminal.KeyUp:
		e.doc.MoveVertical(document.Up)
	case terminal.KeyDown:
		e.doc.MoveVertical(document.Down)
	case terminal.KeyLeft:
		e.doc.MoveHorizontal(textfield.Left)
	case terminal.KeyRight:
		e.doc.MoveHorizontal(textfield.Right)
	case terminal.KeyCtrlLeft:
		e.doc.JumpWord(textfield.Left)
	case terminal.KeyCtrlRight:
		e.doc.JumpWord(textfield.Right)
	case terminal.KeyHome:
		e.doc.Home()
	case terminal.KeyEnd:
		e.doc.End()
	case terminal.KeyEnter:
		before := e.doc.Pos()
		e.doc.InsertLine()
		e.record(Edit{Type: OpInsertLine, Before: before, After: e.doc.Pos()})
	case terminal.KeyBackspace:
		e.deleteBackward()
	case terminal.KeyDelete:
		// Forward delete is a step right and a backspace, so undo treats
		// both the same way.
		at := e.doc.Pos()
		e.doc.MoveHorizontal(textfield.Right)
		if e.doc.Pos() == at {
			return
		}
		e.deleteBackward()
	case terminal.KeyRune:
		if key.Rune < ' ' || key.Rune > '~' {
			return
		}
		before := e.doc.Pos()
		e.doc.InsertChar(key.Rune)
		e.record(Edit{Type: OpInsertChar, Char: key.Rune, Before: before, After: e.doc.Pos()})
	case terminal.KeyCtrlZ:
		e.undo()
	case terminal.KeyCtrlY:
		e.redo()
	}
}

func (e *Editor) deleteBackward() {
	before := e.doc.Pos()
	ch, ok := e.doc.Delete()
	if !ok {
		return
	}
	edit := Edit{Type: OpDeleteChar, Char: ch, Before: before, After: e.doc.Pos()}
	if ch == '\n' {
		edit = Edit{Type: OpDeleteLine, Before: before, After: e.doc.Pos()}
	}
	e.record(edit)
}

func (e *Editor) record(edit Edit) {
	e.history.Push(edit)
	e.setDirty(true)
}

func (e *Editor) undo() {
	edit, ok := e.history.Undo()
	if !ok {
		e.dashboard.SetMessage("nothing to undo")
		return
	}
	if !revert(e.doc, edit) {
		e.logger.Printf("undo %s at %s failed", edit.Type, edit.After)
		return
	}
	e.setDirty(true)
}

func (e *Editor) redo() {
	edit, ok := e.history.Redo()
	if !ok {
		e.dashboard.SetMessage("nothing to redo")
		return
	}
	if !replay(e.doc, edit) {
		e.logger.Printf("redo %s at %s failed", edit.Type, edit.Before)
		return
	}
	e.setDirty(true)
}

func (e *Editor) handlePromptKey(key terminal.Key) {
	out := e.active.HandleKey(key)
	if out.Err != nil {
		e.logger.Printf("%s: %v", e.modeName(), out.Err)
	}
	if out.Message != "" {
		e.dashboard.SetMessage(out.Message)
	}
	if out.Close {
		e.closePrompt()
	}
	if out.Jump {
		if !e.doc.JumpTo(out.Target) {
			e.logger.Printf("jump to %s refused", out.Target)
			e.dashboard.SetMessage(fmt.Sprintf("%s is outside the document", out.Target))
		}
		if e.active != nil {
			e.active.Prompt().Render()
		}
	}
}

// present refreshes the dashboard, puts the hardware cursor where input
// goes and flushes the frame.
func (e *Editor) present() error {
	e.dashboard.SetPos(e.doc.Pos())
	e.dashboard.Render()
	if e.active != nil {
		p := e.active.Prompt()
		e.screen.MoveTo(p.Row(), p.CursorCol())
	} else {
		e.screen.MoveTo(e.doc.CursorScreen())
	}
	e.screen.ShowCursor()
	return e.screen.Flush()
}

func (e *Editor) renderAll() {
	e.renderTitle()
	e.doc.RenderAll()
	if e.active != nil {
		e.active.Prompt().Render()
	}
	e.dashboard.Render()
}

func (e *Editor) relayout() {
	e.logger.Printf("resized to %dx%d", e.screen.Width(), e.screen.Height())
	e.renderTitle()
	e.doc.Relayout()
	if e.active != nil {
		e.active.Prompt().Render()
	}
	e.dashboard.Render()
}
