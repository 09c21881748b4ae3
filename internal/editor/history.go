package editor

import "github.com/JackWReid/quill/internal/document"

// MaxHistory is the number of edits that can be undone.
const MaxHistory = 255

// OpType describes the kind of edit recorded for undo.
type OpType int

const (
	OpInsertChar OpType = iota // Inserted a character
	OpDeleteChar               // Deleted a character
	OpInsertLine               // Split a line
	OpDeleteLine               // Joined a line onto the previous one
)

func (o OpType) String() string {
	switch o {
	case OpInsertChar:
		return "insert char"
	case OpDeleteChar:
		return "delete char"
	case OpInsertLine:
		return "insert line"
	case OpDeleteLine:
		return "delete line"
	}
	return "unknown"
}

// Edit is one recorded change with the cursor position before and after it.
type Edit struct {
	Type   OpType
	Char   rune // For character ops.
	Before document.Pos
	After  document.Pos
}

// History holds the undo and redo stacks. The oldest edit is dropped once
// the undo stack is full.
type History struct {
	undo     []Edit
	redo     []Edit
	capacity int
}

func NewHistory(capacity int) *History {
	return &History{capacity: max(1, capacity)}
}

// Push records a new edit and forgets anything that could be redone.
func (h *History) Push(e Edit) {
	h.redo = nil
	h.undo = append(h.undo, e)
	if len(h.undo) > h.capacity {
		h.undo = h.undo[len(h.undo)-h.capacity:]
	}
}

// Undo pops the newest edit onto the redo stack.
func (h *History) Undo() (Edit, bool) {
	if len(h.undo) == 0 {
		return Edit{}, false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, e)
	return e, true
}

// Redo pops the newest undone edit back onto the undo stack.
func (h *History) Redo() (Edit, bool) {
	if len(h.redo) == 0 {
		return Edit{}, false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, e)
	return e, true
}

func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// revert applies the inverse of e to doc. The cursor is first put where
// the edit left it.
func revert(doc *document.Document, e Edit) bool {
	if !doc.JumpTo(e.After) {
		return false
	}
	switch e.Type {
	case OpInsertChar, OpInsertLine:
		_, ok := doc.Delete()
		return ok
	case OpDeleteChar:
		doc.InsertChar(e.Char)
	case OpDeleteLine:
		doc.InsertLine()
	}
	return true
}

// replay applies e to doc again from where it started.
func replay(doc *document.Document, e Edit) bool {
	if !doc.JumpTo(e.Before) {
		return false
	}
	switch e.Type {
	case OpInsertChar:
		doc.InsertChar(e.Char)
	case OpInsertLine:
		doc.InsertLine()
	case OpDeleteChar, OpDeleteLine:
		_, ok := doc.Delete()
		return ok
	}
	return true
}
