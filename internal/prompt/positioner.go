package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/JackWReid/quill/internal/document"
	"github.com/JackWReid/quill/internal/terminal"
)

var ErrMalformedPos = errors.New("malformed position")

// ParsePos reads a position written as "row:col", "row,col" or "row".
// A bare row means column 1.
func ParsePos(s string) (document.Pos, error) {
	s = strings.TrimSpace(s)
	rowStr, colStr, hasCol := strings.Cut(s, ":")
	if !hasCol {
		rowStr, colStr, hasCol = strings.Cut(s, ",")
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil || row < 1 {
		return document.Pos{}, fmt.Errorf("%w: %q", ErrMalformedPos, s)
	}
	col := 1
	if hasCol {
		col, err = strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil || col < 1 {
			return document.Pos{}, fmt.Errorf("%w: %q", ErrMalformedPos, s)
		}
	}
	return document.Pos{Row: row, Col: col}, nil
}

// Validator reports whether a position lies inside the document.
type Validator interface {
	Valid(pos document.Pos) bool
}

// Positioner asks for a position and jumps there. Its placeholder shows the
// cursor position at the time it was opened, which an empty input selects.
type Positioner struct {
	prompt *Prompt
	doc    Validator
	origin document.Pos
}

func NewPositioner(screen terminal.Screen, doc Validator) *Positioner {
	p := &Positioner{prompt: New(screen, "Target: ", "[Enter]", -1), doc: doc}
	p.Activate(document.Pos{Row: 1, Col: 1})
	return p
}

func (p *Positioner) Prompt() *Prompt { return p.prompt }

// Activate clears the input and shows pos as the placeholder.
func (p *Positioner) Activate(pos document.Pos) {
	p.origin = pos
	p.prompt.Field.Clear()
	p.prompt.Field.SetPlaceholder(pos.String())
}

func (p *Positioner) HandleKey(key terminal.Key) Outcome {
	if key.Type != terminal.KeyEnter {
		p.prompt.Edit(key)
		return Outcome{}
	}
	target := p.origin
	if input := p.prompt.Content(); strings.TrimSpace(input) != "" {
		pos, err := ParsePos(input)
		if err != nil {
			return Outcome{Message: "expected row:col"}
		}
		target = pos
	}
	if !p.doc.Valid(target) {
		return Outcome{Message: fmt.Sprintf("%s is outside the document", target)}
	}
	return Outcome{Close: true, Jump: true, Target: target}
}
