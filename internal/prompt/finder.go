package prompt

import (
	"fmt"

	"github.com/JackWReid/quill/internal/cycle"
	"github.com/JackWReid/quill/internal/document"
	"github.com/JackWReid/quill/internal/terminal"
)

// Searcher is the part of a document the Finder needs.
type Searcher interface {
	Search(target string) ([]document.Pos, bool)
	Lines() []string
}

// Finder searches the document for the query and steps through the
// matches in either direction, wrapping at the ends. Up and Down recall
// earlier queries.
type Finder struct {
	prompt  *Prompt
	doc     Searcher
	matches *cycle.Cycler[document.Pos]
	history *History
	draft   string
}

func NewFinder(screen terminal.Screen, doc Searcher, historySize int) *Finder {
	return &Finder{
		prompt:  New(screen, "Search: ", "[(Shift) Enter]", -1),
		doc:     doc,
		matches: cycle.New[document.Pos](true),
		history: NewHistory(historySize),
	}
}

func (f *Finder) Prompt() *Prompt   { return f.prompt }
func (f *Finder) History() *History { return f.history }

// Matches is the number of loaded matches.
func (f *Finder) Matches() int { return f.matches.Len() }

// Activate drops matches left from an earlier search.
func (f *Finder) Activate() {
	f.matches.Clear()
	f.history.Rewind()
}

func (f *Finder) HandleKey(key terminal.Key) Outcome {
	switch key.Type {
	case terminal.KeyEnter:
		return f.step(true)
	case terminal.KeyShiftEnter, terminal.KeyCtrlP:
		return f.step(false)
	case terminal.KeyUp:
		if f.history.entries.Index() < 0 {
			f.draft = f.prompt.Content()
		}
		if q, ok := f.history.Older(); ok {
			f.recall(q)
		}
	case terminal.KeyDown:
		if q, ok := f.history.Newer(); ok {
			f.recall(q)
		} else if f.history.entries.Index() == 0 {
			f.history.Rewind()
			f.recall(f.draft)
		}
	default:
		before := f.prompt.Content()
		if f.prompt.Edit(key) {
			f.history.Rewind()
			if f.prompt.Content() != before {
				f.matches.Clear()
			}
		}
	}
	return Outcome{}
}

func (f *Finder) recall(q string) {
	f.prompt.Field.SetContent(q)
	f.prompt.Field.MoveToEnd()
	f.matches.Clear()
}

func (f *Finder) step(forward bool) Outcome {
	query := f.prompt.Content()
	if query == "" {
		return Outcome{}
	}
	f.history.Add(query)
	if f.matches.Empty() {
		found, ok := f.doc.Search(query)
		if !ok {
			return f.noMatch(query)
		}
		f.matches.Replace(found)
	}
	var pos document.Pos
	if forward {
		pos, _ = f.matches.Next()
	} else {
		pos, _ = f.matches.Prev()
	}
	return Outcome{
		Jump:    true,
		Target:  pos,
		Message: fmt.Sprintf("match %d/%d", f.matches.Index()+1, f.matches.Len()),
	}
}

func (f *Finder) noMatch(query string) Outcome {
	msg := fmt.Sprintf("no match for %q", query)
	if alt, ok := NewSuggester(f.doc.Lines()).Suggest(query); ok {
		msg += fmt.Sprintf(", did you mean %q?", alt)
	}
	return Outcome{Message: msg}
}
