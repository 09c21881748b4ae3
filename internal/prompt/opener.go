package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JackWReid/quill/internal/cycle"
	"github.com/JackWReid/quill/internal/terminal"
)

// OpenFunc loads the file at path into the document.
type OpenFunc func(path string) error

// Opener asks for a path and loads that file in place of the document.
// Tab completes the path from the directory listing, cycling through the
// candidates on repeated presses.
type Opener struct {
	prompt      *Prompt
	open        OpenFunc
	completions *cycle.Cycler[string]
}

func NewOpener(screen terminal.Screen, open OpenFunc) *Opener {
	return &Opener{
		prompt:      New(screen, "Open: ", "[Enter]", 1),
		open:        open,
		completions: cycle.New[string](true),
	}
}

func (o *Opener) Prompt() *Prompt { return o.prompt }

// Activate empties the field and forgets earlier completions.
func (o *Opener) Activate() {
	o.prompt.Field.Clear()
	o.completions.Clear()
}

func (o *Opener) HandleKey(key terminal.Key) Outcome {
	switch key.Type {
	case terminal.KeyTab:
		return o.complete()
	case terminal.KeyEnter:
		o.completions.Clear()
		path := strings.TrimSpace(o.prompt.Content())
		if path == "" {
			return Outcome{Message: "path is empty"}
		}
		if err := o.open(path); err != nil {
			return Outcome{Message: "open failed", Err: err}
		}
		return Outcome{Close: true, Message: fmt.Sprintf("opened %s", path)}
	}
	if o.prompt.Edit(key) {
		o.completions.Clear()
	}
	return Outcome{}
}

func (o *Opener) complete() Outcome {
	if o.completions.Empty() {
		candidates, err := Complete(o.prompt.Content())
		if err != nil || len(candidates) == 0 {
			return Outcome{Message: "no completions"}
		}
		o.completions.Replace(candidates)
	}
	next, _ := o.completions.Next()
	o.prompt.Field.SetContent(next)
	o.prompt.Field.MoveToEnd()
	if n := o.completions.Len(); n > 1 {
		return Outcome{Message: fmt.Sprintf("%d/%d", o.completions.Index()+1, n)}
	}
	return Outcome{}
}

// Complete lists the paths that extend partial: entries of its directory
// whose names start with its last element. Directories come first and end
// with a slash. Hidden entries are listed only when the prefix starts with
// a dot.
func Complete(partial string) ([]string, error) {
	dir, prefix := filepath.Split(partial)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		name  string
		isDir bool
	}
	var found []candidate
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		found = append(found, candidate{name: name, isDir: e.IsDir()})
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].isDir != found[j].isDir {
			return found[i].isDir
		}
		return found[i].name < found[j].name
	})

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = dir + c.name
		if c.isDir {
			out[i] += string(filepath.Separator)
		}
	}
	return out, nil
}
