package prompt

import (
	"fmt"
	"strings"

	"github.com/JackWReid/quill/internal/terminal"
)

// SaveFunc writes content to path, creating or replacing the file.
type SaveFunc func(path, content string) error

// Saver asks for a path and writes the document snapshot taken when it
// was opened.
type Saver struct {
	prompt  *Prompt
	save    SaveFunc
	content string
}

func NewSaver(screen terminal.Screen, path string, save SaveFunc) *Saver {
	s := &Saver{prompt: New(screen, "Path: ", "[Enter]", 1), save: save}
	s.prompt.Field.SetContent(path)
	return s
}

func (s *Saver) Prompt() *Prompt { return s.prompt }

// Activate takes a snapshot of the content to save.
func (s *Saver) Activate(content string) { s.content = content }

// SetPath replaces the path shown in the field.
func (s *Saver) SetPath(path string) { s.prompt.Field.SetContent(path) }

func (s *Saver) Path() string { return strings.TrimSpace(s.prompt.Content()) }

func (s *Saver) HandleKey(key terminal.Key) Outcome {
	if key.Type != terminal.KeyEnter {
		s.prompt.Edit(key)
		return Outcome{}
	}
	path := s.Path()
	if path == "" {
		return Outcome{Message: "path is empty"}
	}
	if err := s.save(path, s.content); err != nil {
		return Outcome{Message: "save failed", Err: err}
	}
	return Outcome{Close: true, Message: fmt.Sprintf("saved %s", path)}
}
