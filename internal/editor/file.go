package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ReadDocument reads the file named on the command line. A file that does
// not exist yet gives an empty document that saves to path.
func ReadDocument(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{""}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines reads a text file and splits it into lines. LF and CRLF line
// endings are both accepted and a final line ending does not produce an
// extra empty line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	if text == "" {
		return []string{""}, nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

// WriteFile creates or replaces path with content.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
