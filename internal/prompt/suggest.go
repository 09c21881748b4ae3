package prompt

import (
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"
)

// Suggester proposes a word from the document close to a query that found
// nothing.
type Suggester struct {
	model *fuzzy.Model
	words int
}

// NewSuggester trains a model on every word in lines. Words shorter than
// three letters are skipped.
func NewSuggester(lines []string) *Suggester {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	s := &Suggester{model: model}
	for _, line := range lines {
		for _, w := range Words(line) {
			if len([]rune(w)) < 3 {
				continue
			}
			model.TrainWord(strings.ToLower(w))
			s.words++
		}
	}
	return s
}

// Suggest returns the closest known word to query, if it differs from it.
func (s *Suggester) Suggest(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if s.words == 0 || q == "" || strings.ContainsFunc(q, unicode.IsSpace) {
		return "", false
	}
	best := s.model.SpellCheck(q)
	if best == "" || best == q {
		return "", false
	}
	return best, true
}

// Words splits a line into runs of letters, keeping apostrophes inside a
// word.
func Words(line string) []string {
	var words []string
	var b strings.Builder
	inWord := false
	flush := func() {
		if inWord {
			words = append(words, strings.TrimRight(b.String(), "'"))
			b.Reset()
			inWord = false
		}
	}
	for _, r := range line {
		switch {
		case unicode.IsLetter(r):
			inWord = true
			b.WriteRune(r)
		case r == '\'' && inWord:
			b.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}
