package prompt

import "github.com/JackWReid/quill/internal/cycle"

// History keeps the inputs submitted to a prompt, newest first. Walking it
// stops at both ends.
type History struct {
	entries  *cycle.Cycler[string]
	capacity int
}

func NewHistory(capacity int) *History {
	return &History{entries: cycle.New[string](false), capacity: max(1, capacity)}
}

// Add records s as the newest entry and rewinds the walk. Empty input and a
// repeat of the newest entry are not recorded.
func (h *History) Add(s string) {
	if s == "" {
		h.entries.Reset()
		return
	}
	if newest, ok := h.Newest(); ok && newest == s {
		h.entries.Reset()
		return
	}
	h.entries.PushFront(s)
	h.entries.Truncate(h.capacity)
}

func (h *History) Newest() (string, bool) {
	if h.entries.Empty() {
		return "", false
	}
	return h.entries.Items()[0], true
}

// Older steps one entry back in time.
func (h *History) Older() (string, bool) { return h.entries.Next() }

// Newer steps one entry forward in time.
func (h *History) Newer() (string, bool) { return h.entries.Prev() }

// Rewind forgets the walk position so the next Older returns the newest entry.
func (h *History) Rewind() { h.entries.Reset() }

func (h *History) Len() int { return h.entries.Len() }

func (h *History) Entries() []string { return h.entries.Items() }
