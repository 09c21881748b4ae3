// Package theme holds the accent color chosen at startup and the styles
// derived from it.
package theme

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/JackWReid/quill/internal/terminal"
)

// Accent is a named color from the closed palette.
type Accent struct {
	Name  string
	Color termenv.ANSIColor
}

var palette = []Accent{
	{"red", termenv.ANSIBrightRed},
	{"blue", termenv.ANSIBrightBlue},
	{"dark_red", termenv.ANSIRed},
	{"dark_blue", termenv.ANSIBlue},
	{"dark_grey", termenv.ANSIBrightBlack},
	{"dark_cyan", termenv.ANSICyan},
	{"dark_yellow", termenv.ANSIYellow},
	{"dark_magenta", termenv.ANSIMagenta},
}

// Default is used when no accent is configured.
var Default = palette[3]

var current = Default

// Names lists the accepted accent names in display order.
func Names() []string {
	names := make([]string, len(palette))
	for i, a := range palette {
		names[i] = a.Name
	}
	return names
}

// Parse looks up an accent by name. Matching ignores case and surrounding
// blanks.
func Parse(name string) (Accent, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, a := range palette {
		if a.Name == key {
			return a, nil
		}
	}
	return Accent{}, fmt.Errorf("unknown accent color %q (options: %s)", name, strings.Join(Names(), ", "))
}

// Current returns the process-wide accent.
func Current() Accent { return current }

// Set replaces the process-wide accent. It is meant to be called once at
// startup before anything is drawn.
func Set(a Accent) { current = a }

func Title() terminal.Style {
	return terminal.Style{Bold: true, Fg: termenv.ANSIBlack, Bg: termenv.ANSIWhite}
}

// ActiveLabel styles the line number of the line holding the cursor.
func ActiveLabel() terminal.Style {
	return terminal.Style{Bold: true, Fg: termenv.ANSIWhite, Bg: current.Color}
}

func InactiveLabel() terminal.Style {
	return terminal.Style{Fg: termenv.ANSIBlack, Bg: termenv.ANSIWhite}
}

// PromptLabel styles both the label and the button of a prompt.
func PromptLabel() terminal.Style {
	return terminal.Style{Bold: true, Fg: termenv.ANSIBlack, Bg: termenv.ANSIWhite}
}

func Placeholder() terminal.Style {
	return terminal.Style{Dim: true}
}

// Segment styles the state and position blocks of the dashboard.
func Segment() terminal.Style {
	return terminal.Style{Bold: true, Fg: termenv.ANSIWhite, Bg: current.Color}
}

// Filler styles the blank run between dashboard segments and its message.
func Filler() terminal.Style {
	return terminal.Style{Fg: termenv.ANSIBlack, Bg: termenv.ANSIWhite}
}
