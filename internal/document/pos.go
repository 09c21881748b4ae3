package document

import "fmt"

// Pos is a 1-based position in the document. Col may be one past the last
// character of the line.
type Pos struct {
	Row int
	Col int
}

// String formats the position the way the goto prompt accepts it.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Label is the human readable form shown on the dashboard.
func (p Pos) Label() string {
	return fmt.Sprintf("Ln %d, Col %d", p.Row, p.Col)
}
