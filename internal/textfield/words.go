package textfield

import "unicode"

// Direction is a horizontal step.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r)
}

// wordRun counts the letters in the unbroken run next to pos, looking in
// the given direction.
//
//	"ab c", pos 0, Right -> 2
//	" ab",  pos 0, Right -> 0
func wordRun(content []rune, pos int, dir Direction) int {
	n := 0
	if dir == Left {
		for i := pos - 1; i >= 0 && isWordChar(content[i]); i-- {
			n++
		}
		return n
	}
	for i := pos; i < len(content) && isWordChar(content[i]); i++ {
		n++
	}
	return n
}
