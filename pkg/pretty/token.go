package pretty

import "math"

// BreakMode controls how the breaks of a group are decided.
type BreakMode uint8

const (
	// Consistent groups break every direct break once any of them has to break.
	Consistent BreakMode = iota
	// Inconsistent groups decide each break on its own from the remaining width.
	Inconsistent
)

func (m BreakMode) String() string {
	if m == Inconsistent {
		return "inconsistent"
	}
	return "consistent"
}

// unbounded is the length of content that can never fit on a line, such as a hard break
// or a comment that must be followed by a newline.
const unbounded = math.MaxInt / 4

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenBreak
	tokenBegin
	tokenEnd
	tokenTrivia
)

type token struct {
	kind tokenKind

	// text is the content of a Text token, the separator of a Break token or the
	// verbatim text of a trivia token.
	text string

	// length is the measured width: the content for Text, the separator plus everything
	// up to the next break or group end for Break, the whole content for Begin.
	length int

	textMode  TextMode
	breakMode BreakMode

	trivia   TriviaKind
	trailing bool
}

// grow adds n to the token length, saturating at unbounded.
func (t *token) grow(n int) {
	t.length = min(t.length+n, unbounded)
}
