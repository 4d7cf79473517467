package lexer

import "fmt"

type ErrorKind int

const (
	// UnterminatedString means a quote was opened but its matching closing
	// quote was never found before the end of input.
	UnterminatedString ErrorKind = iota
	// NumericParse means a numeric literal was scanned but could not be
	// converted, for example because it overflows an int64.
	NumericParse
	// UnrecognizedCharacter means the input contained a character that does
	// not begin any token.
	UnrecognizedCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "unterminated string literal"
	case NumericParse:
		return "malformed numeric literal"
	case UnrecognizedCharacter:
		return "unrecognized character"
	default:
		return "unknown lex error"
	}
}

// LexError describes the first malformed construct encountered while
// tokenizing. Position is the byte offset of the offending character.
type LexError struct {
	Kind     ErrorKind
	Position int
	Text     string
}

func (e *LexError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%s %q at position %d", e.Kind, e.Text, e.Position)
	}
	return fmt.Sprintf("%s at position %d", e.Kind, e.Position)
}

func newLexError(kind ErrorKind, position int, text string) *LexError {
	return &LexError{
		Kind:     kind,
		Position: position,
		Text:     text,
	}
}
