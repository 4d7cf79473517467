package parser

import "fmt"

type ErrorKind int

const (
	// UnexpectedStart means the first token of the statement was not a
	// keyword.
	UnexpectedStart ErrorKind = iota
	// UnknownStatement means the statement began with a keyword that does
	// not start any supported statement form.
	UnknownStatement
	// ExpectedToken means a specific token was required and something else
	// was found.
	ExpectedToken
	// ExpectedIdentifier means a column or table name was required.
	ExpectedIdentifier
	// ExpectedValue means a literal or column reference was required.
	ExpectedValue
	// ExpectedOperator means a comparison operator token was required.
	ExpectedOperator
	// UnknownOperator means an operator token was found but its spelling is
	// not a comparison operator.
	UnknownOperator
	// UnexpectedEndOfInput means the token sequence ended mid-production.
	UnexpectedEndOfInput
)

// SyntaxError describes the first grammar violation encountered while
// parsing. Parsing aborts on the first error; no recovery is attempted.
type SyntaxError struct {
	Kind     ErrorKind
	Expected string
	Found    string
}

func (se *SyntaxError) Error() string {
	switch se.Kind {
	case UnexpectedStart:
		return fmt.Sprintf("statement must begin with a keyword, got %s", se.Found)
	case UnknownStatement:
		return fmt.Sprintf("unsupported statement type: %s", se.Found)
	case ExpectedToken:
		return fmt.Sprintf("expected %s, got %s", se.Expected, se.Found)
	case ExpectedIdentifier:
		return fmt.Sprintf("expected identifier, got %s", se.Found)
	case ExpectedValue:
		return fmt.Sprintf("expected value, got %s", se.Found)
	case ExpectedOperator:
		return fmt.Sprintf("expected operator, got %s", se.Found)
	case UnknownOperator:
		return fmt.Sprintf("unknown operator: %s", se.Found)
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	default:
		return "syntax error"
	}
}

func newSyntaxError(kind ErrorKind, expected, found string) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Expected: expected,
		Found:    found,
	}
}
