package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

// keywords is the reserved word set. Matching is case-insensitive; emitted
// KEYWORD tokens always carry the upper-cased spelling.
var keywords = map[string]bool{
	"SELECT": true,
	"FROM":   true,
	"WHERE":  true,
	"ORDER":  true,
	"GROUP":  true,
	"DELETE": true,
	"UPDATE": true,
	"SET":    true,
	"INSERT": true,
	"INTO":   true,
	"VALUES": true,
}

// Lexer performs lexical analysis on a single SQL statement, breaking it
// into a sequence of tokens. Identifier case is preserved; only keyword
// tokens are upper-cased.
type Lexer struct {
	input  string
	pos    int
	length int
}

// NewLexer creates a Lexer over the given statement text.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		length: len(input),
	}
}

// Lex tokenizes the whole input eagerly and returns the ordered token
// sequence. It stops at the first malformed construct and returns a
// *LexError naming the byte offset. Whitespace is skipped and never emitted.
func Lex(input string) ([]Token, error) {
	l := NewLexer(input)
	tokens := []Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// NextToken scans and returns the next token from the input. It skips
// leading whitespace and returns an EOF token when the input is exhausted.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= l.length {
		return Token{Type: EOF, Value: "", Position: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case l.isDelimiterChar(ch):
		l.pos++
		return l.createToken(DELIMITER, string(ch), start), nil
	case l.isSingleOperatorChar(ch):
		l.pos++
		return l.createToken(OPERATOR, string(ch), start), nil
	case ch == '<' || ch == '>' || ch == '!':
		return l.readComparison(start), nil
	case ch == '&' || ch == '|':
		return l.readLogical(start), nil
	case l.isQuoteChar(ch):
		return l.readString(start)
	case unicode.IsDigit(rune(ch)):
		return l.readNumber(start)
	case unicode.IsLetter(rune(ch)) || ch == '_':
		return l.readWord(start), nil
	default:
		return Token{}, newLexError(UnrecognizedCharacter, start, string(ch))
	}
}

func (l *Lexer) isDelimiterChar(ch byte) bool {
	return ch == ';' || ch == ',' || ch == '(' || ch == ')'
}

func (l *Lexer) isSingleOperatorChar(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '='
}

func (l *Lexer) isQuoteChar(ch byte) bool {
	return ch == '\'' || ch == '"'
}

// skipWhitespace advances the position past any whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.pos < l.length && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

// readComparison reads a one or two character comparison operator. '<', '>'
// and '!' combine with an immediately following '=' into '<=', '>=' and
// '!=' respectively; otherwise the single character is the whole operator.
func (l *Lexer) readComparison(start int) Token {
	op := string(l.input[l.pos])
	l.pos++
	if l.pos < l.length && l.input[l.pos] == '=' {
		op += "="
		l.pos++
	}
	return l.createToken(OPERATOR, op, start)
}

// readLogical reads '&' or '|', doubling it when the next character is the
// same ('&&', '||').
func (l *Lexer) readLogical(start int) Token {
	ch := l.input[l.pos]
	op := string(ch)
	l.pos++
	if l.pos < l.length && l.input[l.pos] == ch {
		op += string(ch)
		l.pos++
	}
	return l.createToken(OPERATOR, op, start)
}

// readString reads a literal delimited by single or double quotes. The
// closing quote must match the opening one. There is no escape processing.
func (l *Lexer) readString(start int) (Token, error) {
	quote := l.input[l.pos]
	l.pos++

	contentStart := l.pos
	for l.pos < l.length {
		if l.input[l.pos] == quote {
			value := l.input[contentStart:l.pos]
			l.pos++
			return l.createToken(STRING, value, start), nil
		}
		l.pos++
	}
	return Token{}, newLexError(UnterminatedString, start, "")
}

// readNumber reads a decimal literal, accepting at most one '.'. A literal
// containing a dot is a FLOAT, otherwise a NUMBER. The text is validated
// here so the parser never sees an unconvertible literal.
func (l *Lexer) readNumber(start int) (Token, error) {
	hasDot := false
	for l.pos < l.length {
		ch := l.input[l.pos]
		if unicode.IsDigit(rune(ch)) {
			l.pos++
		} else if ch == '.' && !hasDot {
			hasDot = true
			l.pos++
		} else {
			break
		}
	}

	text := l.input[start:l.pos]
	if hasDot {
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return Token{}, newLexError(NumericParse, start, text)
		}
		return l.createToken(FLOAT, text, start), nil
	}
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return Token{}, newLexError(NumericParse, start, text)
	}
	return l.createToken(NUMBER, text, start), nil
}

// readWord reads a run of letters and underscores. Words matching the
// reserved set become KEYWORD tokens with their upper-cased spelling; all
// other words are IDENTIFIER tokens with their original case.
func (l *Lexer) readWord(start int) Token {
	for l.pos < l.length && l.isWordChar(l.input[l.pos]) {
		l.pos++
	}
	value := l.input[start:l.pos]
	upper := strings.ToUpper(value)
	if keywords[upper] {
		return l.createToken(KEYWORD, upper, start)
	}
	return l.createToken(IDENTIFIER, value, start)
}

func (l *Lexer) isWordChar(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

// createToken constructs a Token with the given type, value, and starting position.
func (l *Lexer) createToken(t TokenType, value string, start int) Token {
	return Token{
		Type:     t,
		Value:    value,
		Position: start,
	}
}
