package parser

import (
	"plecakdb/pkg/parser/lexer"
	"plecakdb/pkg/parser/statements"
)

// Parser is a cursor over an immutable token sequence. A Parser is built
// per statement and holds no state between statements.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a Parser over the given token sequence.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseStatement tokenizes sql and parses the resulting token sequence.
// This is the main entry point for the front-end: it converts SQL text into
// a typed statements.Statement or returns the first diagnostic.
func ParseStatement(sql string) (statements.Statement, error) {
	tokens, err := lexer.Lex(sql)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// Parse consumes the token sequence starting at position 0 and returns the
// statement it describes. The statement keyword dispatches to the matching
// production; a trailing ';' delimiter is tolerated but never required.
func (p *Parser) Parse() (statements.Statement, error) {
	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	if t.Type != lexer.KEYWORD {
		return nil, newSyntaxError(UnexpectedStart, "", t.Value)
	}

	switch t.Value {
	case "SELECT":
		return p.parseSelect()
	case "INSERT":
		return p.parseInsert()
	case "UPDATE":
		return p.parseUpdate()
	case "DELETE":
		return p.parseDelete()
	default:
		return nil, newSyntaxError(UnknownStatement, "", t.Value)
	}
}

// advance returns a copy of the token at the cursor and moves the cursor
// forward.
func (p *Parser) advance() (lexer.Token, error) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, newSyntaxError(UnexpectedEndOfInput, "", "")
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, nil
}

// peek returns the token at the cursor without moving it.
func (p *Parser) peek() (lexer.Token, error) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, newSyntaxError(UnexpectedEndOfInput, "", "")
	}
	return p.tokens[p.pos], nil
}

// consume advances past the token at the cursor when its type and value
// match the expectation.
func (p *Parser) consume(expectedType lexer.TokenType, expectedValue string) error {
	t, err := p.peek()
	if err != nil {
		return err
	}
	if t.Type != expectedType || t.Value != expectedValue {
		return newSyntaxError(ExpectedToken, "'"+expectedValue+"'", "'"+t.Value+"'")
	}
	p.pos++
	return nil
}

// consumeKeyword advances past the token at the cursor when it is the
// named keyword.
func (p *Parser) consumeKeyword(name string) error {
	return p.consume(lexer.KEYWORD, name)
}

// checkKeyword reports whether the token at the cursor is the named
// keyword. It is a pure predicate: the cursor does not move, and running
// past the end of input is simply false.
func (p *Parser) checkKeyword(name string) bool {
	if p.pos >= len(p.tokens) {
		return false
	}
	t := p.tokens[p.pos]
	return t.Type == lexer.KEYWORD && t.Value == name
}

// checkDelimiter reports whether the token at the cursor is the given
// delimiter, without moving the cursor.
func (p *Parser) checkDelimiter(mark string) bool {
	if p.pos >= len(p.tokens) {
		return false
	}
	t := p.tokens[p.pos]
	return t.Type == lexer.DELIMITER && t.Value == mark
}
