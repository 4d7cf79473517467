package parser

import (
	"testing"

	"plecakdb/pkg/parser/lexer"
	"plecakdb/pkg/parser/statements"
)

func TestParse_EmptyInput(t *testing.T) {
	_, err := ParseStatement("")
	if err == nil {
		t.Fatal("expected error for empty input")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != UnexpectedEndOfInput {
		t.Errorf("expected UnexpectedEndOfInput, got %d", synErr.Kind)
	}
	if err.Error() != "unexpected end of input" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestParse_StatementStartsWithIdentifier(t *testing.T) {
	_, err := ParseStatement("users SELECT;")
	if err == nil {
		t.Fatal("expected error for identifier start")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != UnexpectedStart {
		t.Errorf("expected UnexpectedStart, got %d", synErr.Kind)
	}
	if err.Error() != "statement must begin with a keyword, got users" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestParse_UnsupportedStatementKeyword(t *testing.T) {
	// ORDER is a reserved word but does not begin any statement form.
	_, err := ParseStatement("ORDER users;")
	if err == nil {
		t.Fatal("expected error for unsupported statement")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != UnknownStatement {
		t.Errorf("expected UnknownStatement, got %d", synErr.Kind)
	}
	if err.Error() != "unsupported statement type: ORDER" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestParse_LexErrorPropagates(t *testing.T) {
	_, err := ParseStatement("SELECT 'unterminated FROM users;")
	if err == nil {
		t.Fatal("expected lex error")
	}

	if _, ok := err.(*lexer.LexError); !ok {
		t.Fatalf("expected *lexer.LexError, got %T", err)
	}
}

func TestParse_UnknownOperatorInWhere(t *testing.T) {
	_, err := ParseStatement("SELECT a FROM t WHERE a && b;")
	if err == nil {
		t.Fatal("expected error for logical operator in condition")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != UnknownOperator {
		t.Errorf("expected UnknownOperator, got %d", synErr.Kind)
	}
	if err.Error() != "unknown operator: &&" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestParse_MissingOperatorInWhere(t *testing.T) {
	_, err := ParseStatement("SELECT a FROM t WHERE a b;")
	if err == nil {
		t.Fatal("expected error for missing operator")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != ExpectedOperator {
		t.Errorf("expected ExpectedOperator, got %d", synErr.Kind)
	}
}

func TestParse_FromTokens(t *testing.T) {
	tokens, err := lexer.Lex("DELETE FROM logs;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	stmt, err := NewParser(tokens).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if stmt.GetType() != statements.Delete {
		t.Errorf("expected Delete, got %s", stmt.GetType())
	}
}

func TestParse_CanonicalStringRoundTrip(t *testing.T) {
	inputs := []string{
		"SELECT id, name FROM users",
		"SELECT name FROM users WHERE age >= 30",
		"SELECT a FROM t WHERE 1 < b",
		"INSERT INTO users (name, age) VALUES ('john', 25)",
		"INSERT INTO prices (amount) VALUES (19.99)",
		"UPDATE users SET name = 'bob', age = 31 WHERE id = 1",
		"DELETE FROM users WHERE name != 'admin'",
	}

	for _, input := range inputs {
		stmt, err := ParseStatement(input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", input, err.Error())
		}

		rendered := stmt.String()
		reparsed, err := ParseStatement(rendered)
		if err != nil {
			t.Fatalf("%s: rendering %q does not re-parse: %s", input, rendered, err.Error())
		}

		if reparsed.String() != rendered {
			t.Errorf("%s: rendering is not a fixed point: %q vs %q",
				input, rendered, reparsed.String())
		}
	}
}

func TestParse_WholeNumberFloatRendersWithDot(t *testing.T) {
	stmt, err := ParseStatement("INSERT INTO prices (amount) VALUES (5.0)")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	rendered := stmt.String()
	if rendered != "INSERT INTO prices (amount) VALUES (5.0)" {
		t.Errorf("unexpected rendering: %s", rendered)
	}
}

func TestParse_ParsedStatementsValidate(t *testing.T) {
	inputs := []string{
		"SELECT id FROM users",
		"INSERT INTO users (name) VALUES ('x')",
		"UPDATE users SET name = 'y'",
		"DELETE FROM users",
	}

	for _, input := range inputs {
		stmt, err := ParseStatement(input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", input, err.Error())
		}
		if err := stmt.Validate(); err != nil {
			t.Errorf("%s: unexpected validation error: %s", input, err.Error())
		}
	}
}
