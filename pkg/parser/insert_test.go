package parser

import (
	"reflect"
	"testing"

	"plecakdb/pkg/parser/statements"
)

func TestParseStatement_BasicInsert(t *testing.T) {
	stmt, err := ParseStatement("INSERT INTO users (name, age) VALUES ('john', 25);")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	insertStmt, ok := stmt.(*statements.InsertStatement)
	if !ok {
		t.Fatal("expected InsertStatement")
	}

	if insertStmt.TableName != "users" {
		t.Errorf("expected table name 'users', got %s", insertStmt.TableName)
	}

	expectedColumns := []string{"name", "age"}
	if !reflect.DeepEqual(insertStmt.Columns, expectedColumns) {
		t.Errorf("expected columns %v, got %v", expectedColumns, insertStmt.Columns)
	}

	if len(insertStmt.Values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(insertStmt.Values))
	}

	textVal, ok := insertStmt.Values[0].(*statements.TextValue)
	if !ok {
		t.Fatal("expected TextValue")
	}
	if textVal.Value != "john" {
		t.Errorf("expected 'john', got %s", textVal.Value)
	}

	intVal, ok := insertStmt.Values[1].(*statements.IntValue)
	if !ok {
		t.Fatal("expected IntValue")
	}
	if intVal.Value != 25 {
		t.Errorf("expected 25, got %d", intVal.Value)
	}
}

func TestParseStatement_InsertFloatValue(t *testing.T) {
	stmt, err := ParseStatement("INSERT INTO prices (amount) VALUES (19.99);")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	insertStmt := stmt.(*statements.InsertStatement)
	floatVal, ok := insertStmt.Values[0].(*statements.FloatValue)
	if !ok {
		t.Fatal("expected FloatValue")
	}
	if floatVal.Value != 19.99 {
		t.Errorf("expected 19.99, got %f", floatVal.Value)
	}
}

func TestParseStatement_InsertArityMismatchParses(t *testing.T) {
	// The grammar accepts mismatched column and value counts; Validate
	// rejects them.
	stmt, err := ParseStatement("INSERT INTO users (a, b) VALUES (1);")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	if err := stmt.Validate(); err == nil {
		t.Fatal("expected validation error for arity mismatch")
	}
}

func TestParseStatement_InsertMissingInto(t *testing.T) {
	_, err := ParseStatement("INSERT users (a) VALUES (1);")
	if err == nil {
		t.Fatal("expected error for missing INTO")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != ExpectedToken {
		t.Errorf("expected ExpectedToken, got %d", synErr.Kind)
	}
}

func TestParseStatement_InsertMissingCloseParen(t *testing.T) {
	_, err := ParseStatement("INSERT INTO users (a, b VALUES (1, 2);")
	if err == nil {
		t.Fatal("expected error for missing ')'")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != ExpectedToken {
		t.Errorf("expected ExpectedToken, got %d", synErr.Kind)
	}
	if synErr.Expected != "')'" {
		t.Errorf("expected \"')'\", got %s", synErr.Expected)
	}
}

func TestParseStatement_InsertKeywordAsValue(t *testing.T) {
	_, err := ParseStatement("INSERT INTO users (a) VALUES (SELECT);")
	if err == nil {
		t.Fatal("expected error for keyword in value list")
	}

	synErr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if synErr.Kind != ExpectedValue {
		t.Errorf("expected ExpectedValue, got %d", synErr.Kind)
	}
}
