package statements

import "testing"

func TestBaseStatement_GetType(t *testing.T) {
	base := NewBaseStatement(Select)
	if base.GetType() != Select {
		t.Errorf("Expected Select, got %v", base.GetType())
	}
}

func TestStatementType_String(t *testing.T) {
	tests := []struct {
		stmtType StatementType
		expected string
	}{
		{Select, "SELECT"},
		{Insert, "INSERT"},
		{Update, "UPDATE"},
		{Delete, "DELETE"},
	}

	for _, tt := range tests {
		if got := tt.stmtType.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"Int", NewIntValue(42), "42"},
		{"NegativeInt", NewIntValue(-7), "-7"},
		{"Float", NewFloatValue(3.14), "3.14"},
		{"WholeFloat", NewFloatValue(5), "5.0"},
		{"Text", NewTextValue("bob"), "'bob'"},
		{"EmptyText", NewTextValue(""), "''"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.expected {
				t.Errorf("String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPredicate_String(t *testing.T) {
	tests := []struct {
		pred     Predicate
		expected string
	}{
		{Equals, "="},
		{NotEqual, "!="},
		{LessThan, "<"},
		{LessThanOrEqual, "<="},
		{GreaterThan, ">"},
		{GreaterThanOrEqual, ">="},
	}

	for _, tt := range tests {
		if got := tt.pred.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestCondition_String(t *testing.T) {
	cond := NewCondition(
		NewFieldOperand("age"),
		GreaterThanOrEqual,
		NewValueOperand(NewIntValue(30)),
	)
	if got := cond.String(); got != "age >= 30" {
		t.Errorf("String() = %v, want 'age >= 30'", got)
	}
}

func TestSelectStatement_String(t *testing.T) {
	stmt := NewSelectStatement("users", []string{"id", "name"})
	if got := stmt.String(); got != "SELECT id, name FROM users" {
		t.Errorf("String() = %v", got)
	}

	stmt.SetWhereClause(NewCondition(
		NewFieldOperand("id"),
		Equals,
		NewValueOperand(NewIntValue(1)),
	))
	if got := stmt.String(); got != "SELECT id, name FROM users WHERE id = 1" {
		t.Errorf("String() = %v", got)
	}
}

func TestSelectStatement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		stmt    *SelectStatement
		wantErr bool
	}{
		{"Valid", NewSelectStatement("users", []string{"id"}), false},
		{"EmptyTable", NewSelectStatement("", []string{"id"}), true},
		{"NoColumns", NewSelectStatement("users", nil), true},
		{"EmptyColumnName", NewSelectStatement("users", []string{"id", ""}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stmt.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInsertStatement_String(t *testing.T) {
	stmt := NewInsertStatement("users")
	stmt.SetColumns([]string{"name", "age"})
	stmt.SetValues([]Value{NewTextValue("john"), NewIntValue(25)})

	expected := "INSERT INTO users (name, age) VALUES ('john', 25)"
	if got := stmt.String(); got != expected {
		t.Errorf("String() = %v, want %v", got, expected)
	}
}

func TestInsertStatement_ValidateArity(t *testing.T) {
	stmt := NewInsertStatement("users")
	stmt.SetColumns([]string{"a", "b"})
	stmt.SetValues([]Value{NewIntValue(1)})

	err := stmt.Validate()
	if err == nil {
		t.Fatal("expected validation error for arity mismatch")
	}

	valErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Field != "Values" {
		t.Errorf("expected field 'Values', got %s", valErr.Field)
	}
}

func TestInsertStatement_ValidateMatchingArity(t *testing.T) {
	stmt := NewInsertStatement("users")
	stmt.SetColumns([]string{"a", "b"})
	stmt.SetValues([]Value{NewIntValue(1), NewTextValue("x")})

	if err := stmt.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestUpdateStatement_String(t *testing.T) {
	stmt := NewUpdateStatement("users")
	stmt.AddSetClause("name", NewTextValue("bob"))
	stmt.AddSetClause("age", NewIntValue(31))
	stmt.SetWhereClause(NewCondition(
		NewFieldOperand("id"),
		Equals,
		NewValueOperand(NewIntValue(1)),
	))

	expected := "UPDATE users SET name = 'bob', age = 31 WHERE id = 1"
	if got := stmt.String(); got != expected {
		t.Errorf("String() = %v, want %v", got, expected)
	}
}

func TestUpdateStatement_Validate(t *testing.T) {
	stmt := NewUpdateStatement("users")
	if err := stmt.Validate(); err == nil {
		t.Error("expected validation error for empty SET clauses")
	}

	stmt.AddSetClause("name", NewTextValue("x"))
	if err := stmt.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestDeleteStatement_String(t *testing.T) {
	stmt := NewDeleteStatement("users")
	if got := stmt.String(); got != "DELETE FROM users" {
		t.Errorf("String() = %v", got)
	}

	stmt.SetWhereClause(NewCondition(
		NewFieldOperand("name"),
		NotEqual,
		NewValueOperand(NewTextValue("admin")),
	))
	if got := stmt.String(); got != "DELETE FROM users WHERE name != 'admin'" {
		t.Errorf("String() = %v", got)
	}
}

func TestDeleteStatement_Validate(t *testing.T) {
	if err := NewDeleteStatement("users").Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
	if err := NewDeleteStatement("").Validate(); err == nil {
		t.Error("expected validation error for empty table name")
	}
}
