package statements

import (
	"fmt"
	"strings"
)

// InsertStatement represents a SQL INSERT statement with table name, column
// names, and one row of values.
type InsertStatement struct {
	TableStatement
	Columns []string
	Values  []Value
}

// NewInsertStatement creates a new INSERT statement
func NewInsertStatement(tableName string) *InsertStatement {
	return &InsertStatement{
		TableStatement: NewTableStatement(Insert, tableName),
		Columns:        make([]string, 0),
		Values:         make([]Value, 0),
	}
}

// SetColumns sets the column names for the INSERT statement
func (s *InsertStatement) SetColumns(columns []string) {
	s.Columns = columns
}

// SetValues sets the row of values to be inserted
func (s *InsertStatement) SetValues(values []Value) {
	s.Values = values
}

// Validate checks if the statement is valid. The parser does not enforce
// that the value count matches the column count, so the arity check lives
// here.
func (s *InsertStatement) Validate() error {
	if err := s.requireNonEmpty("TableName", s.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := s.requireNonEmptySlice("Columns", len(s.Columns), "at least one column is required"); err != nil {
		return err
	}
	if err := s.requireNonEmptySlice("Values", len(s.Values), "at least one value is required"); err != nil {
		return err
	}
	if len(s.Values) != len(s.Columns) {
		return NewValidationError(
			Insert,
			"Values",
			fmt.Sprintf("expected %d values, got %d", len(s.Columns), len(s.Values)),
		)
	}
	return nil
}

// String returns a canonical SQL representation of the INSERT statement
func (s *InsertStatement) String() string {
	var sb statementBuilder
	sb.WriteString(fmt.Sprintf("INSERT INTO %s", s.TableName))
	sb.WriteString(fmt.Sprintf(" (%s)", strings.Join(s.Columns, ", ")))

	sb.WriteString(" VALUES (")
	for i, val := range s.Values {
		sb.writeIf(i > 0, ", ")
		sb.WriteString(val.String())
	}
	sb.WriteString(")")

	return sb.String()
}
