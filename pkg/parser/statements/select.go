package statements

import (
	"fmt"
	"strings"
)

// SelectStatement represents a SQL SELECT statement with a column list and
// optional WHERE clause.
type SelectStatement struct {
	TableStatement
	Columns     []string
	WhereClause *Condition
}

// NewSelectStatement creates a new SELECT statement
func NewSelectStatement(tableName string, columns []string) *SelectStatement {
	return &SelectStatement{
		TableStatement: NewTableStatement(Select, tableName),
		Columns:        columns,
	}
}

// SetWhereClause sets the WHERE clause condition
func (ss *SelectStatement) SetWhereClause(cond *Condition) {
	ss.WhereClause = cond
}

// HasWhereClause returns true if the statement has a WHERE clause
func (ss *SelectStatement) HasWhereClause() bool {
	return ss.WhereClause != nil
}

// Validate checks if the statement is valid
func (ss *SelectStatement) Validate() error {
	if err := ss.requireNonEmpty("TableName", ss.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := ss.requireNonEmptySlice("Columns", len(ss.Columns), "at least one column is required"); err != nil {
		return err
	}
	for i, col := range ss.Columns {
		if col == "" {
			return NewValidationError(Select, fmt.Sprintf("Columns[%d]", i), "column name cannot be empty")
		}
	}
	return nil
}

// String returns a canonical SQL representation of the SELECT statement
func (ss *SelectStatement) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("SELECT %s FROM %s", strings.Join(ss.Columns, ", "), ss.TableName))

	if ss.HasWhereClause() {
		sb.WriteString(fmt.Sprintf(" WHERE %s", ss.WhereClause.String()))
	}

	return sb.String()
}
