package statements

import (
	"fmt"
	"strings"
)

// SetClause represents a column assignment in an UPDATE statement
// (e.g., column = value).
type SetClause struct {
	Column string
	Value  Value
}

// UpdateStatement represents a SQL UPDATE statement with SET clauses and
// optional WHERE clause.
type UpdateStatement struct {
	TableStatement
	SetClauses  []SetClause
	WhereClause *Condition
}

// NewUpdateStatement creates a new UPDATE statement
func NewUpdateStatement(tableName string) *UpdateStatement {
	return &UpdateStatement{
		TableStatement: NewTableStatement(Update, tableName),
		SetClauses:     make([]SetClause, 0),
	}
}

// AddSetClause adds a SET clause to the UPDATE statement
func (us *UpdateStatement) AddSetClause(column string, value Value) {
	us.SetClauses = append(us.SetClauses, SetClause{
		Column: column,
		Value:  value,
	})
}

// SetWhereClause sets the WHERE clause condition
func (us *UpdateStatement) SetWhereClause(cond *Condition) {
	us.WhereClause = cond
}

// HasWhereClause returns true if the statement has a WHERE clause
func (us *UpdateStatement) HasWhereClause() bool {
	return us.WhereClause != nil
}

// Validate checks if the statement is valid
func (us *UpdateStatement) Validate() error {
	if err := us.requireNonEmpty("TableName", us.TableName, "table name cannot be empty"); err != nil {
		return err
	}
	if err := us.requireNonEmptySlice("SetClauses", len(us.SetClauses), "at least one SET clause is required"); err != nil {
		return err
	}
	for i, clause := range us.SetClauses {
		if clause.Column == "" {
			return NewValidationError(Update, fmt.Sprintf("SetClauses[%d].Column", i), "column name cannot be empty")
		}
		if clause.Value == nil {
			return NewValidationError(Update, fmt.Sprintf("SetClauses[%d].Value", i), "value cannot be nil")
		}
	}
	return nil
}

// String returns a canonical SQL representation of the UPDATE statement
func (us *UpdateStatement) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("UPDATE %s SET ", us.TableName))

	for i, setClause := range us.SetClauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s = %s", setClause.Column, setClause.Value.String()))
	}

	if us.HasWhereClause() {
		sb.WriteString(fmt.Sprintf(" WHERE %s", us.WhereClause.String()))
	}

	return sb.String()
}
