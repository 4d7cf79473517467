package statements

import (
	"fmt"
	"strings"
)

// DeleteStatement represents a SQL DELETE statement with optional WHERE clause
type DeleteStatement struct {
	TableStatement
	WhereClause *Condition
}

// NewDeleteStatement creates a new DELETE statement
func NewDeleteStatement(tableName string) *DeleteStatement {
	return &DeleteStatement{
		TableStatement: NewTableStatement(Delete, tableName),
	}
}

// SetWhereClause sets the WHERE clause condition
func (ds *DeleteStatement) SetWhereClause(cond *Condition) {
	ds.WhereClause = cond
}

// GetWhereClause returns the WHERE clause condition (can be nil)
func (ds *DeleteStatement) GetWhereClause() *Condition {
	return ds.WhereClause
}

// HasWhereClause returns true if the statement has a WHERE clause
func (ds *DeleteStatement) HasWhereClause() bool {
	return ds.WhereClause != nil
}

// Validate checks if the statement is valid
func (ds *DeleteStatement) Validate() error {
	return ds.requireNonEmpty("TableName", ds.TableName, "table name cannot be empty")
}

// String returns a canonical SQL representation of the DELETE statement
func (ds *DeleteStatement) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("DELETE FROM %s", ds.TableName))

	if ds.HasWhereClause() {
		sb.WriteString(fmt.Sprintf(" WHERE %s", ds.WhereClause.String()))
	}

	return sb.String()
}
