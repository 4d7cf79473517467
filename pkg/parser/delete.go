package parser

import "plecakdb/pkg/parser/statements"

// parseDelete parses the remainder of a DELETE statement. The DELETE
// keyword has already been consumed by Parse.
//
//	delete := 'DELETE' 'FROM' table [ 'WHERE' condition ]
func (p *Parser) parseDelete() (*statements.DeleteStatement, error) {
	if err := p.consumeKeyword("FROM"); err != nil {
		return nil, err
	}

	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	stmt := statements.NewDeleteStatement(table)

	where, err := p.parseOptionalWhere()
	if err != nil {
		return nil, err
	}
	stmt.SetWhereClause(where)

	return stmt, nil
}
