package parser

import "plecakdb/pkg/parser/statements"

// parseSelect parses the remainder of a SELECT statement. The SELECT
// keyword has already been consumed by Parse.
//
//	select := 'SELECT' column_list 'FROM' table [ 'WHERE' condition ]
func (p *Parser) parseSelect() (*statements.SelectStatement, error) {
	columns, err := p.parseColumnList()
	if err != nil {
		return nil, err
	}

	if err := p.consumeKeyword("FROM"); err != nil {
		return nil, err
	}
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}

	stmt := statements.NewSelectStatement(table, columns)

	where, err := p.parseOptionalWhere()
	if err != nil {
		return nil, err
	}
	stmt.SetWhereClause(where)

	return stmt, nil
}
