package parser

import (
	"plecakdb/pkg/parser/lexer"
	"plecakdb/pkg/parser/statements"
)

// parseUpdate parses the remainder of an UPDATE statement. The UPDATE
// keyword has already been consumed by Parse.
//
//	update := 'UPDATE' table 'SET' set_list [ 'WHERE' condition ]
func (p *Parser) parseUpdate() (*statements.UpdateStatement, error) {
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	stmt := statements.NewUpdateStatement(table)

	if err := p.consumeKeyword("SET"); err != nil {
		return nil, err
	}
	if err := p.parseSetClauses(stmt); err != nil {
		return nil, err
	}

	where, err := p.parseOptionalWhere()
	if err != nil {
		return nil, err
	}
	stmt.SetWhereClause(where)

	return stmt, nil
}

// parseSetClauses consumes one or more comma-separated `column = value`
// assignments. The '=' is the operator token with that exact spelling, the
// same spelling the lexer emits for the equality comparison.
func (p *Parser) parseSetClauses(stmt *statements.UpdateStatement) error {
	for {
		column, err := p.parseColumn()
		if err != nil {
			return err
		}

		if err := p.consume(lexer.OPERATOR, "="); err != nil {
			return err
		}

		value, err := p.parseValue()
		if err != nil {
			return err
		}
		stmt.AddSetClause(column, value)

		if !p.checkDelimiter(",") {
			return nil
		}
		p.pos++
	}
}
