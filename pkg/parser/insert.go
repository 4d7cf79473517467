package parser

import (
	"plecakdb/pkg/parser/lexer"
	"plecakdb/pkg/parser/statements"
)

// parseInsert parses the remainder of an INSERT statement. The INSERT
// keyword has already been consumed by Parse.
//
//	insert := 'INSERT' 'INTO' table '(' column_list ')'
//	          'VALUES' '(' value_list ')'
//
// The parser does not require the value count to match the column count;
// that is a semantic check and lives in InsertStatement.Validate.
func (p *Parser) parseInsert() (*statements.InsertStatement, error) {
	if err := p.consumeKeyword("INTO"); err != nil {
		return nil, err
	}
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	stmt := statements.NewInsertStatement(table)

	if err := p.consume(lexer.DELIMITER, "("); err != nil {
		return nil, err
	}
	columns, err := p.parseColumnList()
	if err != nil {
		return nil, err
	}
	stmt.SetColumns(columns)
	if err := p.consume(lexer.DELIMITER, ")"); err != nil {
		return nil, err
	}

	if err := p.consumeKeyword("VALUES"); err != nil {
		return nil, err
	}
	if err := p.consume(lexer.DELIMITER, "("); err != nil {
		return nil, err
	}
	values, err := p.parseValueList()
	if err != nil {
		return nil, err
	}
	stmt.SetValues(values)
	if err := p.consume(lexer.DELIMITER, ")"); err != nil {
		return nil, err
	}

	return stmt, nil
}
