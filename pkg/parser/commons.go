package parser

import (
	"strconv"

	"plecakdb/pkg/parser/lexer"
	"plecakdb/pkg/parser/statements"
)

// parseColumn consumes one identifier naming a column.
func (p *Parser) parseColumn() (string, error) {
	t, err := p.advance()
	if err != nil {
		return "", err
	}
	if t.Type != lexer.IDENTIFIER {
		return "", newSyntaxError(ExpectedIdentifier, "", t.Value)
	}
	return t.Value, nil
}

// parseTable consumes one identifier naming a table.
func (p *Parser) parseTable() (string, error) {
	t, err := p.advance()
	if err != nil {
		return "", err
	}
	if t.Type != lexer.IDENTIFIER {
		return "", newSyntaxError(ExpectedIdentifier, "", t.Value)
	}
	return t.Value, nil
}

// parseColumnList consumes one or more comma-separated column names.
func (p *Parser) parseColumnList() ([]string, error) {
	columns := []string{}
	for {
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)

		if !p.checkDelimiter(",") {
			return columns, nil
		}
		p.pos++
	}
}

// parseValue consumes one literal token and converts it. The lexer has
// already validated numeric literals, so the conversions cannot fail on
// lexer-produced tokens.
func (p *Parser) parseValue() (statements.Value, error) {
	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case lexer.NUMBER:
		v, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			return nil, newSyntaxError(ExpectedValue, "", t.Value)
		}
		return statements.NewIntValue(v), nil
	case lexer.FLOAT:
		v, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, newSyntaxError(ExpectedValue, "", t.Value)
		}
		return statements.NewFloatValue(v), nil
	case lexer.STRING:
		return statements.NewTextValue(t.Value), nil
	default:
		return nil, newSyntaxError(ExpectedValue, "", t.Value)
	}
}

// parseValueList consumes one or more comma-separated literal values.
func (p *Parser) parseValueList() ([]statements.Value, error) {
	values := []statements.Value{}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		if !p.checkDelimiter(",") {
			return values, nil
		}
		p.pos++
	}
}

// parseOperand consumes either a column reference or a literal value. Both
// sides of a condition use this rule, so the grammar is symmetric.
func (p *Parser) parseOperand() (statements.Operand, error) {
	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case lexer.IDENTIFIER:
		return statements.NewFieldOperand(t.Value), nil
	case lexer.NUMBER:
		v, err := strconv.ParseInt(t.Value, 10, 64)
		if err != nil {
			return nil, newSyntaxError(ExpectedValue, "", t.Value)
		}
		return statements.NewValueOperand(statements.NewIntValue(v)), nil
	case lexer.FLOAT:
		v, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, newSyntaxError(ExpectedValue, "", t.Value)
		}
		return statements.NewValueOperand(statements.NewFloatValue(v)), nil
	case lexer.STRING:
		return statements.NewValueOperand(statements.NewTextValue(t.Value)), nil
	default:
		return nil, newSyntaxError(ExpectedValue, "", t.Value)
	}
}

// parseOperator converts an operator spelling into a Predicate. The lexer
// also produces arithmetic and logical operator tokens; those have no place
// in a condition and are rejected here.
func parseOperator(op string) (statements.Predicate, error) {
	switch op {
	case "=":
		return statements.Equals, nil
	case "!=":
		return statements.NotEqual, nil
	case "<":
		return statements.LessThan, nil
	case "<=":
		return statements.LessThanOrEqual, nil
	case ">":
		return statements.GreaterThan, nil
	case ">=":
		return statements.GreaterThanOrEqual, nil
	default:
		return statements.Equals, newSyntaxError(UnknownOperator, "", op)
	}
}

// parseCondition consumes `operand op operand`, the body of a WHERE clause.
func (p *Parser) parseCondition() (*statements.Condition, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	t, err := p.advance()
	if err != nil {
		return nil, err
	}
	if t.Type != lexer.OPERATOR {
		return nil, newSyntaxError(ExpectedOperator, "", t.Value)
	}
	op, err := parseOperator(t.Value)
	if err != nil {
		return nil, err
	}

	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	return statements.NewCondition(left, op, right), nil
}

// parseOptionalWhere consumes a WHERE clause when the keyword is present at
// the cursor. Absence is not an error; detection is by keyword lookahead
// only.
func (p *Parser) parseOptionalWhere() (*statements.Condition, error) {
	if !p.checkKeyword("WHERE") {
		return nil, nil
	}
	p.pos++
	return p.parseCondition()
}
