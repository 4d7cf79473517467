package statements

import "fmt"

// Predicate is the closed set of comparison operators allowed in a WHERE
// clause.
type Predicate int

const (
	Equals Predicate = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

func (p Predicate) String() string {
	switch p {
	case Equals:
		return "="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return "UNKNOWN"
	}
}

// Operand is either a column reference or a literal value. Both sides of a
// condition use the same rule, so a literal may appear on the left of the
// operator and a column on the right.
type Operand interface {
	fmt.Stringer
	operand()
}

// FieldOperand references a column by name.
type FieldOperand struct {
	Column string
}

func NewFieldOperand(column string) *FieldOperand {
	return &FieldOperand{Column: column}
}

func (o *FieldOperand) operand() {}

func (o *FieldOperand) String() string {
	return o.Column
}

// ValueOperand wraps a literal value.
type ValueOperand struct {
	Value Value
}

func NewValueOperand(value Value) *ValueOperand {
	return &ValueOperand{Value: value}
}

func (o *ValueOperand) operand() {}

func (o *ValueOperand) String() string {
	return o.Value.String()
}

// Condition is a single binary comparison forming the body of a WHERE
// clause.
type Condition struct {
	Left     Operand
	Operator Predicate
	Right    Operand
}

func NewCondition(left Operand, op Predicate, right Operand) *Condition {
	return &Condition{
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

func (c *Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Left.String(), c.Operator.String(), c.Right.String())
}
