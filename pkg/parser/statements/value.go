package statements

import (
	"strconv"
	"strings"
)

type ValueKind int

const (
	IntKind ValueKind = iota
	FloatKind
	TextKind
)

// Value is the closed set of literal values a statement can carry: a 64-bit
// integer, a 64-bit float, or a text string. Dispatch with a type switch on
// *IntValue, *FloatValue and *TextValue.
type Value interface {
	Kind() ValueKind
	// String renders the literal the way it appears in canonical SQL. Text
	// values are single-quoted so the rendering re-lexes to the same token.
	String() string
}

// IntValue is an integer literal such as 42.
type IntValue struct {
	Value int64
}

func NewIntValue(value int64) *IntValue {
	return &IntValue{Value: value}
}

func (v *IntValue) Kind() ValueKind {
	return IntKind
}

func (v *IntValue) String() string {
	return strconv.FormatInt(v.Value, 10)
}

// FloatValue is a floating point literal such as 3.14.
type FloatValue struct {
	Value float64
}

func NewFloatValue(value float64) *FloatValue {
	return &FloatValue{Value: value}
}

func (v *FloatValue) Kind() ValueKind {
	return FloatKind
}

func (v *FloatValue) String() string {
	s := strconv.FormatFloat(v.Value, 'f', -1, 64)
	// A whole-number float still renders with a dot so it re-lexes as a
	// float literal.
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// TextValue is a string literal such as 'bob'. Value holds the contents
// without the quotes.
type TextValue struct {
	Value string
}

func NewTextValue(value string) *TextValue {
	return &TextValue{Value: value}
}

func (v *TextValue) Kind() ValueKind {
	return TextKind
}

func (v *TextValue) String() string {
	return "'" + v.Value + "'"
}
