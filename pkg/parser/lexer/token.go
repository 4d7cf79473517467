package lexer

type TokenType int

const (
	// KEYWORD is a reserved word such as SELECT or WHERE. The token value is
	// always upper-cased regardless of how the word was spelled in the input.
	KEYWORD TokenType = iota
	// IDENTIFIER is an unreserved word naming a table or column. The token
	// value preserves the original case.
	IDENTIFIER
	// NUMBER is a decimal integer literal that fits in an int64.
	NUMBER
	// FLOAT is a decimal literal containing exactly one '.'.
	FLOAT
	// STRING is a quoted text literal. The token value excludes the quotes.
	STRING
	// OPERATOR is a comparison, arithmetic, or logical operator spelling.
	OPERATOR
	// DELIMITER is one of the structural marks ';', ',', '(' or ')'.
	DELIMITER
	// EOF marks the end of input.
	EOF
)

var tokenTypeNames = map[TokenType]string{
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	FLOAT:      "FLOAT",
	STRING:     "STRING",
	OPERATOR:   "OPERATOR",
	DELIMITER:  "DELIMITER",
	EOF:        "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is the smallest lexical unit emitted by the lexer. Position is the
// byte offset of the token's first character in the source string.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}
