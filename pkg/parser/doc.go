// Package parser converts SQL text into an abstract syntax tree (AST).
//
// ParseStatement is the single entry point. It accepts a SQL string, drives
// the lexer to produce the token sequence, and returns a typed
// statements.Statement value. Callers that already hold tokens can build a
// Parser directly with NewParser.
//
// # Supported statements
//
//   - SELECT  – column list, table, optional WHERE comparison
//   - INSERT  – single-row insert with explicit column list
//   - UPDATE  – comma-separated SET assignments, optional WHERE
//   - DELETE  – optional WHERE
//
// # Usage
//
//	stmt, err := parser.ParseStatement("SELECT id, name FROM users WHERE age > 18")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Type-switch on *statements.SelectStatement, *statements.InsertStatement, etc.
//
// # Error handling
//
// The parser is predictive with one token of lookahead and aborts on the
// first grammar violation, returning a *SyntaxError that describes the
// expected and found tokens. A trailing ';' is tolerated but never
// required: "SELECT a FROM t" and "SELECT a FROM t;" parse identically.
// The parser does not panic on malformed input.
package parser
