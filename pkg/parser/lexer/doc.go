// Package lexer implements the tokenizer for the PlecakDB SQL dialect.
//
// The lexer converts one complete statement into an ordered sequence of
// typed tokens that the parser consumes. Lex is the usual entry point; it
// tokenizes eagerly because the whole statement is already in memory.
//
// # Usage
//
//	tokens, err := lexer.Lex("SELECT a, b FROM users WHERE age >= 18;")
//	if err != nil {
//	    var lexErr *lexer.LexError
//	    errors.As(err, &lexErr) // lexErr.Position localizes the failure
//	}
//
// # Token shapes
//
// Reserved words (KEYWORD) are matched case-insensitively and always carry
// their upper-cased spelling. Identifiers preserve the original case. A
// numeric literal with a '.' is a FLOAT, otherwise a NUMBER; both are
// validated during scanning. String literals may use single or double
// quotes — the closing quote must match the opening one and there is no
// escape processing. Comparison operators '<', '>' and '!' combine with an
// adjacent '=' into their two-character forms, and '&'/'|' double into
// '&&'/'||'.
//
// Tokenizing stops at the first malformed construct and returns a
// *LexError naming the byte offset. There is no error recovery.
package lexer
