package lexer

import "testing"

func FuzzLexer(f *testing.F) {
	// Seed corpus: valid SQL fragments and edge cases that exercise
	// different code paths in the tokenizer.
	seeds := []string{
		"SELECT name, age FROM users",
		"INSERT INTO t (a, b) VALUES (1, 'hello')",
		"UPDATE users SET name = 'alice' WHERE id = 1",
		"DELETE FROM orders WHERE total > 100",
		"SELECT a FROM t WHERE a >= 1 && b <= 2",
		// Edge cases
		"",
		"   ",
		";",
		"SELECT",
		"'unclosed string",
		`"mismatched'`,
		"1.2.3",
		"99999999999999999999",
		"123abc",
		"a<=1",
		"&| !=",
		"\x00\x01\x02",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		l := NewLexer(input)
		// Drain all tokens; the lexer must never panic regardless of input.
		for i := 0; i < 10_000; i++ {
			tok, err := l.NextToken()
			if err != nil || tok.Type == EOF {
				break
			}
		}
	})
}
