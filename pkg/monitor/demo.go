package monitor

import (
	"fmt"
	"time"

	"github.com/goombaio/namegenerator"
)

// DemoStatements builds n sample statements against a users table, with
// generated names, for exercising the monitor without typing.
func DemoStatements(n int) []string {
	gen := namegenerator.NewNameGenerator(time.Now().UnixNano())

	stmts := make([]string, 0, n+3)
	for i := 0; i < n; i++ {
		name := gen.Generate()
		stmts = append(stmts, fmt.Sprintf(
			"INSERT INTO users (id, name, age) VALUES (%d, '%s', %d);", i+1, name, 20+i%40))
	}
	stmts = append(stmts,
		"SELECT id, name FROM users WHERE age >= 30;",
		fmt.Sprintf("UPDATE users SET name = '%s' WHERE id = 1;", gen.Generate()),
		"DELETE FROM users WHERE age < 21;",
	)
	return stmts
}
