package monitor

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"plecakdb/pkg/logging"
	"plecakdb/pkg/parser"
	"plecakdb/pkg/parser/statements"
)

// scriptWorkers bounds the parse workers for a script run.
const scriptWorkers = 4

// ScriptResult is the outcome of parsing one statement of a script.
type ScriptResult struct {
	Index     int
	SQL       string
	Statement statements.Statement
	Err       error
}

// SplitStatements reads lines from r and accumulates them, joined by
// single spaces, until a line ends in ';' — the same multi-line buffering
// the interactive monitor applies. A trailing unterminated buffer is
// returned as a final statement so its diagnostic is not silently lost.
func SplitStatements(r io.Reader) ([]string, error) {
	var stmts []string
	var buffer []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		buffer = append(buffer, line)
		if strings.HasSuffix(line, ";") {
			stmts = append(stmts, strings.Join(buffer, " "))
			buffer = buffer[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(buffer) > 0 {
		stmts = append(stmts, strings.Join(buffer, " "))
	}
	return stmts, nil
}

// RunScript parses every statement of a script. Statements share no state,
// so they are parsed concurrently by a bounded worker group; results keep
// script order and each statement's diagnostic is recorded in its slot
// rather than aborting the run.
func RunScript(r io.Reader) ([]ScriptResult, error) {
	stmts, err := SplitStatements(r)
	if err != nil {
		return nil, err
	}

	log := logging.WithComponent("script")
	results := make([]ScriptResult, len(stmts))

	var g errgroup.Group
	g.SetLimit(scriptWorkers)
	for i, sql := range stmts {
		i, sql := i, sql
		g.Go(func() error {
			stmt, err := parser.ParseStatement(sql)
			results[i] = ScriptResult{
				Index:     i,
				SQL:       sql,
				Statement: stmt,
				Err:       err,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, res := range results {
		if res.Err != nil {
			log.Debug("statement failed", "index", res.Index, "error", res.Err)
		}
	}
	return results, nil
}
