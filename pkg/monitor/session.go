package monitor

import (
	"fmt"
	"log/slog"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"plecakdb/pkg/logging"
	"plecakdb/pkg/parser"
	"plecakdb/pkg/parser/lexer"
	"plecakdb/pkg/parser/statements"
)

// cacheSize bounds the parsed-statement cache. Interactive sessions rarely
// hold more than a few dozen distinct statements.
const cacheSize = 128

// Result is the outcome of dispatching one completed input line.
type Result struct {
	// Statement is the parsed statement, nil for meta commands and errors.
	Statement statements.Statement
	// Tokens is the token sequence, filled when token echo is enabled.
	Tokens []lexer.Token
	// Output is the text produced by a meta command.
	Output string
	// Err is the first diagnostic from the lexer or parser.
	Err error
	// Quit is set by the .exit meta command.
	Quit bool
	// Cached reports that the statement was served from the parse cache.
	Cached bool
}

// Session is the front-end state of one monitor process: the statement
// cache, the command history, and the token echo toggle. The lexer and
// parser themselves hold no state between statements.
type Session struct {
	cache      *lru.Cache[string, statements.Statement]
	history    *History
	showTokens bool
	log        *slog.Logger
}

// NewSession creates a Session with an empty history. Previously persisted
// history is loaded when present.
func NewSession() (*Session, error) {
	cache, err := lru.New[string, statements.Statement](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating statement cache: %w", err)
	}

	s := &Session{
		cache:   cache,
		history: NewHistory(),
		log:     logging.WithComponent("monitor"),
	}
	if err := s.history.Load(); err != nil {
		s.log.Warn("failed to load history", "error", err)
	}
	return s, nil
}

// History returns the session's command history.
func (s *Session) History() *History {
	return s.history
}

// TokenEchoEnabled reports whether statement dispatch fills Result.Tokens.
func (s *Session) TokenEchoEnabled() bool {
	return s.showTokens
}

// Dispatch handles one completed input: a dotted meta command or a
// `;`-terminated SQL statement. Meta commands are recognized before
// tokenization is invoked.
func (s *Session) Dispatch(input string) Result {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{}
	}
	if strings.HasPrefix(input, ".") {
		return s.dispatchMeta(input)
	}
	return s.dispatchStatement(input)
}

func (s *Session) dispatchStatement(input string) Result {
	// The original monitor logs every attempted statement, including the
	// ones that fail to parse.
	s.history.Add(input)

	res := Result{}
	if s.showTokens {
		tokens, err := lexer.Lex(input)
		if err != nil {
			s.log.Debug("lex failed", "statement", input, "error", err)
			res.Err = err
			return res
		}
		res.Tokens = tokens
	}

	if stmt, ok := s.cache.Get(input); ok {
		s.log.Debug("statement served from cache", "statement", input)
		res.Statement = stmt
		res.Cached = true
		return res
	}

	stmt, err := parser.ParseStatement(input)
	if err != nil {
		s.log.Debug("parse failed", "statement", input, "error", err)
		res.Err = err
		return res
	}

	s.cache.Add(input, stmt)
	res.Statement = stmt
	return res
}

// Close persists the command history.
func (s *Session) Close() error {
	return s.history.Save()
}
