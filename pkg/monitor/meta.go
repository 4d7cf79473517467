package monitor

import (
	"fmt"
	"strings"
)

const helpText = `Available commands:
  .exit      - Exit the monitor
  .help      - Show this help
  .history   - Show history of commands
  .tokens    - Toggle token echo for parsed statements
  All other inputs are treated as SQL commands terminated by ';'.`

// dispatchMeta handles the dotted meta commands. They are matched before
// tokenization, so a leading '.' never reaches the lexer.
func (s *Session) dispatchMeta(input string) Result {
	switch input {
	case ".exit":
		return Result{Output: "Goodbye!", Quit: true}
	case ".help":
		return Result{Output: helpText}
	case ".history":
		return Result{Output: s.formatHistory()}
	case ".tokens":
		s.showTokens = !s.showTokens
		if s.showTokens {
			return Result{Output: "Token echo enabled"}
		}
		return Result{Output: "Token echo disabled"}
	default:
		return Result{Output: fmt.Sprintf("Unknown command %q. Type .help for help.", input)}
	}
}

// formatHistory lists executed statements most recent first, numbered by
// their position in the log.
func (s *Session) formatHistory() string {
	entries := s.history.Entries()
	if len(entries) == 0 {
		return "History is empty"
	}

	var sb strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%d.  %s", i+1, entries[i]))
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
