package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	highlightKeywords = []string{
		"SELECT", "FROM", "WHERE", "ORDER", "GROUP",
		"DELETE", "UPDATE", "SET", "INSERT", "INTO", "VALUES",
	}

	highlightOperators = []string{
		"=", "!=", "<", ">", "<=", ">=", "+", "-", "*", "/", "&&", "||",
	}
)

// SQLHighlighter provides syntax highlighting for the monitor's SQL dialect
type SQLHighlighter struct {
	keywords      map[string]bool
	operators     map[string]bool
	keywordStyle  lipgloss.Style
	stringStyle   lipgloss.Style
	numberStyle   lipgloss.Style
	operatorStyle lipgloss.Style
}

func NewSQLHighlighter() *SQLHighlighter {
	h := &SQLHighlighter{
		keywords:  make(map[string]bool),
		operators: make(map[string]bool),
	}

	for _, kw := range highlightKeywords {
		h.keywords[kw] = true
		h.keywords[strings.ToLower(kw)] = true
	}
	for _, op := range highlightOperators {
		h.operators[op] = true
	}

	h.keywordStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF79C6")).
		Bold(true)

	h.stringStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))

	h.numberStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#BD93F9"))

	h.operatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB86C"))

	return h
}

func (h *SQLHighlighter) Highlight(sql string) string {
	words := strings.Fields(sql)
	highlighted := make([]string, 0, len(words))

	for _, word := range words {
		cleanWord := strings.TrimSuffix(strings.TrimSuffix(word, ","), ";")

		switch {
		case h.keywords[cleanWord]:
			highlighted = append(highlighted, h.keywordStyle.Render(word))
		case isQuoted(cleanWord):
			highlighted = append(highlighted, h.stringStyle.Render(word))
		case isNumeric(cleanWord):
			highlighted = append(highlighted, h.numberStyle.Render(word))
		case h.operators[word]:
			highlighted = append(highlighted, h.operatorStyle.Render(word))
		default:
			highlighted = append(highlighted, word)
		}
	}

	return strings.Join(highlighted, " ")
}

// isQuoted checks for a single- or double-quoted literal
func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'")) ||
		(strings.HasPrefix(s, "\"") && strings.HasSuffix(s, "\""))
}

// isNumeric checks if a string represents a number
func isNumeric(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune("0123456789.", c) {
			return false
		}
	}
	return s != ""
}
