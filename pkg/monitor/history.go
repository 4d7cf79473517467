package monitor

import (
	"errors"
	"os"
	"strings"
)

// historyFileName sits in the user's home directory.
const historyFileName = ".plecakdb_history"

// History is the ordered log of statements the session has executed. The
// oldest entry comes first.
type History struct {
	entries []string
	path    string
}

func NewHistory() *History {
	return &History{}
}

// Add appends one executed statement to the log.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	h.entries = append(h.entries, entry)
}

// Entries returns the logged statements, oldest first.
func (h *History) Entries() []string {
	return h.entries
}

// Len returns the number of logged statements.
func (h *History) Len() int {
	return len(h.entries)
}

// Load reads previously persisted history. A missing file is not an error.
func (h *History) Load() error {
	p, err := h.filePath()
	if err != nil {
		return err
	}
	contents, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, line := range strings.Split(string(contents), "\n") {
		if line == "" {
			continue
		}
		h.entries = append(h.entries, line)
	}
	return nil
}

// Save persists the history, one statement per line, replacing any
// previous file.
func (h *History) Save() error {
	p, err := h.filePath()
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, entry := range h.entries {
		sb.WriteString(entry)
		sb.WriteString("\n")
	}
	return os.WriteFile(p, []byte(sb.String()), 0o644)
}

func (h *History) filePath() (string, error) {
	if h.path != "" {
		return h.path, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	h.path = dir + "/" + historyFileName
	return h.path, nil
}
