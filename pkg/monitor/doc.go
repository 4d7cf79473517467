// Package monitor is the host around the SQL front-end: it owns the
// per-process session state that the lexer and parser deliberately do not
// keep.
//
// A Session dispatches one completed input at a time. Dotted meta commands
// (.exit, .help, .history, .tokens) are handled before tokenization;
// everything else is handed to the parser and the resulting statement (or
// its diagnostic) is returned to the caller. Parsed statements are cached
// in an LRU keyed by their text, and every attempted statement is appended
// to a history log that persists across sessions.
//
// RunScript is the non-interactive path: it splits a reader into
// `;`-terminated statements using the same multi-line accumulation rule as
// the interactive prompt and parses them concurrently, since statements
// share no state.
package monitor
