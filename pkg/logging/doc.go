// Package logging provides the monitor's structured logger built on
// log/slog.
//
// Init configures a process-wide logger once at startup; GetLogger returns
// it (lazily initializing with defaults when Init was never called). The
// package-level Debug/Info/Warn/Error helpers log through the global
// logger, and the With* constructors attach common context attributes.
//
// When no output path is configured the logger writes to stderr, because
// the interactive UI owns stdout.
package logging
