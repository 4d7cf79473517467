package logging

import "log/slog"

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("monitor")
//	log.Info("session started")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithStatement creates a logger carrying the statement text being
// processed.
//
// Example:
//
//	log := logging.WithStatement(sql)
//	log.Debug("parsed", "type", stmt.GetType())
func WithStatement(sql string) *slog.Logger {
	return GetLogger().With("statement", sql)
}

// WithError creates a logger with error context. Use this when logging
// diagnostics to include the error in structured form.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Error("parse failed")
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
