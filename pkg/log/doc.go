// Package log provides a structured event trace for numeric input controls.
//
// This package defines the Logger interface and Event types for capturing
// what an interaction controller did: state transitions, commits, drag
// phases, and swallowed processing errors. It is separate from operational
// logging (slog) - the event trace is a complete machine-readable record
// for debugging and replaying interaction sessions.
//
// # Basic Usage
//
// Hosts configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For sessions: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/tmp/numval/session.nlog")
//
//	// Both: use MultiLogger
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Every event carries the control ID and the input source that caused it:
//   - State: editing and dragging transitions (StateChangeEvent)
//   - Commit: a new value was accepted or resynced (CommitEvent)
//   - Drag: pointer adjustment phases (DragEvent)
//   - Error: a processing failure that was rolled back (ErrorEventData)
//
// # File Format
//
// Log files are a stream of CBOR records with the .nlog extension. The
// numval-log tool provides viewing, filtering, and export capabilities.
package log
