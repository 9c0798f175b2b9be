// Package debug provides logging for layout diagnostics.
//
// Loggers are github.com/charmbracelet/log loggers. They travel through
// context.Context so commands share one logger, and [Diagnostics] adapts a
// logger into a layout.Diagnostics sink so fail-soft layout warnings become
// structured log records.
//
// When the FRAME_DEBUG environment variable is set to a file path,
// [FromEnv] returns a debug-level logger appending to that file. Otherwise
// it returns a logger that discards everything.
package debug
