package debug

import (
	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-frame/internal/layout"
)

// logDiagnostics writes layout warnings to a logger.
type logDiagnostics struct {
	logger *log.Logger
	level  log.Level
}

// Diagnostics returns a layout.Diagnostics that logs every warning at warn
// level with op and kind fields.
func Diagnostics(l *log.Logger) layout.Diagnostics {
	return DiagnosticsAt(l, log.WarnLevel)
}

// DiagnosticsAt is Diagnostics with an explicit level, e.g. log.DebugLevel
// for hosts that expect mismatched parents during normal operation.
func DiagnosticsAt(l *log.Logger, level log.Level) layout.Diagnostics {
	return &logDiagnostics{logger: l, level: level}
}

func (d *logDiagnostics) Report(w layout.Warning) {
	d.logger.Log(d.level, w.Message, "op", w.Op, "kind", w.Kind.String())
}

// Tee fans warnings out to every sink.
func Tee(sinks ...layout.Diagnostics) layout.Diagnostics {
	return layout.DiagnosticsFunc(func(w layout.Warning) {
		for _, s := range sinks {
			if s != nil {
				s.Report(w)
			}
		}
	})
}
