package debug

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-frame/internal/layout"
)

func TestNewLoggerLevels(t *testing.T) {
	type tc struct {
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}

	tests := map[string]tc{
		"info at info level":   {level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Info("test") }, wantLog: true},
		"debug at info level":  {level: log.InfoLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: false},
		"debug at debug level": {level: log.DebugLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(NewLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestDiagnostics_LogsStructuredWarning(t *testing.T) {
	var buf bytes.Buffer
	d := Diagnostics(NewLogger(&buf, log.InfoLevel))

	d.Report(layout.Warning{Kind: layout.ZeroWeight, Op: "HPut", Message: "total flex weight is not positive"})

	out := buf.String()
	for _, want := range []string{"total flex weight is not positive", "op=HPut", "kind=zero-weight"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDiagnosticsAt_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	d := DiagnosticsAt(NewLogger(&buf, log.InfoLevel), log.DebugLevel)

	d.Report(layout.Warning{Kind: layout.MismatchedParent, Op: "Follow", Message: "x"})

	if buf.Len() != 0 {
		t.Errorf("debug-level warning written at info level: %q", buf.String())
	}
}

func TestTee(t *testing.T) {
	a, b := &layout.Collector{}, &layout.Collector{}
	Tee(a, nil, b).Report(layout.Warning{Kind: layout.DuplicateTag})

	if a.Count(layout.DuplicateTag) != 1 || b.Count(layout.DuplicateTag) != 1 {
		t.Errorf("Tee did not deliver to every sink: a=%d b=%d", a.Count(layout.DuplicateTag), b.Count(layout.DuplicateTag))
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, log.InfoLevel)

	ctx := WithLogger(context.Background(), l)
	if got := LoggerFrom(ctx); got != l {
		t.Errorf("LoggerFrom() = %p, want %p", got, l)
	}
	if got := LoggerFrom(context.Background()); got != log.Default() {
		t.Errorf("LoggerFrom(empty) did not fall back to log.Default()")
	}
}

func TestOpenAndFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "frame.log")
	t.Setenv(EnvVar, path)

	l := FromEnv()
	l.Debug("hello from test")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want it to contain the message", data)
	}
}

func TestFromEnv_UnsetDiscards(t *testing.T) {
	t.Setenv(EnvVar, "")
	l := FromEnv()
	if l.GetLevel() != log.FatalLevel {
		t.Errorf("GetLevel() = %v, want fatal", l.GetLevel())
	}
}
