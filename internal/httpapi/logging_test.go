package httpapi

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := zlog
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { zlog = prev })
	return &buf
}

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"":      LevelOff,
		"off":   LevelOff,
		"error": LevelError,
		"info":  LevelInfo,
		"debug": LevelDebug,
		"weird": LevelInfo, // default
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestLogLevel_Overrides(t *testing.T) {
	// query param ?log=debug
	r := httptest.NewRequest("GET", "/x?log=debug", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("query override failed: %v", got)
	}
	// shorthand ?log=1
	r = httptest.NewRequest("GET", "/x?log=1", nil)
	if got := requestLogLevel(r); got != LevelDebug {
		t.Fatalf("shorthand query override failed: %v", got)
	}
	// header X-Log-Level
	r = httptest.NewRequest("GET", "/x", nil)
	r.Header.Set("X-Log-Level", "error")
	if got := requestLogLevel(r); got != LevelError {
		t.Fatalf("header override failed: %v", got)
	}
	// default
	prev := defaultLogLevel
	defer func() { defaultLogLevel = prev }()
	SetDefaultLogLevel("info")
	r = httptest.NewRequest("GET", "/x", nil)
	if got := requestLogLevel(r); got != LevelInfo {
		t.Fatalf("default level not applied: %v", got)
	}
}

func TestLoggingLineWriter_SplitsLines(t *testing.T) {
	buf := captureLogs(t)

	lw := &loggingLineWriter{prefix: "events> "}
	_, _ = lw.Write([]byte("a line\npartial"))
	_, _ = lw.Write([]byte("-cont\nlast\n"))

	out := buf.String()
	if !strings.Contains(out, "events> a line") {
		t.Fatalf("missing logged line: %q", out)
	}
	if !strings.Contains(out, "events> partial-cont") {
		t.Fatalf("missing joined line: %q", out)
	}
	if !strings.Contains(out, "events> last") {
		t.Fatalf("missing last line: %q", out)
	}
}

func TestLogRequestEnd_Levels(t *testing.T) {
	buf := captureLogs(t)
	r := httptest.NewRequest("POST", "/exec", nil)

	logRequestEnd(r, LevelOff, "exec", 500, time.Now(), errors.New("boom"))
	if buf.Len() != 0 {
		t.Fatalf("off should not log: %q", buf.String())
	}
	logRequestEnd(r, LevelError, "exec", 200, time.Now(), nil)
	if buf.Len() != 0 {
		t.Fatalf("error level should skip successes: %q", buf.String())
	}
	logRequestEnd(r, LevelError, "exec", 503, time.Now(), errors.New("boom"))
	if !strings.Contains(buf.String(), `"level":"error"`) || !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Fatalf("missing error line: %q", buf.String())
	}
	buf.Reset()
	logRequestEnd(r, LevelInfo, "exec", 200, time.Now(), nil)
	if !strings.Contains(buf.String(), `"message":"exec end"`) || !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("missing info line: %q", buf.String())
	}
}
