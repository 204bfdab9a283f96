package logger

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestAnsiToHTML(t *testing.T) {
	got := ansiToHTML("\033[32mINFO\033[0m a<b")
	want := `<pre><span style="color: green;">INFO</span> a&lt;b</pre>`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAnsiToHTMLUnclosed(t *testing.T) {
	got := ansiToHTML("\033[31mERROR")
	if !strings.HasSuffix(got, "</span></pre>") {
		t.Errorf("Expected span to be closed, got %q", got)
	}
}

func TestLoggerBuffersAndMirrors(t *testing.T) {
	mirror := &bytes.Buffer{}
	log := NewWithLevel(zapcore.InfoLevel, mirror)

	log.Debug("[test] hidden")
	log.Info("[test] visible", zap.Int("n", 3))

	text := log.Text()
	if strings.Contains(text, "hidden") {
		t.Errorf("Debug message must be filtered at Info level: %q", text)
	}
	if !strings.Contains(text, "[test] visible") || !strings.Contains(text, "3") {
		t.Errorf("Expected info message in buffer, got %q", text)
	}
	if !strings.Contains(mirror.String(), "[test] visible") {
		t.Errorf("Expected message mirrored, got %q", mirror.String())
	}
	if !strings.HasPrefix(log.HTML(), "<pre>") {
		t.Error("Expected HTML logs")
	}

	log.ClearLogs()
	if log.Text() != "" {
		t.Error("Expected empty buffer after ClearLogs")
	}
}

func TestWithSharesBuffer(t *testing.T) {
	log := New()
	child := log.With(zap.String("run", "a"))
	child.Info("[test] child")
	if !strings.Contains(log.Text(), "[test] child") {
		t.Error("Expected child logs in the parent buffer")
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("[test] nothing")
	if log.Text() != "" {
		t.Error("Nop logger must not write")
	}
	if log.Enabled(zapcore.DebugLevel) {
		t.Error("Nop logger must not enable levels")
	}
}
