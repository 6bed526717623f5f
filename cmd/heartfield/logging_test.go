package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vitapredict/heart"
	"github.com/vitapredict/heart/internal/config"
)

func TestNewLoggerFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"text", "level=WARN msg=careful n=3"},
		{"json", `"msg":"careful","n":3`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			l, closer, err := newLogger(&buf, config.LoggerConfig{Level: "warn", Format: tt.format})
			if err != nil {
				t.Fatal(err)
			}
			if closer != nil {
				t.Error("console-only logger returned a closer")
			}
			l.Info("hidden")
			l.Warn("careful", "n", 3)
			if strings.Contains(buf.String(), "hidden") {
				t.Error("record below the level was written")
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartfield.log")
	l, closer, err := newLogger(nil, config.LoggerConfig{Level: "debug", Format: "json", LogFile: path, MaxSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	l.Debug("to file")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"msg":"to file"`) {
		t.Errorf("log file = %q", b)
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	if _, _, err := newLogger(&bytes.Buffer{}, config.LoggerConfig{Level: "loud"}); err == nil {
		t.Error("newLogger accepted an unknown level")
	}
}

func TestUseLoggerTagsSession(t *testing.T) {
	a := newApp()
	defer a.close()

	var buf bytes.Buffer
	l, _, err := newLogger(&buf, config.LoggerConfig{Level: "info", Format: "text"})
	if err != nil {
		t.Fatal(err)
	}
	a.useLogger(l)
	heart.Logger().Info("hello")
	if !strings.Contains(buf.String(), "session="+a.session) {
		t.Errorf("library log %q lacks the session id", buf.String())
	}
	if len(a.session) != 36 {
		t.Errorf("session %q is not a UUID", a.session)
	}
}
