package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	if err := Initialize(""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected silent logger when no level is set")
	}
}

func TestInitializeFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	defer SetLogger(nil)

	core := GetLogger().Core()
	if core.Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !core.Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestInitializeLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numedit.log")
	t.Setenv(LogFileEnvVar, path)
	if err := Initialize("debug"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	Info("Preset loaded", zap.String("name", "rgb"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Preset loaded") {
		t.Errorf("log file missing entry:\n%s", data)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Error("log file should not contain colour codes")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "10.0.0.1", "10.0.0.1"},
		{"Control characters", "a\tb\x7f", "a\\x09b\\x7f"},
		{"Long ASCII", strings.Repeat("1", 300), strings.Repeat("1", 256) + "..."},
		// 255 bytes of ASCII then a three-byte euro sign straddling the limit
		{"Rune at limit", strings.Repeat("1", 255) + "€€", strings.Repeat("1", 255) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := printable(tt.in)
			if got != tt.want {
				t.Errorf("printable() = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("printable() = %q is not valid UTF-8", got)
			}
		})
	}
}

func TestLogValueChange(t *testing.T) {
	logs := observe(t)

	LogValueChange("commit", "", "42")

	entries := logs.FilterMessage("Value changed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["source"] != "commit" || fields["old"] != "<none>" || fields["new"] != "42" {
		t.Errorf("fields = %v", fields)
	}
}

func TestLogRejectedEdit(t *testing.T) {
	logs := observe(t)

	LogRejectedEdit("hex", "0xZZ\n", errors.New("bad digit"))

	entries := logs.FilterMessage("Edit rejected").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["text"] != `0xZZ\x0a` {
		t.Errorf("text = %q, want escaped newline", fields["text"])
	}
	if fields["error"] != "bad digit" {
		t.Errorf("error = %v", fields["error"])
	}
}

func TestLogRejectedStep(t *testing.T) {
	logs := observe(t)

	LogRejectedStep("up", "98", "rejected: above maximum")
	LogSettingChange("mode", "decimal", "hex")

	if n := logs.FilterMessage("Step rejected").Len(); n != 1 {
		t.Errorf("Step rejected entries = %d, want 1", n)
	}
	if n := logs.FilterField(zap.String("setting", "mode")).Len(); n != 1 {
		t.Errorf("Setting changed entries = %d, want 1", n)
	}
}
