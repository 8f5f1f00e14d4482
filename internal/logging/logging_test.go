package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		if got := Level(tt.verbosity); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestSetupWritesConsoleAndFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "logs", "gen.log")

	logger := Setup(Options{Verbosity: 1, File: logFile, FileMaxSize: 1, Console: &console})
	logger.Info().Str("path", "package.json").Msg("patched manifest")

	if !strings.Contains(console.String(), "patched manifest") {
		t.Errorf("console output missing message, got %q", console.String())
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"patched manifest"`) {
		t.Errorf("log file missing JSON message, got %q", data)
	}
}

func TestSetupFiltersBelowWarn(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var console bytes.Buffer
	logger := Setup(Options{Console: &console})
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := console.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at verbosity 0, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing, got %q", out)
	}
}
