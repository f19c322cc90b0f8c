package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"info":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}

	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithConfigWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log := NewWithConfig("info", false, true, path)
	log.Info().Str("component", "test").Msg("hello")
	log.Debug().Msg("filtered out")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log file to contain the info line")
	}
	if got := string(data); !strings.Contains(got, `"component":"test"`) || strings.Contains(got, "filtered out") {
		t.Errorf("unexpected log contents: %s", got)
	}
}

func TestNewDefaultsToInfo(t *testing.T) {
	if got := New().GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("New() level = %v, want info", got)
	}
}
