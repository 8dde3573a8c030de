package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "arrows", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "arrows=3") {
		t.Error(out)
	}
}

func TestInit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "drumcity.log")
	logger, f, err := Init(file, slog.LevelInfo)
	if nil != err {
		t.Fatal(err)
	}
	defer log.SetOutput(os.Stderr)

	logger.Info("entering play", "chart", "akisey")
	log.Println("legacy line")
	if err := f.Close(); nil != err {
		t.Fatal(err)
	}

	data, err := os.ReadFile(file)
	if nil != err {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "chart=akisey") || !strings.Contains(string(data), "legacy line") {
		t.Error(string(data))
	}
}
