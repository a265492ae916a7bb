package obslog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitJSONConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Level: "info", Format: "json", ToConsole: true, Console: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	L().Debug("hidden")
	L().Info("suggest_response", zap.String("best_move", "e2e4"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines = %q", lines)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("not json: %v", err)
	}
	if entry["msg"] != "suggest_response" || entry["best_move"] != "e2e4" || entry["level"] != "info" {
		t.Fatalf("entry = %v", entry)
	}

	buf.Reset()
	SetLevel(zapcore.DebugLevel)
	L().Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("SetLevel did not apply: %q", buf.String())
	}
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	if err := Init(Options{Level: "warn", Format: "legacy", ToFile: true, File: path}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	L().Warn("board_feed_write_failed")
	_ = L().Sync()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "WARN | ") || !strings.Contains(string(b), "board_feed_write_failed") {
		t.Fatalf("log = %q", b)
	}
}

func TestNoSinks(t *testing.T) {
	if err := Init(Options{}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	L().Error("dropped")
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", " debug ")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("LOG_FILE", "")
	o := OptionsFromEnv()
	if o.Level != "debug" || !o.ToFile || !o.ToConsole || o.File != filepath.Join("logs", "chess-suggest.log") {
		t.Fatalf("options = %+v", o)
	}
	if parseLevel(o.Level) != zapcore.DebugLevel || parseLevel("bogus") != zapcore.WarnLevel {
		t.Fatalf("parseLevel")
	}
}
