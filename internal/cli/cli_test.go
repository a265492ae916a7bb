package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

type fakeEngine struct {
	mu     sync.Mutex
	reply  string
	bodies []map[string]any
}

func (f *fakeEngine) set(move string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply = move
}

func (f *fakeEngine) last() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[len(f.bodies)-1]
}

func setupEnv(t *testing.T) *fakeEngine {
	t.Helper()
	f := &fakeEngine{reply: "e7e5"}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.bodies = append(f.bodies, body)
		reply := f.reply
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"best_move": reply, "evaluation": "0.3", "depth": "12"})
	}))
	t.Cleanup(srv.Close)

	for k, v := range map[string]string{
		"SUGGEST_API_URL":        srv.URL,
		"X_API_KEY":              "test-key",
		"SUGGEST_API_TIMEOUT":    "",
		"STORE_URL":              "file://" + filepath.Join(t.TempDir(), "storage.json"),
		"REDIS_URL":              "",
		"DATABASE_URL":           "",
		"BOARD_FEED_URL":         "",
		"COMPUTER_COLOR":         "",
		"COMPUTER_LEVEL":         "",
		"PROMOTION_COLOR_SOURCE": "",
		"MESSAGES_DIR":           "",
		"LOG_TO_CONSOLE":         "false",
		"LOG_TO_FILE":            "false",
	} {
		t.Setenv(k, v)
	}
	return f
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out
}

func TestMoveRequiresLogin(t *testing.T) {
	f := setupEnv(t)
	if _, err := run(t, "move", afterE4); !errors.Is(err, errLoginRequired) {
		t.Fatalf("err = %v", err)
	}
	if _, err := run(t, "whoami"); !errors.Is(err, errLoginRequired) {
		t.Fatalf("whoami err = %v", err)
	}
	if len(f.bodies) != 0 {
		t.Fatalf("request sent without login")
	}
}

func TestLoginFlow(t *testing.T) {
	setupEnv(t)
	out := mustRun(t, "login", "--email", "ada@example.com", "--name", "Ada")
	if !strings.Contains(out, "Welcome, Ada") {
		t.Fatalf("login output = %q", out)
	}
	if out := mustRun(t, "whoami"); !strings.Contains(out, "Ada <ada@example.com> uid=") {
		t.Fatalf("whoami = %q", out)
	}
	if _, err := run(t, "login", "--email", "nope", "--name", "Ada"); err == nil {
		t.Fatalf("expected invalid email error")
	}
	mustRun(t, "logout")
	if _, err := run(t, "whoami"); !errors.Is(err, errLoginRequired) {
		t.Fatalf("after logout err = %v", err)
	}
}

func TestMoveVerifiesAndReportsFeedback(t *testing.T) {
	f := setupEnv(t)
	mustRun(t, "login", "--email", "ada@example.com", "--name", "Ada")

	out := mustRun(t, "move", afterE4)
	if !strings.Contains(out, "Suggested move: e7e5 (e5)") || !strings.Contains(out, "Board accepted") {
		t.Fatalf("move output = %q", out)
	}
	if !strings.Contains(out, "from row 6 col 4 to row 4 col 4") {
		t.Fatalf("coordinates missing: %q", out)
	}
	if _, ok := f.last()["is_move_correct"]; !ok {
		t.Fatalf("first request should carry feedback keys: %v", f.last())
	}

	f.set("d8d3")
	out = mustRun(t, "move", afterE4)
	if len(f.last()) != 1 || f.last()["fen"] != afterE4 {
		t.Fatalf("request after a correct move = %v", f.last())
	}
	if !strings.Contains(out, "Board rejected") {
		t.Fatalf("illegal move output = %q", out)
	}

	f.set("g8f6")
	mustRun(t, "move", "--no-verify", afterE4)
	body := f.last()
	if body["is_move_correct"] != false || body["bad_move"] != "d8d3" {
		t.Fatalf("request after an illegal move = %v", body)
	}

	if out := mustRun(t, "state"); !strings.Contains(out, "last move:    g8f6") || !strings.Contains(out, "move correct: false") {
		t.Fatalf("state = %q", out)
	}
}

func TestFeedbackCommand(t *testing.T) {
	setupEnv(t)
	if out := mustRun(t, "feedback", "correct"); !strings.Contains(out, "last move correct") {
		t.Fatalf("feedback output = %q", out)
	}
	if out := mustRun(t, "state"); !strings.Contains(out, "move correct: true") {
		t.Fatalf("state = %q", out)
	}
	mustRun(t, "feedback", "incorrect")
	if out := mustRun(t, "state"); !strings.Contains(out, "move correct: false") {
		t.Fatalf("state = %q", out)
	}
	if _, err := run(t, "feedback", "maybe"); err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestMalformedSuggestionMarkedIncorrect(t *testing.T) {
	f := setupEnv(t)
	mustRun(t, "login", "--email", "ada@example.com", "--name", "Ada")
	mustRun(t, "feedback", "correct")
	f.set("z9")
	if _, err := run(t, "move", afterE4); err == nil {
		t.Fatalf("expected decode error")
	}
	if out := mustRun(t, "state"); !strings.Contains(out, "last move:    z9") || !strings.Contains(out, "move correct: false") {
		t.Fatalf("state = %q", out)
	}
}

func TestComputerFlags(t *testing.T) {
	setupEnv(t)
	if out := mustRun(t, "--color", "white", "--level", "3", "state"); !strings.Contains(out, "computer:     white level 3") {
		t.Fatalf("state = %q", out)
	}
	if _, err := run(t, "--color", "green", "state"); err == nil {
		t.Fatalf("expected color error")
	}
	if _, err := run(t, "--level", "9", "state"); err == nil {
		t.Fatalf("expected level error")
	}
}

func TestHistoryWithoutDatabase(t *testing.T) {
	setupEnv(t)
	if out := mustRun(t, "history"); !strings.Contains(out, "DATABASE_URL") {
		t.Fatalf("history = %q", out)
	}
}
