package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/muurk/pokeselect/internal/config"
	"github.com/muurk/pokeselect/internal/replay"
)

// execute runs the root command with args against configPath and returns
// everything written to stdout and stderr.
func execute(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()

	optionsFile, configFile = "", ""
	exitOnCommit, plainOutput, visibleRows = false, false, 0
	filterFormat, replayFormat, replayFocus, replayScript = "detailed", "detailed", true, ""
	clearHistory, assumeYes, forceInit = false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--config", configPath))

	err := rootCmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestFilterCompact(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "filter", "char", "--format", "compact")
	if err != nil {
		t.Fatalf("filter error = %v", err)
	}
	want := "Charmander\nCharmeleon\nCharizard\n"
	if out != want {
		t.Errorf("filter output = %q, want %q", out, want)
	}
}

func TestFilterJSON(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "filter", "zzz", "--format", "json")
	if err != nil {
		t.Fatalf("filter error = %v", err)
	}

	var result filterResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if result.Catalog != "pokemon" || result.Prefix != "zzz" {
		t.Errorf("result = %+v", result)
	}
	if result.Matches == nil || len(result.Matches) != 0 {
		t.Errorf("Matches = %#v, want empty list", result.Matches)
	}
	if !strings.Contains(out, `"matches": []`) {
		t.Errorf("output does not encode an empty list:\n%s", out)
	}
}

func TestFilterDetailed(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "filter", "pika")
	if err != nil {
		t.Fatalf("filter error = %v", err)
	}
	for _, want := range []string{"FILTER", "Pikachu", "1 of 151"} {
		if !strings.Contains(out, want) {
			t.Errorf("filter output missing %q:\n%s", want, out)
		}
	}
}

func TestFilterUnknownFormat(t *testing.T) {
	if _, err := execute(t, tempConfig(t), "", "filter", "--format", "xml"); err == nil {
		t.Error("filter --format xml succeeded, want error")
	}
}

func TestFilterCustomOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	if err := os.WriteFile(path, []byte("Red\nGreen\nGrey\n"), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, tempConfig(t), "", "filter", "gr", "--format", "compact", "--options", path)
	if err != nil {
		t.Fatalf("filter error = %v", err)
	}
	if out != "Green\nGrey\n" {
		t.Errorf("filter output = %q", out)
	}
}

func TestMissingOptionsFile(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "filter", "--options", filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("missing options file succeeded, want error")
	}
	if !strings.Contains(out, "Troubleshooting") {
		t.Errorf("output missing troubleshooting box:\n%s", out)
	}
}

func TestReplayJSON(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "replay", "type:Char", "down", "enter", "--format", "json")
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}

	var report replay.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if report.Final.Value != "Charmander" {
		t.Errorf("final value = %q, want Charmander", report.Final.Value)
	}
	if len(report.Steps) != 7 || report.Steps[0].Event != "Focus" {
		t.Errorf("steps = %+v", report.Steps)
	}
}

func TestReplayWithoutFocus(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "replay", "type:B", "--focus=false", "--format", "yaml")
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}
	// Typing into an unfocused field does not open the listbox
	if !strings.Contains(out, "aria_expanded: false") {
		t.Errorf("yaml output:\n%s", out)
	}
}

func TestReplayDetailed(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "replay", "up", "enter")
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}
	for _, want := range []string{"REPLAY", "ArrowUp", "Mew", "SUCCESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}
}

func TestReplayScriptRunsBeforeArgs(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "replay", "--script", "type:Char down", "down", "enter", "--format", "json")
	if err != nil {
		t.Fatalf("replay error = %v", err)
	}

	var report replay.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if report.Final.Value != "Charmeleon" {
		t.Errorf("final value = %q, want Charmeleon", report.Final.Value)
	}
	if report.Steps[0].Event != "Focus" {
		t.Errorf("first step = %q, want Focus", report.Steps[0].Event)
	}
}

func TestReplayNeedsEvents(t *testing.T) {
	if _, err := execute(t, tempConfig(t), "", "replay"); err == nil {
		t.Error("replay without events succeeded, want error")
	}

	_, err := execute(t, tempConfig(t), "", "replay", "--script", "down bogus")
	if !errors.Is(err, replay.ErrUnknownToken) {
		t.Errorf("replay --script error = %v, want ErrUnknownToken", err)
	}
}

func TestReplayInvalidToken(t *testing.T) {
	_, err := execute(t, tempConfig(t), "", "replay", "down", "jump")
	if !errors.Is(err, replay.ErrUnknownToken) {
		t.Errorf("replay error = %v, want ErrUnknownToken", err)
	}
}

func seedHistory(t *testing.T, path string, values ...string) {
	t.Helper()
	r := config.NewRegistry()
	for _, v := range values {
		r.RecordSelection(v, "pokemon")
	}
	if err := r.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
}

func TestHistoryList(t *testing.T) {
	path := tempConfig(t)
	seedHistory(t, path, "Pikachu", "Mew")

	out, err := execute(t, path, "", "history")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if strings.Index(out, "Mew") > strings.Index(out, "Pikachu") {
		t.Errorf("history not most recent first:\n%s", out)
	}
}

func TestHistoryClear(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		cleared bool
	}{
		{"assume yes", []string{"history", "--clear", "--yes"}, "", true},
		{"confirmed", []string{"history", "--clear"}, "clear\n", true},
		{"declined", []string{"history", "--clear"}, "no\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tempConfig(t)
			seedHistory(t, path, "Pikachu")

			if _, err := execute(t, path, tt.stdin, tt.args...); err != nil {
				t.Fatalf("history error = %v", err)
			}

			r, err := config.LoadRegistryFrom(path)
			if err != nil {
				t.Fatalf("LoadRegistryFrom() error = %v", err)
			}
			if got := len(r.History) == 0; got != tt.cleared {
				t.Errorf("history cleared = %v, want %v", got, tt.cleared)
			}
		})
	}
}

func TestConfigInitAndPath(t *testing.T) {
	path := tempConfig(t)

	if _, err := execute(t, path, "", "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if _, err := execute(t, path, "", "config", "init"); err == nil {
		t.Error("second config init succeeded, want already-exists error")
	}
	if _, err := execute(t, path, "", "config", "init", "--force"); err != nil {
		t.Errorf("config init --force error = %v", err)
	}

	out, err := execute(t, path, "", "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}

	out, err = execute(t, path, "", "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(out, "visible_rows: 8") {
		t.Errorf("config show output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, tempConfig(t), "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "pokeselect ") {
		t.Errorf("version output = %q", out)
	}
}
