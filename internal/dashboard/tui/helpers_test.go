package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const threeByTwo = `| 任务 | 状态 |
|------|------|
| 学习 | 进行中 |
| 完成项目 | 未开始 |
| 整理文档 | 未开始 |
`

// keyPress builds the KeyMsg Bubble Tea delivers for a key name.
func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// send feeds messages through Update and returns the final model and the
// last command.
func send(t *testing.T, m AppModel, msgs ...tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(AppModel)
	}
	return m, cmd
}

func press(t *testing.T, m AppModel, keys ...string) (AppModel, tea.Cmd) {
	t.Helper()
	msgs := make([]tea.Msg, len(keys))
	for i, k := range keys {
		msgs[i] = keyPress(k)
	}
	return send(t, m, msgs...)
}

// fixture lays out a workspace with optional todo/cyber content.
type fixture struct {
	dir   string
	opts  Options
	clips []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{dir: dir}
	f.opts = Options{
		TodoPath:  filepath.Join(dir, "md", "TODO.md"),
		CyberPath: filepath.Join(dir, "md", "CYBER.md"),
		BillDir:   filepath.Join(dir, "bills"),
		Editor:    "true",
		Clipboard: func(s string) error {
			f.clips = append(f.clips, s)
			return nil
		},
	}
	return f
}

func (f *fixture) write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func (f *fixture) app() AppModel {
	return NewAppModel(context.Background(), f.opts)
}

func assertContains(t *testing.T, view string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(view, w) {
			t.Errorf("view missing %q:\n%s", w, view)
		}
	}
}

func assertNotContains(t *testing.T, view string, unwanted ...string) {
	t.Helper()
	for _, w := range unwanted {
		if strings.Contains(view, w) {
			t.Errorf("view unexpectedly contains %q:\n%s", w, view)
		}
	}
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

// pollUntil ticks the model until cond holds or the deadline passes.
func pollUntil(t *testing.T, m AppModel, cond func(AppModel) bool) AppModel {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m, _ = send(t, m, tickMsg(time.Now()))
		if cond(m) {
			return m
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
	return m
}
