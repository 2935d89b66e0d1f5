package tui

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jeekhub/jeek/internal/editor"
)

func newLoadedView(t *testing.T, content string) (*TableView, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TODO.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	v := NewTableView("TODO", path)
	v.EnsureLoaded()
	return v, path
}

func TestTableViewLazyLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TODO.md")
	v := NewTableView("TODO", path)
	if v.Loaded() {
		t.Fatal("view should not read its file before first use")
	}
	v.EnsureLoaded()
	if !v.Loaded() || !v.Grid().LoadError {
		t.Errorf("missing file: Loaded=%v LoadError=%v, want true/true", v.Loaded(), v.Grid().LoadError)
	}
}

func TestTableViewReloadPreservesCursor(t *testing.T) {
	v, path := newLoadedView(t, threeByTwo)
	v.MoveCursor(Down)
	v.MoveCursor(Right)

	if err := v.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if row, col, _ := v.Cursor(); row != 1 || col != 1 {
		t.Errorf("Cursor() after reload = (%d,%d), want (1,1)", row, col)
	}

	if err := os.WriteFile(path, []byte("| a |\n|---|\n| 1 |\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_ = v.Reload()
	if row, col, _ := v.Cursor(); row != 0 || col != 0 {
		t.Errorf("Cursor() after shrink = (%d,%d), want clamped (0,0)", row, col)
	}
}

func TestTableViewReloadAfterRemoval(t *testing.T) {
	v, path := newLoadedView(t, threeByTwo)
	v.MoveCursor(Down)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := v.Reload(); err == nil {
		t.Fatal("Reload() of removed file should fail")
	}
	if !v.Grid().LoadError || v.Grid().RowCount() != 0 {
		t.Errorf("grid after removal: LoadError=%v rows=%d", v.Grid().LoadError, v.Grid().RowCount())
	}
	if _, _, ok := v.Cursor(); ok {
		t.Error("cursor should be undefined after load error")
	}

	if err := os.WriteFile(path, []byte(threeByTwo), 0o644); err != nil {
		t.Fatal(err)
	}
	_ = v.Reload()
	if row, col, ok := v.Cursor(); !ok || row != 0 || col != 0 {
		t.Errorf("Cursor() after recovery = (%d,%d,%v), want (0,0,true)", row, col, ok)
	}
}

func TestTableViewEditCommand(t *testing.T) {
	v, path := newLoadedView(t, threeByTwo)
	v.MoveCursor(Down)
	v.MoveCursor(Down)

	cmd := v.EditCommand("nvim")
	want := editor.Args("nvim", path, 5)
	if cmd == nil || !reflect.DeepEqual(cmd.Args, want) {
		t.Errorf("EditCommand() args = %v, want %v", cmd, want)
	}

	missing := NewTableView("CYBER", filepath.Join(t.TempDir(), "none.md"))
	missing.EnsureLoaded()
	if missing.EditCommand("nvim") != nil {
		t.Error("EditCommand() should be nil for an absent source")
	}
}

func TestColumnWidths(t *testing.T) {
	header := []string{"任务", "状态"}
	rows := [][]string{{"完成项目", "未开始"}}

	got := columnWidths(header, rows, 80)
	want := []int{8, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("columnWidths() = %v, want %v", got, want)
	}

	narrow := columnWidths([]string{"a", "b"}, [][]string{{"0123456789abcdef", "x"}}, 14)
	if total := narrow[0] + narrow[1] + cellPadding*2; total > 14 {
		t.Errorf("columnWidths() = %v exceeds budget", narrow)
	}
	for _, w := range narrow {
		if w < 1 {
			t.Errorf("column width %d too small", w)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want int }{
		{5, 0, 2, 2},
		{-1, 0, 2, 0},
		{1, 0, 2, 1},
		{3, 0, -1, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%d,%d,%d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
