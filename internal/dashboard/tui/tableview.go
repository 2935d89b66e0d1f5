package tui

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeekhub/jeek/internal/editor"
	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/mdtable"
	"github.com/jeekhub/jeek/internal/ui"
)

// Direction is a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

const (
	minColumnWidth = 4
	cellPadding    = 2 // DefaultStyles pads cells by one on each side
	columnMarker   = ">"
)

// TableView renders one Markdown table file and tracks a cursor into it.
// The Todo and Cyber views are two instances differing only in title and
// path.
//
// The grid is parsed on first use and kept until Reload; leaving the view
// does not discard it.
type TableView struct {
	Title string
	Path  string

	grid   *mdtable.Grid
	loaded bool
	row    int
	col    int

	table  table.Model
	width  int
	height int
}

// NewTableView creates a view bound to path. Nothing is read until
// EnsureLoaded or Reload.
func NewTableView(title, path string) *TableView {
	t := table.New(table.WithFocused(true))

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(SubtleColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(TextColor).
		Background(PrimaryColor).
		Bold(false)
	t.SetStyles(s)

	w, h := ContentSize(DefaultWidth, DefaultHeight)
	v := &TableView{
		Title: title,
		Path:  path,
		grid:  &mdtable.Grid{SourcePath: path},
		table: t,
	}
	v.SetSize(w, h)
	return v
}

// Grid returns the current grid.
func (v *TableView) Grid() *mdtable.Grid {
	return v.grid
}

// Loaded reports whether the source has been read at least once.
func (v *TableView) Loaded() bool {
	return v.loaded
}

// Cursor returns the cursor position. ok is false while the source is
// absent or not yet loaded.
func (v *TableView) Cursor() (row, col int, ok bool) {
	if !v.loaded || v.grid.LoadError {
		return 0, 0, false
	}
	return v.row, v.col, true
}

// EnsureLoaded parses the source on first entry only.
func (v *TableView) EnsureLoaded() {
	if !v.loaded {
		_ = v.Reload()
	}
}

// Reload re-reads the source and replaces grid and cursor together. On
// failure the grid is marked absent and emptied. On success the cursor
// resets to (0,0) when recovering from an absent source, otherwise it is
// kept and clamped to the new bounds.
func (v *TableView) Reload() error {
	recovering := !v.loaded || v.grid.LoadError

	grid, err := mdtable.Load(v.Path)
	logging.LogTableLoad(v.Path, grid.RowCount(), err)

	v.grid = grid
	v.loaded = true

	if grid.LoadError || recovering {
		v.row, v.col = 0, 0
	} else {
		v.row = clamp(v.row, 0, grid.RowCount()-1)
		v.col = clamp(v.col, 0, grid.Columns()-1)
	}

	v.syncTable()
	return err
}

// MoveCursor moves the cursor one step, clamping at the edges. It does
// nothing while the source is absent.
func (v *TableView) MoveCursor(d Direction) {
	if !v.loaded || v.grid.LoadError {
		return
	}

	switch d {
	case Up:
		if v.row > 0 {
			v.row--
			v.table.MoveUp(1)
		}
	case Down:
		if v.row < v.grid.RowCount()-1 {
			v.row++
			v.table.MoveDown(1)
		}
	case Left:
		if v.col > 0 {
			v.col--
			v.table.SetColumns(v.columns())
		}
	case Right:
		if v.col < v.grid.Columns()-1 {
			v.col++
			v.table.SetColumns(v.columns())
		}
	}
}

// CurrentCell returns the content under the cursor.
func (v *TableView) CurrentCell() (string, bool) {
	row, col, ok := v.Cursor()
	if !ok || v.grid.RowCount() == 0 {
		return "", false
	}
	return v.grid.Cell(row, col), true
}

// EditCommand returns the editor process for the source file, positioned
// at the cursor's source line. It is nil while the source is absent.
func (v *TableView) EditCommand(editorName string) *exec.Cmd {
	row, _, ok := v.Cursor()
	if !ok {
		return nil
	}
	return editor.Command(editorName, v.Path, v.grid.Line(row))
}

// SetSize fits the view to the content band.
func (v *TableView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.table.SetWidth(width)
	v.table.SetHeight(max(height-3, 3)) // title, spacer, cell detail
	if v.loaded {
		v.table.SetColumns(v.columns())
	}
}

// View renders the content band.
func (v *TableView) View() string {
	var b strings.Builder
	b.WriteString(RenderTitle(v.Title))
	b.WriteString("  ")
	b.WriteString(RenderSubtitle(v.Path))
	b.WriteString("\n\n")

	switch {
	case v.grid.LoadError:
		b.WriteString(RenderError(ui.MsgSourceAbsent))
		b.WriteString("\n\n")
		b.WriteString(RenderSubtitle("按 r 重新载入，或运行 jeek init 创建默认表格"))
	case v.grid.Columns() == 0 || v.grid.RowCount() == 0:
		b.WriteString(WarningStyle.Render(ui.MsgEmptyTable))
	default:
		b.WriteString(v.table.View())
		b.WriteString("\n")
		b.WriteString(v.cellDetail())
	}

	return b.String()
}

func (v *TableView) cellDetail() string {
	cell, _ := v.CurrentCell()
	head := ""
	if v.col < len(v.grid.Header) {
		head = v.grid.Header[v.col]
	}
	detail := fmt.Sprintf("(%d,%d) %s: %s", v.row+1, v.col+1, head, cell)
	return RenderSubtitle(runewidth.Truncate(detail, v.width, "…"))
}

// syncTable pushes the grid and cursor into the bubbles table.
func (v *TableView) syncTable() {
	v.table.SetCursor(0)
	v.table.SetRows(nil)
	v.table.SetColumns(v.columns())

	rows := make([]table.Row, len(v.grid.Rows))
	for i, r := range v.grid.Rows {
		rows[i] = table.Row(r)
	}
	v.table.SetRows(rows)
	if v.row > 0 {
		v.table.MoveDown(v.row)
	}
}

// columns builds the header with the column cursor marked.
func (v *TableView) columns() []table.Column {
	widths := columnWidths(v.grid.Header, v.grid.Rows, v.width)
	cols := make([]table.Column, len(v.grid.Header))
	for i, h := range v.grid.Header {
		title := " " + h
		if i == v.col {
			title = columnMarker + h
		}
		cols[i] = table.Column{Title: title, Width: widths[i]}
	}
	return cols
}

// columnWidths sizes columns to their widest cell (CJK aware), then
// shrinks the widest ones until the table fits avail.
func columnWidths(header []string, rows [][]string, avail int) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h) + runewidth.StringWidth(columnMarker)
	}
	for _, r := range rows {
		for i, c := range r {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c))
			}
		}
	}

	budget := avail - cellPadding*len(widths)
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > budget {
		widest := -1
		for i, w := range widths {
			if w > minColumnWidth && (widest < 0 || w > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		widths[widest]--
		total--
	}
	return widths
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
