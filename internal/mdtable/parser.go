package mdtable

import (
	"strings"
)

// Parse extracts the first pipe table found in text.
//
// A table is a header row, a separator row made of dashes and colons, and
// any number of data rows. The first line that is not a pipe row ends the
// table. Separator-shaped lines inside the data region are dropped. Text
// without a table yields an empty grid; Parse never fails.
func Parse(text string) *Grid {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	grid := &Grid{}

	start := -1
	for i := 0; i+1 < len(lines); i++ {
		header, ok := splitRow(lines[i])
		if !ok {
			continue
		}
		sep, ok := splitRow(lines[i+1])
		if !ok || !isSeparator(sep) {
			continue
		}
		grid.Header = header
		start = i + 2
		break
	}
	if start < 0 {
		return grid
	}

	width := len(grid.Header)
	for i := start; i < len(lines); i++ {
		cells, ok := splitRow(lines[i])
		if !ok {
			break
		}
		if isSeparator(cells) {
			continue
		}
		grid.Rows = append(grid.Rows, normalize(cells, width))
		grid.Lines = append(grid.Lines, i+1)
	}

	return grid
}

// splitRow splits a pipe row into trimmed cells. `\|` is a literal pipe.
// The leading and trailing pipes are optional, but a row needs at least
// one unescaped pipe.
func splitRow(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	var (
		cells      []string
		cell       strings.Builder
		pipes      int
		endsOnPipe bool
	)

	runes := []rune(trimmed)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes) && runes[i+1] == '|':
			cell.WriteRune('|')
			i++
			endsOnPipe = false
		case r == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
			pipes++
			endsOnPipe = true
		default:
			cell.WriteRune(r)
			endsOnPipe = false
		}
	}
	if pipes == 0 {
		return nil, false
	}
	if !endsOnPipe {
		cells = append(cells, strings.TrimSpace(cell.String()))
	}
	if runes[0] == '|' {
		cells = cells[1:]
	}
	if len(cells) == 0 {
		return nil, false
	}

	return cells, true
}

// isSeparator reports whether every cell is a delimiter cell such as
// "---", ":--", "--:" or ":-:".
func isSeparator(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		body := strings.TrimSuffix(strings.TrimPrefix(c, ":"), ":")
		if body == "" || strings.Trim(body, "-") != "" {
			return false
		}
	}
	return true
}

// normalize pads or truncates a row to width cells.
func normalize(cells []string, width int) []string {
	row := make([]string, width)
	copy(row, cells)
	return row
}
