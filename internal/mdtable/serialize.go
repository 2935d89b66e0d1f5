package mdtable

import (
	"strings"
)

// Serialize writes the grid back as a Markdown pipe table.
// Parse(Serialize(g)) yields the same header and cells as g.
func Serialize(g *Grid) string {
	if g == nil || (len(g.Header) == 0 && len(g.Rows) == 0) {
		return ""
	}

	width := g.Columns()
	header := g.Header
	if len(header) == 0 {
		header = make([]string, width)
	}

	var b strings.Builder
	writeRow(&b, header)

	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep)

	for _, row := range g.Rows {
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(strings.ReplaceAll(c, "|", `\|`))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
