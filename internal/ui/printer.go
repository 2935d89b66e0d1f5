package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/jeekhub/jeek/internal/bill"
	"github.com/jeekhub/jeek/internal/mdtable"
	"github.com/jeekhub/jeek/internal/weather"
)

var (
	bold    = color.New(color.Bold)
	muted   = color.New(color.FgHiBlack)
	failure = color.New(color.FgRed, color.Bold)
	success = color.New(color.FgGreen)
)

// Printer writes jeek output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a Printer. If w is nil, color.Output (stdout) is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = color.Output
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the terminal width used to cap column widths.
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected width.
func (p *Printer) SetWidth(w int) {
	p.width = clampWidth(w)
}

// Println writes a line.
func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// PrintGrid prints a parsed table. An absent source prints MsgSourceAbsent
// and the path; a table without rows prints its header and MsgEmptyTable.
func (p *Printer) PrintGrid(title string, g *mdtable.Grid) {
	if title != "" {
		p.Println(bold.Sprint(title))
	}

	if g == nil || g.LoadError {
		path := ""
		if g != nil {
			path = g.SourcePath
		}
		p.Println(failure.Sprint(MsgSourceAbsent), muted.Sprint(path))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	if cols := g.Columns(); cols > 0 {
		tbl.MaxColWidth = uint(max(8, (p.width-len(tbl.Separator)*(cols-1))/cols))
	}

	if len(g.Header) > 0 {
		tbl.AddRow(cellsOf(g.Header, bold)...)
	}
	for _, row := range g.Rows {
		tbl.AddRow(cellsOf(row, nil)...)
	}
	p.Println(tbl)

	if g.RowCount() == 0 {
		p.Println(muted.Sprint(MsgEmptyTable))
	}
}

// PrintBillSummary prints the bill counts or MsgNoBills.
func (p *Printer) PrintBillSummary(dir string, s bill.Summary) {
	p.Println(bold.Sprint("Bills"), muted.Sprint(dir))
	if s.Empty() {
		p.Println(muted.Sprint(MsgNoBills))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("待分析", s.Unanalyzed)
	tbl.AddRow("可导出", s.Exportable)
	tbl.AddRow("已导出", s.Reports)
	tbl.RightAlign(1)
	p.Println(tbl)
}

// PrintWeather prints a one-line weather report.
func (p *Printer) PrintWeather(r *weather.Report) {
	p.Println(r.Format())
}

// PrintSuccess prints a check-marked message.
func (p *Printer) PrintSuccess(msg string) {
	p.Println(success.Sprint("✓"), msg)
}

// PrintSkipped prints a muted note for work that was not needed.
func (p *Printer) PrintSkipped(msg string) {
	p.Println(muted.Sprint("-", " ", msg))
}

// PrintError prints an error line.
func (p *Printer) PrintError(err error) {
	p.Println(failure.Sprint("✗"), err.Error())
}

func cellsOf(cells []string, style *color.Color) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		if style != nil {
			out[i] = style.Sprint(c)
		} else {
			out[i] = c
		}
	}
	return out
}
