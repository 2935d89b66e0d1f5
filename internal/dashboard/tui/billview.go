package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeekhub/jeek/internal/bill"
	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/ui"
)

const (
	opAnalyze = "analyze"
	opExport  = "export"
)

// billDoneMsg reports a finished analyzer or exporter run.
type billDoneMsg struct {
	op   string
	dest string
	err  error
}

// BillView shows the bill summary and launches analysis and export.
type BillView struct {
	Dir string

	runner  *bill.Runner
	summary bill.Summary
	scanErr error
	busy    string // operation in flight, "" when idle

	width  int
	height int
}

// NewBillView creates the view. runner may be nil when no commands are
// configured.
func NewBillView(dir string, runner *bill.Runner) *BillView {
	return &BillView{Dir: dir, runner: runner}
}

// Summary returns the last computed summary.
func (b *BillView) Summary() bill.Summary {
	return b.summary
}

// Busy reports the operation in flight.
func (b *BillView) Busy() string {
	return b.busy
}

// Rescan recomputes the summary from disk.
func (b *BillView) Rescan() {
	b.summary, b.scanErr = bill.Scan(b.Dir)
	if b.scanErr != nil {
		logging.Warn("Bill scan failed", zap.String("dir", b.Dir), zap.Error(b.scanErr))
		b.summary = bill.Summary{}
		return
	}
	logging.Debug("Bill scan",
		zap.String("dir", b.Dir),
		zap.Int("unanalyzed", b.summary.Unanalyzed),
		zap.Int("exportable", b.summary.Exportable),
	)
}

// Analyze starts the analyzer when there is something to analyze. The
// second return value is a status line for the footer.
func (b *BillView) Analyze(ctx context.Context) (tea.Cmd, string) {
	if b.busy != "" {
		return nil, b.busy + " 进行中…"
	}
	if b.summary.Unanalyzed == 0 {
		return nil, "没有待分析的账单"
	}
	if b.runner == nil || !b.runner.Analyzer.Configured() {
		return nil, "未配置 analyzer.command"
	}

	b.busy = opAnalyze
	runner := b.runner
	return func() tea.Msg {
		_, err := runner.Analyze(ctx)
		return billDoneMsg{op: opAnalyze, err: err}
	}, "正在分析…"
}

// Export starts the exporter when analyzed bills exist.
func (b *BillView) Export(ctx context.Context) (tea.Cmd, string) {
	if b.busy != "" {
		return nil, b.busy + " 进行中…"
	}
	if b.summary.Exportable == 0 {
		return nil, "没有可导出的账单"
	}
	if b.runner == nil || !b.runner.Exporter.Configured() {
		return nil, "未配置 exporter.command"
	}

	b.busy = opExport
	runner := b.runner
	return func() tea.Msg {
		dest, err := runner.Export(ctx)
		return billDoneMsg{op: opExport, dest: dest, err: err}
	}, "正在导出…"
}

// Finish applies a billDoneMsg and returns the status line.
func (b *BillView) Finish(msg billDoneMsg) string {
	b.busy = ""
	b.Rescan()

	if msg.err != nil {
		if errors.Is(msg.err, bill.ErrNotConfigured) {
			return "未配置 " + msg.op + " 命令"
		}
		return msg.op + " failed: " + msg.err.Error()
	}
	if msg.op == opExport {
		return "已导出到 " + msg.dest
	}
	return "分析完成"
}

// SetSize fits the view to the content band.
func (b *BillView) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// View renders the content band.
func (b *BillView) View() string {
	var s strings.Builder
	s.WriteString(RenderTitle("BILL"))
	s.WriteString("  ")
	s.WriteString(RenderSubtitle(b.Dir))
	s.WriteString("\n\n")

	switch {
	case b.scanErr != nil:
		s.WriteString(RenderError(b.scanErr.Error()))
	case b.summary.Empty():
		s.WriteString(WarningStyle.Render(ui.MsgNoBills))
	default:
		fmt.Fprintf(&s, "%s  待分析账单\n", CountStyle.Render(fmt.Sprint(b.summary.Unanalyzed)))
		fmt.Fprintf(&s, "%s  可导出账单\n", CountStyle.Render(fmt.Sprint(b.summary.Exportable)))
		fmt.Fprintf(&s, "%s  已导出报告", CountStyle.Render(fmt.Sprint(b.summary.Reports)))
	}

	if b.busy != "" {
		s.WriteString("\n\n")
		s.WriteString(WarningStyle.Render("⋯ " + b.busy))
	}

	return s.String()
}
