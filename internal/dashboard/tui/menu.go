package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeekhub/jeek/internal/asyncslot"
	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/weather"
)

type itemKind int

const (
	itemView itemKind = iota
	itemWeather
	itemHelp
)

type menuItem struct {
	Label  string
	Desc   string
	Kind   itemKind
	Target ViewKind
}

var menuItems = []menuItem{
	{Label: "TODO", Desc: "待办事项", Kind: itemView, Target: ViewTodo},
	{Label: "CYBER RESOURCE", Desc: "网络资源", Kind: itemView, Target: ViewCyber},
	{Label: "BILL", Desc: "账单分析与导出", Kind: itemView, Target: ViewBill},
	{Label: "WEATHER", Desc: "获取天气", Kind: itemWeather, Target: ViewMenu},
	{Label: "HELP", Desc: "帮助", Kind: itemHelp, Target: ViewMenu},
}

const menuColumnWidth = 32

// WeatherSlot is the process-lifetime container for the weather report.
type WeatherSlot = asyncslot.Slot[*weather.Report]

// MenuModel is the main menu: item list, weather band and help panel.
type MenuModel struct {
	items    []menuItem
	selected int

	weather *WeatherSlot
	fetch   asyncslot.FetchFunc[*weather.Report]
	spinner spinner.Model

	showHelp    bool
	helpText    string
	help        viewport.Model
	helpWrapped int // width the help was last rendered for

	width  int
	height int
}

// NewMenuModel creates the main menu. fetch may be nil, in which case the
// weather item only reports that no service is configured.
func NewMenuModel(fetch asyncslot.FetchFunc[*weather.Report], helpText string) *MenuModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	w, h := ContentSize(DefaultWidth, DefaultHeight)
	m := &MenuModel{
		items:    menuItems,
		weather:  &WeatherSlot{},
		fetch:    fetch,
		spinner:  s,
		helpText: helpText,
		help:     viewport.New(w-menuColumnWidth, h-2),
	}
	m.SetSize(w, h)
	return m
}

// SetSize resizes the menu to the content band.
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	m.help.Width = max(width-menuColumnWidth-1, 10)
	m.help.Height = max(height-2, 1) // weather band + spacer

	if m.helpWrapped != m.help.Width {
		m.help.SetContent(renderMarkdown(m.helpText, m.help.Width))
		m.helpWrapped = m.help.Width
	}
}

// MoveUp selects the previous item, stopping at the first.
func (m *MenuModel) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown selects the next item, stopping at the last.
func (m *MenuModel) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
}

// Selected returns the highlighted item.
func (m *MenuModel) Selected() menuItem {
	return m.items[m.selected]
}

// ToggleHelp shows or hides the help panel.
func (m *MenuModel) ToggleHelp() {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.help.GotoTop()
	}
}

// ScrollHelp moves the help panel by a page when it is visible.
func (m *MenuModel) ScrollHelp(down bool) {
	if !m.showHelp {
		return
	}
	if down {
		m.help.SetYOffset(m.help.YOffset + m.help.Height)
	} else {
		m.help.SetYOffset(m.help.YOffset - m.help.Height)
	}
}

// TriggerWeather starts a weather fetch unless one is in flight. The
// returned command drives the spinner while the fetch is pending.
func (m *MenuModel) TriggerWeather(ctx context.Context) (tea.Cmd, string) {
	if m.fetch == nil {
		return nil, "weather service not configured"
	}
	if !m.weather.Trigger(ctx, m.fetch) {
		logging.Debug("Weather fetch already pending")
		return nil, ""
	}
	logging.Debug("Weather fetch started", zap.Int("request", m.weather.Requests()))
	return m.spinner.Tick, ""
}

// PollWeather observes the slot without blocking.
func (m *MenuModel) PollWeather() asyncslot.State {
	before := m.weather.State()
	after := m.weather.Poll()
	if before == asyncslot.Pending && after == asyncslot.Failed {
		logging.Warn("Weather fetch failed", zap.Error(m.weather.Err()))
	}
	return after
}

// Weather exposes the slot for inspection.
func (m *MenuModel) Weather() *WeatherSlot {
	return m.weather
}

// UpdateSpinner advances the spinner while a fetch is pending. Returning nil
// once the fetch settles stops the tick chain.
func (m *MenuModel) UpdateSpinner(msg spinner.TickMsg) tea.Cmd {
	if m.weather.State() != asyncslot.Pending {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// View renders the menu content band.
func (m *MenuModel) View() string {
	var list strings.Builder
	list.WriteString(RenderTitle("MAIN MENU"))
	list.WriteString("\n\n")
	for i, item := range m.items {
		list.WriteString(RenderMenuItem(item.Label, i == m.selected))
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(RenderSubtitle("  " + m.Selected().Desc))

	body := lipgloss.NewStyle().
		Width(menuColumnWidth).
		Height(max(m.height-2, 1)).
		Render(list.String())

	if m.showHelp {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.help.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.weatherBand())
}

// weatherBand renders the single weather line for the current slot state.
func (m *MenuModel) weatherBand() string {
	label := TitleStyle.Render("Weather: ")

	switch m.weather.State() {
	case asyncslot.Pending:
		return label + m.spinner.View() + " fetching…"
	case asyncslot.Ready:
		if r, ok := m.weather.Value(); ok {
			return label + r.Format()
		}
	case asyncslot.Failed:
		return label + RenderError(describeFetchError(m.weather.Err()))
	}
	return label + RenderSubtitle("not fetched")
}

func describeFetchError(err error) string {
	var fe *weather.FetchError
	if errors.As(err, &fe) {
		return fe.Short()
	}
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// renderMarkdown renders help text for the terminal, falling back to the
// raw text if glamour cannot.
func renderMarkdown(text string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Debug("Help renderer unavailable", zap.Error(err))
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		logging.Debug("Help render failed", zap.Error(err))
		return text
	}
	return strings.TrimSpace(out)
}

// HelpText builds the Markdown help shown from the menu.
func HelpText(todoPath, cyberPath, billDir string) string {
	return fmt.Sprintf(`# Jeek!

## 主菜单
- **j / k** 上下选择，**enter** 确认，**q** 退出
- **WEATHER** 获取一次天气，再次选择刷新

## TODO / CYBER RESOURCE
- **j / k / h / l** 移动光标
- **e** 用编辑器打开文件，退出编辑器后自动重新载入
- **r** 重新载入，**y** 复制当前单元格
- **esc / q** 返回主菜单

## BILL
- **a** 分析新账单，**o** 导出报告，**r** 重新统计
- **esc / q** 返回主菜单

## 文件
| 视图 | 路径 |
|------|------|
| TODO | %s |
| CYBER | %s |
| BILL | %s |
`, todoPath, cyberPath, billDir)
}
