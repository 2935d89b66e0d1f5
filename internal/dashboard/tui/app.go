package tui

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeekhub/jeek/internal/asyncslot"
	"github.com/jeekhub/jeek/internal/bill"
	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/weather"
)

// PollInterval is how often the render loop polls the weather slot.
const PollInterval = 250 * time.Millisecond

type tickMsg time.Time

// editorFinishedMsg is sent when the editor process exits or fails to start.
type editorFinishedMsg struct {
	view     ViewKind
	args     []string
	duration time.Duration
	err      error
}

// Options configures the dashboard.
type Options struct {
	TodoPath  string
	CyberPath string
	BillDir   string

	// Runner executes the bill analyzer and exporter. Nil disables both.
	Runner *bill.Runner

	// Editor is the resolved editor command line.
	Editor string

	// WeatherFetch performs one weather request. Nil disables weather.
	WeatherFetch asyncslot.FetchFunc[*weather.Report]

	// Clipboard receives copied cells. Defaults to the system clipboard.
	Clipboard func(string) error
}

// AppModel is the top-level model: it owns every view and routes keys to
// the active one.
type AppModel struct {
	ctx context.Context

	// Current view state
	Current ViewKind

	// View models, alive for the whole process
	Menu  *MenuModel
	Todo  *TableView
	Cyber *TableView
	Bill  *BillView

	// Status is the transient message in the help/status band.
	Status string

	// UI state
	Width  int
	Height int

	editor    string
	clipboard func(string) error

	// Help
	Help      help.Model
	menuKeys  menuKeyMap
	tableKeys tableKeyMap
	billKeys  billKeyMap
	routes    routes
}

// NewAppModel creates the dashboard starting at the main menu.
func NewAppModel(ctx context.Context, opts Options) AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	menuKeys := newMenuKeyMap()
	tableKeys := newTableKeyMap()
	billKeys := newBillKeyMap()

	h := help.New()
	h.Width = DefaultWidth - 6

	return AppModel{
		ctx:       ctx,
		Current:   ViewMenu,
		Menu:      NewMenuModel(opts.WeatherFetch, HelpText(opts.TodoPath, opts.CyberPath, opts.BillDir)),
		Todo:      NewTableView("TODO", opts.TodoPath),
		Cyber:     NewTableView("CYBER RESOURCE", opts.CyberPath),
		Bill:      NewBillView(opts.BillDir, opts.Runner),
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		editor:    opts.Editor,
		clipboard: opts.Clipboard,
		Help:      h,
		menuKeys:  menuKeys,
		tableKeys: tableKeys,
		billKeys:  billKeys,
		routes:    buildRoutes(menuKeys, tableKeys, billKeys),
	}
}

func tick() tea.Cmd {
	return tea.Tick(PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the poll tick
func (m AppModel) Init() tea.Cmd {
	return tick()
}

// Update handles all messages and routes them to the active view
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 6

		// Propagate to all views
		w, h := ContentSize(msg.Width, msg.Height)
		m.Menu.SetSize(w, h)
		m.Todo.SetSize(w, h)
		m.Cyber.SetSize(w, h)
		m.Bill.SetSize(w, h)
		return m, nil

	case tickMsg:
		m.Menu.PollWeather()
		return m, tick()

	case spinner.TickMsg:
		return m, m.Menu.UpdateSpinner(msg)

	case editorFinishedMsg:
		return m.finishEdit(msg), nil

	case billDoneMsg:
		m.Status = m.Bill.Finish(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey applies the routed action for a key press
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act, next := m.routes.route(m.Current, msg.String())

	switch act {
	case actQuit:
		return m, tea.Quit

	case actBack:
		return m.transitionTo(next), nil

	case actSelectUp:
		m.Menu.MoveUp()
	case actSelectDown:
		m.Menu.MoveDown()
	case actHelpUp:
		m.Menu.ScrollHelp(false)
	case actHelpDown:
		m.Menu.ScrollHelp(true)

	case actConfirm:
		return m.confirm()

	case actCursorUp, actCursorDown, actCursorLeft, actCursorRight:
		m.activeTable().MoveCursor(directionOf(act))

	case actEdit:
		return m.edit()

	case actReload:
		t := m.activeTable()
		if err := t.Reload(); err == nil {
			m.Status = "已重新载入"
		} else {
			m.Status = ""
		}

	case actCopy:
		m.copyCell()

	case actAnalyze:
		var cmd tea.Cmd
		cmd, m.Status = m.Bill.Analyze(m.ctx)
		return m, cmd

	case actExport:
		var cmd tea.Cmd
		cmd, m.Status = m.Bill.Export(m.ctx)
		return m, cmd

	case actRescan:
		m.Bill.Rescan()
		m.Status = "已重新统计"
	}

	return m, nil
}

// confirm acts on the selected menu item
func (m AppModel) confirm() (tea.Model, tea.Cmd) {
	item := m.Menu.Selected()

	switch item.Kind {
	case itemView:
		return m.transitionTo(item.Target), nil
	case itemWeather:
		var cmd tea.Cmd
		cmd, m.Status = m.Menu.TriggerWeather(m.ctx)
		return m, cmd
	case itemHelp:
		m.Menu.ToggleHelp()
	}

	return m, nil
}

// transitionTo switches the active view. Entering a table view parses its
// file the first time only; entering the bill view always rescans.
func (m AppModel) transitionTo(view ViewKind) AppModel {
	if view == m.Current {
		return m
	}
	logging.LogViewTransition(m.Current.String(), view.String())

	m.Current = view
	m.Status = ""

	switch view {
	case ViewTodo:
		m.Todo.EnsureLoaded()
	case ViewCyber:
		m.Cyber.EnsureLoaded()
	case ViewBill:
		m.Bill.Rescan()
	}

	return m
}

// activeTable returns the table of the current view. Only called for
// actions routed from a table view.
func (m AppModel) activeTable() *TableView {
	if m.Current == ViewCyber {
		return m.Cyber
	}
	return m.Todo
}

// edit hands the terminal to the editor; the table reloads when it exits.
func (m AppModel) edit() (tea.Model, tea.Cmd) {
	view := m.Current
	cmd := m.activeTable().EditCommand(m.editor)
	if cmd == nil {
		return m, nil
	}

	args := cmd.Args
	start := time.Now()
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{view: view, args: args, duration: time.Since(start), err: err}
	})
}

// finishEdit reloads the edited table. The editor's exit status is only
// logged; a launch failure is reported in the status band.
func (m AppModel) finishEdit(msg editorFinishedMsg) AppModel {
	exitCode := 0
	var exitErr *exec.ExitError
	launchFailed := false
	if msg.err != nil {
		if errors.As(msg.err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
			launchFailed = true
		}
	}
	if len(msg.args) > 0 {
		logging.LogExternalCommand(msg.args[0], msg.args[1:], exitCode, msg.duration, msg.err)
	}

	t := m.Todo
	if msg.view == ViewCyber {
		t = m.Cyber
	}
	_ = t.Reload()

	if launchFailed {
		m.Status = "编辑器启动失败: " + msg.err.Error()
	} else {
		m.Status = ""
	}
	return m
}

// copyCell puts the current cell on the clipboard
func (m *AppModel) copyCell() {
	text, ok := m.activeTable().CurrentCell()
	if !ok {
		return
	}
	if err := m.clipboard(text); err != nil {
		m.Status = "复制失败: " + err.Error()
		return
	}
	m.Status = "已复制"
}

func directionOf(act action) Direction {
	switch act {
	case actCursorUp:
		return Up
	case actCursorDown:
		return Down
	case actCursorLeft:
		return Left
	default:
		return Right
	}
}

// View renders the active view inside the three-band container
func (m AppModel) View() string {
	var title, content, helpText string

	switch m.Current {
	case ViewTodo:
		title, content, helpText = m.Todo.Title, m.Todo.View(), m.Help.View(m.tableKeys)
	case ViewCyber:
		title, content, helpText = m.Cyber.Title, m.Cyber.View(), m.Help.View(m.tableKeys)
	case ViewBill:
		title, content, helpText = "BILL", m.Bill.View(), m.Help.View(m.billKeys)
	default:
		content, helpText = m.Menu.View(), m.Help.View(m.menuKeys)
	}

	return RenderApplicationContainer(title, content, m.Status, helpText, m.Width, m.Height)
}
