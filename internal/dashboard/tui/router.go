package tui

import "github.com/charmbracelet/bubbles/key"

// ViewKind identifies which view owns the screen.
type ViewKind int

const (
	ViewMenu ViewKind = iota
	ViewTodo
	ViewCyber
	ViewBill
)

// String returns the view name used in logs and the header band
func (v ViewKind) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTodo:
		return "todo"
	case ViewCyber:
		return "cyber"
	case ViewBill:
		return "bill"
	default:
		return "unknown"
	}
}

// action is what the update loop does in response to a key.
type action int

const (
	actNone action = iota
	actQuit
	actBack
	actSelectUp
	actSelectDown
	actConfirm
	actHelpUp
	actHelpDown
	actCursorUp
	actCursorDown
	actCursorLeft
	actCursorRight
	actEdit
	actReload
	actCopy
	actAnalyze
	actExport
	actRescan
)

// routes maps (view, key) to an action. It is built once from the key maps
// so the help band and the dispatch can never disagree.
type routes map[ViewKind]map[string]action

func buildRoutes(menu menuKeyMap, table tableKeyMap, bill billKeyMap) routes {
	r := routes{
		ViewMenu:  {},
		ViewTodo:  {},
		ViewCyber: {},
		ViewBill:  {},
	}

	bind := func(view ViewKind, b key.Binding, a action) {
		for _, k := range b.Keys() {
			r[view][k] = a
		}
	}

	bind(ViewMenu, menu.Up, actSelectUp)
	bind(ViewMenu, menu.Down, actSelectDown)
	bind(ViewMenu, menu.Confirm, actConfirm)
	bind(ViewMenu, menu.HelpUp, actHelpUp)
	bind(ViewMenu, menu.HelpDown, actHelpDown)
	bind(ViewMenu, menu.Quit, actQuit)

	for _, v := range []ViewKind{ViewTodo, ViewCyber} {
		bind(v, table.Up, actCursorUp)
		bind(v, table.Down, actCursorDown)
		bind(v, table.Left, actCursorLeft)
		bind(v, table.Right, actCursorRight)
		bind(v, table.Edit, actEdit)
		bind(v, table.Reload, actReload)
		bind(v, table.Copy, actCopy)
		bind(v, table.Back, actBack)
	}

	bind(ViewBill, bill.Analyze, actAnalyze)
	bind(ViewBill, bill.Export, actExport)
	bind(ViewBill, bill.Rescan, actRescan)
	bind(ViewBill, bill.Back, actBack)

	return r
}

// route returns the action for a key in a view and the view that owns the
// screen afterwards. Confirm in the menu resolves its target through the
// selected menu item, so next is ViewMenu there.
func (r routes) route(view ViewKind, k string) (action, ViewKind) {
	if k == "ctrl+c" {
		return actQuit, view
	}

	a, ok := r[view][k]
	if !ok {
		return actNone, view
	}
	if a == actBack {
		return a, ViewMenu
	}
	return a, view
}
