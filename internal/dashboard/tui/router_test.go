package tui

import "testing"

func TestRoute(t *testing.T) {
	r := buildRoutes(newMenuKeyMap(), newTableKeyMap(), newBillKeyMap())

	tests := []struct {
		view     ViewKind
		key      string
		wantAct  action
		wantNext ViewKind
	}{
		{ViewMenu, "j", actSelectDown, ViewMenu},
		{ViewMenu, "up", actSelectUp, ViewMenu},
		{ViewMenu, "enter", actConfirm, ViewMenu},
		{ViewMenu, "q", actQuit, ViewMenu},
		{ViewMenu, "esc", actNone, ViewMenu},
		{ViewMenu, "e", actNone, ViewMenu},

		{ViewTodo, "j", actCursorDown, ViewTodo},
		{ViewTodo, "k", actCursorUp, ViewTodo},
		{ViewTodo, "h", actCursorLeft, ViewTodo},
		{ViewTodo, "right", actCursorRight, ViewTodo},
		{ViewTodo, "e", actEdit, ViewTodo},
		{ViewTodo, "r", actReload, ViewTodo},
		{ViewTodo, "y", actCopy, ViewTodo},
		{ViewTodo, "a", actNone, ViewTodo},
		{ViewCyber, "e", actEdit, ViewCyber},

		{ViewBill, "a", actAnalyze, ViewBill},
		{ViewBill, "o", actExport, ViewBill},
		{ViewBill, "r", actRescan, ViewBill},
		{ViewBill, "j", actNone, ViewBill},
	}

	for _, tt := range tests {
		t.Run(tt.view.String()+"/"+tt.key, func(t *testing.T) {
			act, next := r.route(tt.view, tt.key)
			if act != tt.wantAct || next != tt.wantNext {
				t.Errorf("route(%v, %q) = (%v, %v), want (%v, %v)",
					tt.view, tt.key, act, next, tt.wantAct, tt.wantNext)
			}
		})
	}
}

func TestRouteBackAndQuitFromEveryView(t *testing.T) {
	r := buildRoutes(newMenuKeyMap(), newTableKeyMap(), newBillKeyMap())

	for _, v := range []ViewKind{ViewTodo, ViewCyber, ViewBill} {
		for _, k := range []string{"esc", "q"} {
			if act, next := r.route(v, k); act != actBack || next != ViewMenu {
				t.Errorf("route(%v, %q) = (%v, %v), want back to menu", v, k, act, next)
			}
		}
	}

	for _, v := range []ViewKind{ViewMenu, ViewTodo, ViewCyber, ViewBill} {
		if act, _ := r.route(v, "ctrl+c"); act != actQuit {
			t.Errorf("route(%v, ctrl+c) = %v, want quit", v, act)
		}
	}
}
