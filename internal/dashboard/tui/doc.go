// Package tui implements the jeek dashboard as a Bubble Tea program.
//
// # Views
//
// Exactly one view owns the screen at a time:
//
//   - ViewMenu: the main menu, the weather band and the optional help panel
//   - ViewTodo, ViewCyber: two TableView instances over Markdown tables
//   - ViewBill: the bill summary with analyze and export actions
//
// Sub-views always return to the menu; there is no navigation stack.
//
// # Key routing
//
// AppModel.Update never interprets keys itself. Every key press goes
// through routes.route, a lookup table from (view, key) to an action and
// the next view, built from the same key maps the help band displays. The
// update loop then applies the action to the owning view.
//
// # Layout
//
// Every frame is wrapped by RenderApplicationContainer in three bands: a
// header (name, version, current view), the content band, and a footer
// holding one status line and the key help. The bands keep their height
// whatever the content does.
//
// # Background work
//
// Three things happen off the update loop:
//
//   - Weather: MenuModel holds an asyncslot.Slot. A 250ms tick polls it
//     without blocking, so the band moves from "fetching…" to the report on
//     the first tick after the request completes.
//   - Editing: tea.ExecProcess suspends the program while the editor runs;
//     the table reloads when it exits, whatever its exit status.
//   - Bill analysis/export: run as tea.Cmd functions; the summary is
//     rescanned from disk when they report back.
//
// # Caching
//
// Table grids are parsed on first entry and kept for the life of the
// process. Re-entering a view shows the cached grid; "r" re-reads the file.
package tui
