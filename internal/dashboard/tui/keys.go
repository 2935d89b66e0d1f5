package tui

import "github.com/charmbracelet/bubbles/key"

// menuKeyMap defines key bindings for the main menu
type menuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Confirm  key.Binding
	HelpUp   key.Binding
	HelpDown key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Confirm},
		{k.HelpUp, k.HelpDown, k.Quit},
	}
}

// tableKeyMap defines key bindings shared by the Todo and Cyber views
type tableKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Edit   key.Binding
	Reload key.Binding
	Copy   key.Binding
	Back   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k tableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Edit, k.Reload, k.Copy, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k tableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Edit, k.Reload, k.Copy, k.Back},
	}
}

// billKeyMap defines key bindings for the bill view
type billKeyMap struct {
	Analyze key.Binding
	Export  key.Binding
	Rescan  key.Binding
	Back    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k billKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Export, k.Rescan, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k billKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyze, k.Export, k.Rescan, k.Back},
	}
}

func newMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		HelpUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll help"),
		),
		HelpDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newTableKeyMap() tableKeyMap {
	return tableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy cell"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back"),
		),
	}
}

func newBillKeyMap() billKeyMap {
	return billKeyMap{
		Analyze: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "analyze"),
		),
		Export: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "export"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "back"),
		),
	}
}
