package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeekhub/jeek/internal/urls"
	"github.com/jeekhub/jeek/internal/version"
)

// Application branding constants
const (
	AppName = "Jeek!"
	Motto   = "把日子过成一张表"
)

// Layout constants
const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinContentHeight is the smallest content band we lay out for.
	MinContentHeight = 5

	// Lines taken by the outer border, header band and help/status band.
	outerBorderLines = 2
	headerBandLines  = 2 // text + rule
	footerBandLines  = 3 // rule + status + key help
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	BorderColor    = PrimaryColor
	HighlightColor = SecondaryColor
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	MenuItemStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(TextColor)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(HighlightColor).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	StatusStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Bill counters
	CountStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderMenuItem renders a menu item with selection indicator
func RenderMenuItem(text string, selected bool) string {
	if selected {
		return SelectedMenuItemStyle.Render("→ " + text)
	}
	return MenuItemStyle.Render(text)
}

// RenderError renders an inline error
func RenderError(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

// BuildHeaderContent creates the header band: name, version, current view
// and motto. The motto is dropped when the line would not fit width.
func BuildHeaderContent(viewTitle string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + version.Short())

	crumb := ""
	if viewTitle != "" {
		crumb = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Render(" › " + viewTitle)
	}

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render("  " + Motto + "  " + urls.Project)

	header := lipgloss.JoinHorizontal(lipgloss.Top, left, crumb, right)
	if lipgloss.Width(header) > width {
		header = lipgloss.JoinHorizontal(lipgloss.Top, left, crumb)
	}
	return header
}

// BuildFooterContent creates the help/status band. The status line is
// always present, and cut to width, so the band height never changes.
func BuildFooterContent(status, helpText string, width int) string {
	statusLine := StatusStyle.Render(runewidth.Truncate(status, width, "…"))
	helpLine := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
	return lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine)
}

// ContentSize returns the usable width and height of the content band for
// a terminal of the given size.
func ContentSize(terminalWidth, terminalHeight int) (int, int) {
	w := terminalWidth - 4
	if w < 1 {
		w = 1
	}
	h := terminalHeight - outerBorderLines - headerBandLines - footerBandLines
	if h < MinContentHeight {
		h = MinContentHeight
	}
	return w, h
}

// RenderApplicationContainer wraps every view in the fixed three-band
// layout: header band, content band, help/status band, inside an outer
// border filling the terminal.
//
// The content is clipped to the content band so a tall view can never push
// the footer off screen.
func RenderApplicationContainer(viewTitle, content, status, helpText string, terminalWidth, terminalHeight int) string {
	contentWidth, contentHeight := ContentSize(terminalWidth, terminalHeight)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(BorderColor).
		Width(contentWidth).
		MaxHeight(headerBandLines)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderTop(true).
		BorderForeground(BorderColor).
		Width(contentWidth).
		MaxHeight(footerBandLines)

	contentStyle := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		MaxHeight(contentHeight)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent(viewTitle, contentWidth)),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(status, helpText, contentWidth)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}
