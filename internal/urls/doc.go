// Package urls centralizes external addresses used by jeek.
//
// Keeping them here avoids scattering literal URLs across the TUI, the
// weather client defaults and the CLI help text.
package urls
