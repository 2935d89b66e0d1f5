// Package ui prints jeek data for the non-interactive subcommands.
//
// The dashboard renders through Bubble Tea; the "run once and exit"
// commands (jeek show, jeek weather, jeek init) go through a Printer
// instead, which writes plain aligned text via uitable and colours it
// with fatih/color. Colour is dropped automatically when the output is
// not a terminal.
//
// The status texts shared with the dashboard (MsgSourceAbsent,
// MsgEmptyTable, MsgNoBills) live here so both surfaces say the same
// thing.
package ui
