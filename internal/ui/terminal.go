package ui

import (
	"os"

	"golang.org/x/term"
)

// Layout constants
const (
	MinTerminalWidth = 40
	MaxContentWidth  = 160
	DefaultHeight    = 24
)

// Status texts shared by the CLI and the dashboard.
const (
	MsgSourceAbsent = "文件不存在"
	MsgEmptyTable   = "表格为空"
	MsgNoBills      = "暂无账单"
)

// GetTerminalSize returns the stdout terminal size, clamped to the
// supported width range. Non-terminals get the minimum width.
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, DefaultHeight
	}
	return clampWidth(width), height
}

// GetTerminalWidth returns only the width part of GetTerminalSize.
func GetTerminalWidth() int {
	w, _ := GetTerminalSize()
	return w
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func clampWidth(w int) int {
	if w < MinTerminalWidth {
		return MinTerminalWidth
	}
	if w > MaxContentWidth {
		return MaxContentWidth
	}
	return w
}
