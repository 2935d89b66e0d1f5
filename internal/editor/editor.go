// Package editor builds the command used to open a table's source file.
package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Fallback is used when neither the config nor the environment name an editor.
const Fallback = "nvim"

// Resolve picks the editor: the configured value, then $VISUAL, then
// $EDITOR, then Fallback.
func Resolve(configured string) string {
	for _, e := range []string{configured, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(e) != "" {
			return strings.TrimSpace(e)
		}
	}
	return Fallback
}

// lineAware lists editors that accept "+N" to open at line N.
var lineAware = map[string]bool{
	"vi":    true,
	"vim":   true,
	"nvim":  true,
	"gvim":  true,
	"view":  true,
	"nano":  true,
	"emacs": true,
	"micro": true,
	"kak":   true,
}

// Args returns the argv for opening path in editor. The editor string may
// carry its own flags ("code -w"). When line > 0 and the editor understands
// it, "+line" is inserted before the path.
func Args(editor, path string, line int) []string {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		fields = []string{Fallback}
	}

	args := append([]string{}, fields...)
	if line > 0 && lineAware[filepath.Base(fields[0])] {
		args = append(args, "+"+strconv.Itoa(line))
	}
	return append(args, path)
}

// Command creates the *exec.Cmd for opening path. The caller owns the
// terminal handoff (the dashboard uses tea.ExecProcess).
func Command(editor, path string, line int) *exec.Cmd {
	args := Args(editor, path, line)
	return exec.Command(args[0], args[1:]...)
}
