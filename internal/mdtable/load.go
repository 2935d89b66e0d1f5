package mdtable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSourceAbsent is returned by Load when the table file does not exist.
var ErrSourceAbsent = errors.New("table source not found")

// Load reads and parses the table at path.
//
// On failure the returned grid is still usable for rendering: LoadError is
// set, Rows is empty and SourcePath is filled in. The error wraps
// ErrSourceAbsent when the file is missing.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		grid := &Grid{SourcePath: path, LoadError: true}
		if errors.Is(err, os.ErrNotExist) {
			return grid, fmt.Errorf("%w: %s", ErrSourceAbsent, path)
		}
		return grid, fmt.Errorf("failed to read table %s: %w", path, err)
	}

	grid := Parse(string(data))
	grid.SourcePath = path
	return grid, nil
}

// EnsureFile writes content to path unless the file already exists,
// creating parent directories as needed. It reports whether it wrote.
func EnsureFile(path, content string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// DefaultTodo is the starter Todo table written by `jeek init`.
const DefaultTodo = `# TODO List

| 任务 | 状态 | 优先级 |
|------|------|--------|
| 学习 | 进行中 | 高 |
| 完成项目 | 未开始 | 中 |
| 整理文档 | 未开始 | 低 |
`

// DefaultCyber is the starter Cyber resource table written by `jeek init`.
const DefaultCyber = `# CYBER RESOURCE

| 名称 | 链接 | 备注 |
|------|------|------|
| Go | https://go.dev | 官方文档 |
| Bubble Tea | https://github.com/charmbracelet/bubbletea | TUI 框架 |
`
