// Package config provides user configuration management for jeek.
//
// This package manages a YAML-based configuration file that tells the
// dashboard where its Markdown tables and bill set live, which editor to
// launch, which external programs analyze and export bills, and how to reach
// the weather service. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/jeek/config.yaml or $HOME/.config/jeek/config.yaml
//   - macOS: $HOME/.config/jeek/config.yaml
//   - Windows: %LOCALAPPDATA%\jeek\config.yaml
//
// # Example
//
//	version: 1
//	todo_file: ~/notes/TODO.md
//	cyber_file: ~/notes/CYBER.md
//	bill_dir: ~/bills
//	editor: nvim
//	analyzer:
//	  command: bill-analyze
//	  args: ["--month", "current"]
//	exporter:
//	  command: bill-export
//	commands_timeout: 120
//	weather:
//	  endpoint: https://wttr.in
//	  location: Shanghai
//	  timeout: 10
//
// A missing file is not an error; every field has a default. Relative paths
// resolve against the working directory, and a leading ~ is expanded.
package config
