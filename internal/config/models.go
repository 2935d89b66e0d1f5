package config

import (
	"fmt"
	"time"

	"github.com/jeekhub/jeek/internal/urls"
)

// Config represents the entire user configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Markdown table sources for the Todo and Cyber views.
	TodoFile  string `yaml:"todo_file"`
	CyberFile string `yaml:"cyber_file"`

	// BillDir is the root of the bill set (raw/, analyzed/, reports/).
	BillDir string `yaml:"bill_dir"`

	// Editor overrides $VISUAL/$EDITOR when set (e.g. "code -w").
	Editor string `yaml:"editor,omitempty"`

	Analyzer        Command `yaml:"analyzer"`
	Exporter        Command `yaml:"exporter"`
	CommandsTimeout int     `yaml:"commands_timeout"` // seconds

	Weather Weather `yaml:"weather"`
}

// Command is an external program run against the bill set.
type Command struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// Configured reports whether a program was set.
func (c Command) Configured() bool {
	return c.Command != ""
}

// Weather holds the weather service settings.
type Weather struct {
	Endpoint string `yaml:"endpoint"`
	Location string `yaml:"location,omitempty"` // empty = auto-detect
	Timeout  int    `yaml:"timeout"`            // seconds
}

// Default values
const (
	DefaultTodoFile        = "md/TODO.md"
	DefaultCyberFile       = "md/CYBER.md"
	DefaultBillDir         = "bills"
	DefaultCommandsTimeout = 120
	DefaultWeatherTimeout  = 10
)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:         1,
		TodoFile:        DefaultTodoFile,
		CyberFile:       DefaultCyberFile,
		BillDir:         DefaultBillDir,
		CommandsTimeout: DefaultCommandsTimeout,
		Weather: Weather{
			Endpoint: urls.WeatherService,
			Timeout:  DefaultWeatherTimeout,
		},
	}
}

// Validate checks values that would otherwise fail late, inside the dashboard.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	if c.CommandsTimeout < 0 {
		return fmt.Errorf("commands_timeout must not be negative (got %d)", c.CommandsTimeout)
	}
	if c.Weather.Timeout < 0 {
		return fmt.Errorf("weather.timeout must not be negative (got %d)", c.Weather.Timeout)
	}
	if c.Weather.Endpoint == "" {
		return fmt.Errorf("weather.endpoint must not be empty")
	}
	return nil
}

// CommandTimeout returns the analyzer/exporter deadline. Zero disables it.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandsTimeout) * time.Second
}

// WeatherTimeout returns the HTTP timeout for weather requests.
func (c *Config) WeatherTimeout() time.Duration {
	if c.Weather.Timeout == 0 {
		return DefaultWeatherTimeout * time.Second
	}
	return time.Duration(c.Weather.Timeout) * time.Second
}

// applyDefaults fills fields left out of a partial config file.
func (c *Config) applyDefaults() {
	def := NewConfig()
	if c.TodoFile == "" {
		c.TodoFile = def.TodoFile
	}
	if c.CyberFile == "" {
		c.CyberFile = def.CyberFile
	}
	if c.BillDir == "" {
		c.BillDir = def.BillDir
	}
	if c.CommandsTimeout == 0 {
		c.CommandsTimeout = def.CommandsTimeout
	}
	if c.Weather.Endpoint == "" {
		c.Weather.Endpoint = def.Weather.Endpoint
	}
	if c.Weather.Timeout == 0 {
		c.Weather.Timeout = def.Weather.Timeout
	}
}
