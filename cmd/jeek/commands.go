package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeekhub/jeek/internal/bill"
	"github.com/jeekhub/jeek/internal/config"
	"github.com/jeekhub/jeek/internal/dashboard/tui"
	"github.com/jeekhub/jeek/internal/editor"
	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/mdtable"
	"github.com/jeekhub/jeek/internal/ui"
	"github.com/jeekhub/jeek/internal/weather"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

// init command flags
var forceInit bool

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <config dir>/jeek/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $"+logging.LogLevelEnvVar+", else silent)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file (default: <config dir>/jeek/jeek.log for the dashboard, stderr otherwise)")

	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(weatherCmd)
}

// setup initializes logging and loads the configuration. The dashboard
// logs to a file by default since it owns the terminal.
func setup(interactive bool) (*config.Config, error) {
	path := logFile
	if path == "" && interactive {
		p, err := config.GetLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := logging.Initialize(logLevel, path); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logging.Debug("Configuration loaded",
		zap.String("todo_file", cfg.TodoFile),
		zap.String("cyber_file", cfg.CyberFile),
		zap.String("bill_dir", cfg.BillDir),
	)
	return cfg, nil
}

func newWeatherClient(cfg *config.Config) *weather.Client {
	return weather.NewClient(cfg.Weather.Endpoint, cfg.Weather.Location, cfg.WeatherTimeout())
}

// dashboardCmd launches the interactive dashboard
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive dashboard",
	Long: `Launch the full-screen dashboard.

Keys:
  Menu         j/k select, enter open, q quit
  TODO/CYBER   j/k/h/l move, e edit, r reload, y copy cell, esc back
  BILL         a analyze, o export, r rescan, esc back

ctrl+c quits from anywhere.`,
	Example: `  # Launch the dashboard (same as running jeek with no command)
  jeek dashboard

  # Use another config and keep a debug log
  jeek --config ./jeek.yaml --log-level debug`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := setup(true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := newWeatherClient(cfg)
	model := tui.NewAppModel(ctx, tui.Options{
		TodoPath:     cfg.TodoFile,
		CyberPath:    cfg.CyberFile,
		BillDir:      cfg.BillDir,
		Runner:       bill.NewRunner(cfg),
		Editor:       editor.Resolve(cfg.Editor),
		WeatherFetch: client.Fetch,
	})

	logging.Info("Dashboard starting")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	logging.Info("Dashboard exited")
	return nil
}

// showCmd prints a table or the bill summary without the dashboard
var showCmd = &cobra.Command{
	Use:       "show <todo|cyber|bill>",
	Short:     "Print a table or the bill summary",
	ValidArgs: []string{"todo", "cyber", "bill"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Example: `  jeek show todo
  jeek show cyber
  jeek show bill`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := setup(false)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(nil)

	switch args[0] {
	case "todo":
		grid, err := mdtable.Load(cfg.TodoFile)
		logging.LogTableLoad(cfg.TodoFile, grid.RowCount(), err)
		printer.PrintGrid("TODO", grid)
	case "cyber":
		grid, err := mdtable.Load(cfg.CyberFile)
		logging.LogTableLoad(cfg.CyberFile, grid.RowCount(), err)
		printer.PrintGrid("CYBER RESOURCE", grid)
	case "bill":
		summary, err := bill.Scan(cfg.BillDir)
		if err != nil {
			return err
		}
		printer.PrintBillSummary(cfg.BillDir, summary)
	}

	return nil
}

// initCmd writes the default config and starter tables
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and starter tables",
	Long: `Create the default configuration and starter Markdown tables.

Writes config.yaml (unless it exists, see --force), then creates the
TODO and CYBER tables and the bill directory layout if they are missing.
Existing tables are never overwritten.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := setup(false)
	if err != nil {
		return err
	}
	printer := ui.NewPrinter(nil)

	path := configPath
	if path == "" {
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	if _, statErr := os.Stat(path); statErr == nil && !forceInit {
		printer.PrintSkipped("config exists: " + path)
	} else {
		if err := cfg.Save(path); err != nil {
			return err
		}
		printer.PrintSuccess("config written: " + path)
	}

	tables := []struct {
		path    string
		content string
	}{
		{cfg.TodoFile, mdtable.DefaultTodo},
		{cfg.CyberFile, mdtable.DefaultCyber},
	}
	for _, t := range tables {
		wrote, err := mdtable.EnsureFile(t.path, t.content)
		if err != nil {
			return err
		}
		if wrote {
			printer.PrintSuccess("table created: " + t.path)
		} else {
			printer.PrintSkipped("table exists: " + t.path)
		}
	}

	for _, sub := range []string{bill.RawDir, bill.AnalyzedDir, bill.ReportsDir} {
		dir := filepath.Join(cfg.BillDir, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	printer.PrintSuccess("bill directory ready: " + cfg.BillDir)

	return nil
}

// weatherCmd fetches the weather once
var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Print the current weather",
	Example: `  jeek weather
  JEEK_LOG_LEVEL=debug jeek weather`,
	RunE: runWeather,
}

func runWeather(cmd *cobra.Command, args []string) error {
	cfg, err := setup(false)
	if err != nil {
		return err
	}

	report, err := newWeatherClient(cfg).Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("weather fetch failed: %w", err)
	}
	ui.NewPrinter(nil).PrintWeather(report)
	return nil
}
