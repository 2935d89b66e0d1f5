// Jeek is a terminal dashboard for personal Markdown tables and bills.
//
// It shows a main menu leading to a Todo table, a Cyber resource table and
// a bill summary, with an on-demand weather line. Tables are plain Markdown
// files edited with $EDITOR.
//
// Usage:
//
//	jeek [command] [flags]
//
// Running without arguments launches the dashboard.
// See 'jeek --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeekhub/jeek/internal/logging"
	"github.com/jeekhub/jeek/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jeek",
	Short: "Jeek! terminal dashboard",
	Long: `A terminal dashboard for the tables you keep in Markdown.

Jeek shows a TODO list and a CYBER RESOURCE list parsed from Markdown
pipe tables, a summary of your bills with analyze and export actions,
and the current weather on request.

If no command is specified, the dashboard launches.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("jeek %s\n", version.Full())
	},
}
