package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bindprop/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "propctl",
	Short: "Bound accessor demo and invariant checker",
	Long: `propctl exercises the bound accessor library: it prints a sample owner through
every accessor strategy and runs the accessor invariant suites.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupApp,
}

// main registers subcommands and persistent flags, then executes the root
// command. A command error exits with status 1.
func main() {
	rootCmd.Version = version.String()

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("config", "", "path to propctl.toml (default: search upward from the working directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (off|error|print|debug|trace)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text|ndjson|msgpack)")
	rootCmd.PersistentFlags().String("log-output", "", "log file (default stderr)")
	rootCmd.PersistentFlags().Bool("log-detailed", false, "prefix log lines with file(line):func()")
	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	err := rootCmd.ExecuteContext(context.Background())
	app.close()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
