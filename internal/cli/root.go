// Package cli wires the pageflow commands: flag parsing, config loading,
// logging setup, and the interactive session browser.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seamlist/pageflow/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root Cobra command for the pageflow CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pageflow",
		Short:   "Cursor-paged session browser",
		Long:    "pageflow: browse a cursor-paginated session list with reactive navigation",
		Version: ver,
		Example: rootCmdExample,
	}

	cmd.PersistentFlags().String("config", "", "path to config file")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newBrowseCmd())

	return cmd
}

const rootCmdExample = `  # Browse a generated session list
  pageflow browse

  # Small pages with visible fetch latency
  pageflow browse --page-size 3 --latency 500ms`

// setupLogging builds the application logger from config, flags and
// environment. While the TUI owns the terminal, logs go to a file; without
// one the logger is disabled rather than fighting the TUI for stderr.
func setupLogging(cmd *cobra.Command, cfg config.Config) (zerolog.Logger, func(), error) {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
	}

	logPath, _ := cmd.Flags().GetString("log-file")
	if logPath == "" && debug {
		logPath = os.TempDir() + "/pageflow.log"
	}
	if logPath == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := config.NewLogger(loggingCfg, f)
	cleanup := func() { _ = f.Close() }
	return logger, cleanup, nil
}

// loadConfig reads the config file named by --config, or the defaults plus
// environment overrides when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
