// Package main is the entry point for the roster CLI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "roster - an employee roster kept for one session",
	Long: `roster keeps a list of employees in memory while it runs.

Fill in the form with "set", then "add" it. Select a row to "modify" or
"delete" it. Nothing is saved: the roster is gone when the session ends.

Run without a subcommand to start the interactive shell, or use "roster mcp"
to drive the same roster from an MCP client over stdio.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runShell,
}

var (
	flagConfig  string
	flagVerbose bool
	flagNoColor bool
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("roster version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log session events to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// configPath returns the --config value or the file in the home directory.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return config.FileName
	}
	return config.DefaultPath(home)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)
	return cfg, nil
}

func applyFlags(cfg *config.Config) {
	if flagNoColor {
		cfg.Color = cli.ColorNever
	}
}

// newLogger returns a logger writing to w when --verbose is set and
// discarding otherwise.
func newLogger(w io.Writer) *log.Logger {
	if !flagVerbose {
		w = io.Discard
	}
	return log.New(w, "[roster] ", log.LstdFlags)
}
