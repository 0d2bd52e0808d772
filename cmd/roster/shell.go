package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/config"
	"github.com/jacksmith/roster/internal/roster"
	"github.com/jacksmith/roster/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive roster shell",
	Long: `Start an interactive session over an empty roster.

Commands read from standard input, one per line. When input is not a
terminal no prompt is printed, so a script can be piped in:

  printf 'add id=1 name=Ann designation=Dev gender=Female salary=1000\nlist\n' | roster shell

The config file is watched while the shell runs; edits to it apply to the
next command.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := cmd.InOrStdin()
	updates := make(chan *config.Config, 1)
	opts := []shell.Option{
		shell.WithLogger(logger),
		shell.WithInteractive(cli.IsTerminal(in)),
		shell.WithConfigUpdates(updates),
	}

	path := configPath()
	if w, err := config.NewWatcher(path, logger); err != nil {
		logger.Printf("Config watching disabled: %v", err)
	} else {
		defer w.Close()
		go w.Run(ctx, func(c *config.Config) {
			applyFlags(c)
			select {
			case updates <- c:
			case <-ctx.Done():
			}
		})
	}

	logger.Printf("Session started (config %s)", path)
	sh := shell.New(roster.New(), cfg, cmd.OutOrStdout(), opts...)
	if err := sh.Run(ctx, in); err != nil {
		return err
	}
	logger.Printf("Session ended")
	return nil
}
