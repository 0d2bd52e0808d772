// Package shell is the interactive front end for a roster session.
//
// The shell plays the part of the form and table: it keeps the values typed
// into the five form fields, turns each command line into one roster.Store
// call, and prints the resulting notification and table. Lines are processed
// one at a time, so the store never sees concurrent calls.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/config"
	"github.com/jacksmith/roster/internal/model"
	"github.com/jacksmith/roster/internal/roster"
)

// Shell is one interactive session over a roster.
type Shell struct {
	store  *roster.Store
	form   model.Form
	cfg    *config.Config
	out    io.Writer
	logger *log.Logger
	editor *cli.Editor

	interactive bool
	configCh    <-chan *config.Config
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger for session events. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithEditor sets the editor used by the "edit" command.
func WithEditor(e *cli.Editor) Option {
	return func(s *Shell) { s.editor = e }
}

// WithInteractive makes the shell print a prompt before each line.
func WithInteractive(interactive bool) Option {
	return func(s *Shell) { s.interactive = interactive }
}

// WithConfigUpdates makes Run apply configs received on ch between commands.
func WithConfigUpdates(ch <-chan *config.Config) Option {
	return func(s *Shell) { s.configCh = ch }
}

// New returns a shell over store writing to out.
func New(store *roster.Store, cfg *config.Config, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:  store,
		out:    out,
		logger: log.New(io.Discard, "", 0),
		editor: cli.EditorFromEnv(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyConfig(cfg)
	return s
}

// Form returns the current form values.
func (s *Shell) Form() model.Form {
	return s.form
}

// Run reads command lines from in until EOF, "quit" or ctx is cancelled.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
		close(lines)
	}()

	s.prompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg := <-s.configCh:
			s.applyConfig(cfg)
			s.logger.Printf("Applied new configuration")
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			if quit := s.Exec(line); quit {
				return nil
			}
			s.prompt()
		}
	}
}

// Exec runs one command line and reports whether the session should end.
// Blank lines and lines starting with '#' are ignored.
func (s *Shell) Exec(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	words, err := cli.SplitArgs(line)
	if err != nil {
		s.fail(cli.FormatError(err))
		return false
	}

	cmd, err := cli.MatchCommand(words[0], commands)
	if err != nil {
		s.fail(cli.FormatError(err))
		return false
	}
	args := words[1:]

	switch cmd.Name {
	case "add":
		s.submit(cli.ActionAdd, args)
	case "modify":
		s.submit(cli.ActionModify, args)
	case "delete":
		s.delete()
	case "set":
		s.set(args)
	case "id":
		s.autofill(args)
	case "select":
		s.selectRow(args)
	case "list":
		s.list()
	case "show":
		s.show()
	case "clear":
		s.clearForm()
		s.info("Form cleared.")
	case "edit":
		s.edit()
	case "dump":
		s.dump()
	case "genders":
		fmt.Fprintln(s.out, joinGenders(s.cfg.Genders))
	case "help":
		s.help()
	case "quit":
		return true
	}
	return false
}

func (s *Shell) applyConfig(cfg *config.Config) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s.cfg = cfg
	cli.ApplyColorMode(cfg.Color, s.out)
}

func (s *Shell) prompt() {
	if s.interactive {
		fmt.Fprint(s.out, s.cfg.Prompt)
	}
}

func (s *Shell) success(msg string) {
	fmt.Fprintln(s.out, cli.Green(msg))
}

func (s *Shell) fail(msg string) {
	fmt.Fprintln(s.out, cli.Red(msg))
}

func (s *Shell) warn(msg string) {
	fmt.Fprintln(s.out, cli.Yellow(msg))
}

func (s *Shell) info(msg string) {
	fmt.Fprintln(s.out, cli.Gray(msg))
}

func joinGenders(genders []model.Gender) string {
	names := make([]string, len(genders))
	for i, g := range genders {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

// checkGender warns when the gender isn't one of the offered choices.
// The value is still accepted.
func (s *Shell) checkGender(g model.Gender) {
	if g == "" || slices.Contains(s.cfg.Genders, g) {
		return
	}
	s.warn(fmt.Sprintf("note: gender %q is not one of: %s", g, joinGenders(s.cfg.Genders)))
}
