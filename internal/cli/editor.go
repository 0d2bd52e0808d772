package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Editor runs an external editor on a temporary file.
type Editor struct {
	// Command is the editor command line, e.g. "vim" or "code --wait".
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// EditorFromEnv returns an Editor using $VISUAL or $EDITOR attached to the
// process's standard streams.
func EditorFromEnv() *Editor {
	return &Editor{
		Command: getEditor(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit writes content to a temp file, opens it in the editor and returns the
// saved content. The suffix is used for the temporary file (e.g. ".yaml" for
// syntax highlighting).
func (e *Editor) Edit(content []byte, suffix string) ([]byte, error) {
	if e.Command == "" {
		return nil, fmt.Errorf("EDITOR not set. Set it or use \"set\" instead of \"edit\"")
	}

	tmpFile, err := os.CreateTemp("", "roster-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := e.run(tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return result, nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first (for graphical editors), then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// run executes the editor on path. The command line is split on whitespace
// so "code --wait" works.
func (e *Editor) run(path string) error {
	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
