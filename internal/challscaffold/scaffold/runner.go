// Package scaffold runs the external project generator for a single challenge folder.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/dimasma0305/challscaffold/internal/challscaffold/errors"
	"github.com/dimasma0305/challscaffold/internal/log"
)

const (
	// DefaultCommand is the generator invoked when none is configured
	DefaultCommand = "npx create-vite"
	// DefaultWaitDelay bounds how long Run waits for output pipes after the shell is killed
	DefaultWaitDelay = 5 * time.Second
)

var (
	shell     string
	shellOnce sync.Once
)

// getShell returns the shell to use for command execution in a thread-safe way
func getShell() string {
	shellOnce.Do(func() {
		shell = os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
	})
	return shell
}

// Scaffolder creates a project named projectName inside cwd using the given template
type Scaffolder interface {
	Run(ctx context.Context, projectName, templateID, cwd string) error
}

// ExitError reports a generator that ran but exited with a non-zero status
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command failed with code %d", e.Code)
}

// Runner launches the generator through a shell with the parent's terminal attached, so its
// own progress output reaches the user directly.
type Runner struct {
	// Shell defaults to $SHELL, then /bin/sh
	Shell string
	// Command is the generator prefix, e.g. "npx create-vite"
	Command string
	// Env is appended to the inherited environment
	Env []string
	// WaitDelay is how long a cancelled Run waits for grandchildren still holding the output
	// streams; zero means DefaultWaitDelay
	WaitDelay time.Duration

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner for command wired to the process's own streams
func NewRunner(command string) *Runner {
	if command == "" {
		command = DefaultCommand
	}
	return &Runner{
		Command: command,
		Env:     []string{"FORCE_COLOR=true"},
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Args returns the positional arguments handed to the generator
func Args(projectName, templateID string) []string {
	return []string{projectName, "--template", templateID}
}

// CommandLine returns the shell line Run executes
func (r *Runner) CommandLine(projectName, templateID string) string {
	return strings.TrimSpace(r.Command) + " " + shellquote.Join(Args(projectName, templateID)...)
}

// Run executes the generator in cwd and waits for it to exit.
// A non-zero exit yields *ExitError; a process that never started yields an error wrapping
// errors.ErrSpawn.
//
//nolint:gosec // G204: running the configured generator is the purpose of this function
func (r *Runner) Run(ctx context.Context, projectName, templateID, cwd string) error {
	sh := r.Shell
	if sh == "" {
		sh = getShell()
	}

	line := r.CommandLine(projectName, templateID)
	log.InfoH2("Running: %s", line)
	log.DebugH2("Working directory: %s", cwd)

	cmd := exec.CommandContext(ctx, sh, "-c", line)
	cmd.Dir = cwd
	cmd.Env = append(os.Environ(), r.Env...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrSpawn, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}
