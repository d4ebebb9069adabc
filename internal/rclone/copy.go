package rclone

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Command is one external process invocation.
type Command struct {
	Path string
	Args []string
	// Env is appended to the current process environment.
	Env []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Runner starts a command and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Env = append(os.Environ(), c.Env...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// ExitCode extracts the exit status from a Runner error: 0 for nil, -1 if
// the process never reported one.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type CopyOptions struct {
	Binary     string
	ConfigPath string
	Transfers  int
	Checkers   int
	Progress   bool
}

// Copier runs "rclone copyto" between the src-s3 and dst-s3 remotes.
type Copier struct {
	opts   CopyOptions
	runner Runner
}

func NewCopier(opts CopyOptions, runner Runner) *Copier {
	return &Copier{opts: opts, runner: runner}
}

// Command builds the invocation for r. rclone finds the remotes through
// RCLONE_CONFIG, so the argument list carries no credentials.
func (c *Copier) Command(r Replication) Command {
	args := []string{"copyto", r.Source(), r.Destination()}
	if c.opts.Progress {
		args = append(args, "-P")
	}
	args = append(args,
		"--transfers", strconv.Itoa(c.opts.Transfers),
		"--checkers", strconv.Itoa(c.opts.Checkers),
	)
	return Command{
		Path: c.opts.Binary,
		Args: args,
		Env:  []string{"RCLONE_CONFIG=" + c.opts.ConfigPath},
	}
}

// Copy runs the transfer and blocks until rclone exits.
func (c *Copier) Copy(ctx context.Context, r Replication) error {
	cmd := c.Command(r)
	log.Printf("running %s", cmd)

	if err := c.runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("rclone copyto %s %s failed (exit code %d): %w",
			r.Source(), r.Destination(), ExitCode(err), err)
	}
	log.Printf("rclone copyto %s %s finished", r.Source(), r.Destination())
	return nil
}
