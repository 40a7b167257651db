package migrate

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Defaults for the alembic initializer subcommand.
const (
	DefaultCommand = "alembic"
)

// Initializer runs the migration tool's init subcommand in a project directory.
type Initializer struct {
	// Command and Args can be overridden for testing; defaults are
	// "alembic" and ["init", "alembic"].
	Command string
	Args    []string
}

// Output captures the result of a migration-tool invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// NewInitializer returns an Initializer with the alembic defaults.
func NewInitializer() *Initializer {
	return &Initializer{
		Command: DefaultCommand,
		Args:    []string{"init", "alembic"},
	}
}

// Run executes the initializer with projectRoot as the child's working
// directory. A non-zero exit is reported through Output.ExitCode with a nil
// error; the error return covers a missing binary or a spawn failure.
func (i *Initializer) Run(ctx context.Context, projectRoot string) (*Output, error) {
	command := i.Command
	if command == "" {
		command = DefaultCommand
	}

	bin, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("migration tool %q not found: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, bin, i.Args...)
	cmd.Dir = projectRoot

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", command, err)
	}

	output.ExitCode = 0
	return output, nil
}
