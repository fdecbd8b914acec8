// Copyright 2025 Captain Authors
// SPDX-License-Identifier: Apache-2.0

// Package runner spawns the external CLIs Captain orchestrates. Child output
// streams straight to the operator's terminal; the caller only sees the exit
// status.
package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/solfleet/captain/internal/logger"
	"github.com/solfleet/captain/internal/telemetry"
)

// Command is one external invocation.
type Command struct {
	Name string
	Args []string
}

// New builds a Command.
func New(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// WithArgs returns a copy of the command with extra arguments appended.
func (c Command) WithArgs(args ...string) Command {
	combined := make([]string, 0, len(c.Args)+len(args))
	combined = append(combined, c.Args...)
	combined = append(combined, args...)
	return Command{Name: c.Name, Args: combined}
}

func (c Command) String() string {
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ExitError reports a child process that exited nonzero. The orchestrator
// propagates Code as its own exit status.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Cmd, e.Code)
}

// Runner executes external commands. Pipeline tests substitute a fake.
type Runner interface {
	// Run blocks until the child exits, returning *ExitError on nonzero exit.
	Run(ctx context.Context, cmd Command) error
	// Check is Run for presence probes: a nonzero exit is data, not failure.
	Check(ctx context.Context, cmd Command) (bool, error)
}

// Exec is the real Runner.
type Exec struct{}

var _ Runner = Exec{}

func (e Exec) Run(ctx context.Context, cmd Command) error {
	code, err := e.spawn(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Cmd: cmd.String(), Code: code}
	}
	return nil
}

func (e Exec) Check(ctx context.Context, cmd Command) (bool, error) {
	code, err := e.spawn(ctx, cmd)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

func (Exec) spawn(ctx context.Context, cmd Command) (int, error) {
	tracer := telemetry.GetTracer()
	ctx, span := tracer.Start(ctx, "exec")
	span.SetAttributes(attribute.String("exec.command", cmd.String()))
	defer span.End()

	logger.Logger.Debug("running command", "argv", cmd.String())

	child := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	err := child.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		span.SetAttributes(attribute.Int("exec.exit_code", code))
		logger.Logger.Debug("command exited nonzero", "argv", cmd.String(), "code", code)
		return code, nil
	}

	span.RecordError(err)
	return 0, fmt.Errorf("error running %q: %w", cmd.String(), err)
}
