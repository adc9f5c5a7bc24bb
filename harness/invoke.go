// SPDX-License-Identifier: MIT

// Package harness: external process invocation.
package harness

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Invoker runs the implementation under test for a named scenario and
// returns its combined standard-output/standard-error text. Implementations
// block until the process terminates; the context is the only bound.
type Invoker interface {
	Invoke(ctx context.Context, testName string) (string, error)
}

// ExecInvoker runs an external executable, appending the test name to the
// fixed argument list (e.g. Program="lake", Args=["exe"] runs
// "lake exe <testName>").
type ExecInvoker struct {
	Program string
	Args    []string
}

// Invoke executes the program and captures combined output. A non-zero exit
// is deliberately non-fatal: the captured text is the error surface and the
// caller still attempts to parse a comparable value from it. Only a process
// that cannot be started or terminates unrecoverably yields a wrapped
// ErrExternalInvocation.
func (e ExecInvoker) Invoke(ctx context.Context, testName string) (string, error) {
	args := make([]string, 0, len(e.Args)+1)
	args = append(args, e.Args...)
	args = append(args, testName)

	cmd := exec.CommandContext(ctx, e.Program, args...)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return "", fmt.Errorf("Invoke %s: %v: %w", testName, err, ErrExternalInvocation)
	}

	return string(out), nil
}
