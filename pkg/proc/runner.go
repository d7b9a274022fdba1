package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewExecRunner,
	wire.Bind(new(Runner), new(*ExecRunner)),
)

// Result is what a finished child process left behind. Stdout and Stderr are
// captured in full.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a program to completion, feeding stdin and capturing both
// output streams. A non-zero exit is not an error: it is reported through
// Result.ExitCode. The error is reserved for processes that could not be
// started or waited on (missing executable, I/O failure, context expiry).
type Runner interface {
	Run(ctx context.Context, stdin []byte, name string, args ...string) (*Result, error)
	LookPath(name string) (string, error)
}

const waitDelay = 2 * time.Second

type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = bytes.NewReader(stdin)
	// with a deadline, grandchildren holding the pipes open must not outlive it;
	// without one, output is read until every writer closes
	if _, ok := ctx.Deadline(); ok {
		cmd.WaitDelay = waitDelay
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s did not finish: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
	default:
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
