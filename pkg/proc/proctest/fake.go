// Package proctest provides a scripted proc.Runner for tests.
package proctest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"piper-tts/pkg/proc"
)

// Response scripts what a fake program does when run.
type Response struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	// Err makes Run fail as if the program could not be started.
	Err error
	// Echo copies stdin to stdout, after any scripted Stdout.
	Echo bool
}

// Call records one invocation.
type Call struct {
	Name  string
	Args  []string
	Stdin []byte
}

// FakeRunner answers Run from a per-program script and records every call.
// Programs without a script behave as missing executables.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []Call
}

var ErrNotFound = errors.New("executable file not found in $PATH")

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: map[string]Response{}}
}

func (f *FakeRunner) Script(name string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[name] = resp
	return f
}

func (f *FakeRunner) Run(ctx context.Context, stdin []byte, name string, args ...string) (*proc.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{
		Name:  name,
		Args:  append([]string(nil), args...),
		Stdin: append([]byte(nil), stdin...),
	})

	resp, ok := f.responses[name]
	if !ok {
		return nil, fmt.Errorf("failed to run %s: %w", name, ErrNotFound)
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stdout := append([]byte(nil), resp.Stdout...)
	if resp.Echo {
		stdout = append(stdout, stdin...)
	}
	return &proc.Result{
		Stdout:   stdout,
		Stderr:   append([]byte(nil), resp.Stderr...),
		ExitCode: resp.ExitCode,
	}, nil
}

func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.responses[name]; !ok {
		return "", ErrNotFound
	}
	return "/usr/bin/" + name, nil
}

func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// CallsTo returns the recorded invocations of one program.
func (f *FakeRunner) CallsTo(name string) []Call {
	var out []Call
	for _, c := range f.Calls() {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

var _ proc.Runner = (*FakeRunner)(nil)
