package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/edna/pkg/types"
)

// RunnerCall records one FakeRunner invocation
type RunnerCall struct {
	Dir     string
	Scripts []string
}

// FakeRunner implements scripts.Runner without spawning a shell
type FakeRunner struct {
	mu     sync.Mutex
	Calls  []RunnerCall
	Result types.ScriptResult
	Err    error
}

// Run records the call and returns the configured result
func (f *FakeRunner) Run(_ context.Context, dir string, scripts []string) (*types.ScriptResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, RunnerCall{Dir: dir, Scripts: append([]string(nil), scripts...)})
	if f.Err != nil {
		return nil, f.Err
	}
	result := f.Result
	return &result, nil
}

// Called reports whether Run was invoked
func (f *FakeRunner) Called() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls) > 0
}
