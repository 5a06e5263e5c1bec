// Package scripts runs a template's init scripts in a freshly created project.
package scripts

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"runtime"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/arthur-debert/edna/pkg/errors"
	"github.com/arthur-debert/edna/pkg/logging"
	"github.com/arthur-debert/edna/pkg/types"
	"github.com/rs/zerolog"
)

// Runner executes a list of scripts with dir as working directory. A script
// failure is reported through the result's exit code; the error return is
// reserved for shells that could not be started.
type Runner interface {
	Run(ctx context.Context, dir string, scripts []string) (*types.ScriptResult, error)
}

// ShellRunner runs all scripts through one invocation of the host shell:
// `cmd /C` on Windows, `sh -c` elsewhere, or `<Shell> -c` when Shell is set.
type ShellRunner struct {
	// Shell overrides the host shell when not empty
	Shell string
	// GOOS selects the shell family; defaults to runtime.GOOS
	GOOS string

	logger zerolog.Logger
}

// NewShellRunner creates a runner using the host shell, or shell when given
func NewShellRunner(shell string) *ShellRunner {
	return &ShellRunner{
		Shell:  shell,
		GOOS:   runtime.GOOS,
		logger: logging.GetLogger("scripts.runner"),
	}
}

// Command returns the program and arguments that run scripts in order.
// Scripts are chained so that a failing script does not stop the next one;
// the exit status is whatever the shell reports.
func (r *ShellRunner) Command(scripts []string) (string, []string) {
	if r.Shell != "" {
		return r.Shell, []string{"-c", strings.Join(scripts, "\n")}
	}
	if r.GOOS == "windows" {
		return "cmd", []string{"/C", strings.Join(scripts, " & ")}
	}
	return "sh", []string{"-c", strings.Join(scripts, "\n")}
}

// Run executes scripts and waits for the shell to exit. Output is captured in
// full and returned, never streamed.
func (r *ShellRunner) Run(ctx context.Context, dir string, scripts []string) (*types.ScriptResult, error) {
	name, args := r.Command(scripts)

	logging.LogCommand(r.logger, name, args)
	r.logger.Debug().
		Str("dir", dir).
		Str("commandLine", shellescape.QuoteCommand(append([]string{name}, args...))).
		Msg("Running init scripts")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &types.ScriptResult{
		Shell:  name,
		Args:   args,
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if stdout.Len() > 0 {
		r.logger.Debug().Str("output", stdout.String()).Msg("Scripts stdout")
	}
	if stderr.Len() > 0 {
		r.logger.Debug().Str("output", stderr.String()).Msg("Scripts stderr")
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			r.logger.Warn().
				Int("exitCode", result.ExitCode).
				Str("dir", dir).
				Msg("Init scripts exited with errors")
			return result, nil
		}
		return nil, errors.Wrapf(err, errors.ErrScriptExecute, "failed to run scripts with %s", name).
			WithDetail("dir", dir)
	}

	r.logger.Info().Str("dir", dir).Int("scripts", len(scripts)).Msg("Init scripts completed")
	return result, nil
}
