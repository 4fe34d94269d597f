// Package runner executes a resolved environment's command sequence as
// subprocesses: strictly sequential, fail-fast, with the environment's
// setenv mapping merged over the ambient process environment.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sort"

	mosrunerrors "mosrun.dev/mosrun/internal/errors"
	"mosrun.dev/mosrun/internal/registry"
)

// CommandRunner handles execution of an environment's commands
type CommandRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a CommandRunner wired to the process streams
func New() *CommandRunner {
	return &CommandRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// RunEnvironment executes each command of a resolved environment in
// declared order. The first non-zero exit aborts the remaining commands
// and is returned as a CommandError together with its exit code; 0 and a
// nil error mean every command succeeded.
//
// No timeout is applied: a hung test command blocks the invocation, by
// contract with the external test suites.
func (r *CommandRunner) RunEnvironment(ctx context.Context, env *registry.Environment) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	environ := MergedEnviron(env)

	for _, command := range env.Commands {
		if len(command.Argv) == 0 {
			continue
		}

		cmd := exec.CommandContext(ctx, command.Argv[0], command.Argv[1:]...)
		cmd.Dir = env.ChangeDir
		cmd.Env = environ
		cmd.Stdin = r.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr

		if err := cmd.Run(); err != nil {
			code := 1
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			}
			return code, mosrunerrors.NewCommandError(env.Name, command.Argv, code, err)
		}
	}

	return 0, nil
}

// MergedEnviron returns the child process environment: the ambient
// environment overlaid with the environment's setenv mapping and
// MOSRUN_ENV naming the active environment. Overrides are appended in
// sorted key order so the result is deterministic.
func MergedEnviron(env *registry.Environment) []string {
	environ := os.Environ()
	environ = append(environ, "MOSRUN_ENV="+env.Name)

	keys := make([]string, 0, len(env.SetEnv))
	for k := range env.SetEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		environ = append(environ, k+"="+env.SetEnv[k])
	}
	return environ
}
