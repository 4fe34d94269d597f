package actions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mosrun.dev/mosrun/internal/deps"
	mosrunerrors "mosrun.dev/mosrun/internal/errors"
	"mosrun.dev/mosrun/internal/registry"
	"mosrun.dev/mosrun/internal/runner"
	"mosrun.dev/mosrun/internal/runtime"
	"mosrun.dev/mosrun/internal/tui"
	"mosrun.dev/mosrun/internal/utils"
)

// RunOptions contains options for the run command
type RunOptions struct {
	// EnvNames are the environments to run; the [tox] envlist (or an
	// interactive selection) is used when empty
	EnvNames []string
	// Posargs are forwarded into {posargs} placeholders
	Posargs []string
	// InstallDeps installs each environment's dependencies before running
	InstallDeps bool
}

// RunAction runs the selected environments one at a time, in order.
// Within an environment commands are fail-fast; a failing environment
// does not stop later environments. The returned exit code is the worst
// code encountered, 0 when everything passed.
func RunAction(ctx *runtime.Context, opts RunOptions) (int, error) {
	reg := ctx.Registry
	splog := ctx.Splog

	names, err := selectEnvironments(reg, opts.EnvNames)
	if err != nil {
		return 1, err
	}

	// Fail on unknown names before anything runs
	envs := make([]*registry.Environment, 0, len(names))
	for _, name := range names {
		env, err := reg.Lookup(name)
		if err != nil {
			return 1, err
		}
		envs = append(envs, env)
	}

	splog.Debug("running environments: %v", names)

	progress := tui.NewRunProgress(splog, len(envs))
	cmdRunner := runner.New()

	worst := 0
	passed, failed := 0, 0

	for i, env := range envs {
		progress.StartEnv(i, env.Name)

		paths := reg.DefaultPaths(env.Name)
		resolved, err := registry.Resolve(env, opts.Posargs, paths)
		if err != nil {
			splog.Error("%v", err)
			failed++
			worst = maxCode(worst, 1)
			progress.EnvDone(i, env.Name, 1)
			continue
		}

		if opts.InstallDeps && len(resolved.Deps) > 0 {
			if err := installDeps(ctx, resolved, paths); err != nil {
				splog.Error("%v", err)
				failed++
				worst = maxCode(worst, commandExitCode(err))
				progress.EnvDone(i, env.Name, commandExitCode(err))
				continue
			}
		}

		code, err := cmdRunner.RunEnvironment(ctx.Context, resolved)
		if err != nil {
			splog.Error("%v", err)
			failed++
			worst = maxCode(worst, code)
		} else {
			passed++
		}
		progress.EnvDone(i, env.Name, code)
	}

	progress.Complete(passed, failed)
	return worst, nil
}

// selectEnvironments decides which environments to run: explicit -e
// selection, the [tox] envlist default, or an interactive pick.
func selectEnvironments(reg *registry.Registry, requested []string) ([]string, error) {
	if len(requested) > 0 {
		return utils.Dedupe(requested), nil
	}
	if defaults := reg.Defaults(); len(defaults) > 0 {
		return defaults, nil
	}
	if !utils.IsInteractive() {
		return nil, fmt.Errorf("no environments selected and no envlist configured; pass -e")
	}
	return tui.PromptEnvironments(reg.Names(), nil)
}

// installDeps installs an environment's dependencies with a spinner.
// Reinstalling into an existing environment directory is confirmed first
// when the session is interactive.
func installDeps(ctx *runtime.Context, env *registry.Environment, paths registry.Paths) error {
	if _, err := os.Stat(paths.EnvDir); err == nil && utils.IsInteractive() {
		reinstall, err := tui.PromptConfirm(
			fmt.Sprintf("Environment directory %s already exists, reinstall dependencies?", paths.EnvDir), true)
		if err != nil {
			return err
		}
		if !reinstall {
			ctx.Splog.Info("Skipping dependency install for %s", env.Name)
			return nil
		}
	}

	if err := os.MkdirAll(paths.EnvDir, 0750); err != nil {
		return fmt.Errorf("failed to create environment directory: %w", err)
	}

	installer := &deps.Installer{Dir: paths.ToxIniDir}
	if venv := env.VirtualEnv(); venv != "" {
		installer.Pip = filepath.Join(venv, "bin", "pip")
	}
	label := fmt.Sprintf("Installing %d dependencies for %s", len(env.Deps), env.Name)
	return tui.RunWithSpinner(ctx.Splog, label, func() error {
		return installer.Install(ctx.Context, env.Name, env.Deps, env.SetEnv)
	})
}

// commandExitCode extracts the exit code carried by a CommandError, 1 otherwise
func commandExitCode(err error) int {
	var cmdErr *mosrunerrors.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode
	}
	return 1
}

func maxCode(a, b int) int {
	if a > b {
		return a
	}
	return b
}
