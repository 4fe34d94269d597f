package deps

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sort"
	"time"

	mosrunerrors "mosrun.dev/mosrun/internal/errors"
)

// DefaultInstallTimeout is the default timeout for dependency installation
const DefaultInstallTimeout = 15 * time.Minute

// Installer installs dependency specifiers into an environment by
// shelling out to pip
type Installer struct {
	// Pip is the pip executable to invoke; "pip" when empty
	Pip string
	// Dir is the working directory for the install; process cwd when empty
	Dir string
}

// Install installs the given specifiers in declared order. envName and
// setenv identify the target environment; setenv (VIRTUAL_ENV in
// particular) is merged over the ambient process environment.
func (i *Installer) Install(ctx context.Context, envName string, specs []Spec, setenv map[string]string) error {
	if len(specs) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultInstallTimeout)
		defer cancel()
	}

	pip := i.Pip
	if pip == "" {
		pip = "pip"
	}

	args := []string{"install"}
	for _, spec := range specs {
		args = append(args, spec.PipArgs()...)
	}

	cmd := exec.CommandContext(ctx, pip, args...)
	if i.Dir != "" {
		cmd.Dir = i.Dir
	}
	cmd.Env = mergedEnviron(setenv)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		code := 1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		}
		return mosrunerrors.NewCommandError(envName, append([]string{pip}, args...), code, err)
	}
	return nil
}

// mergedEnviron overlays setenv on the ambient environment, with
// deterministic ordering for the overrides
func mergedEnviron(setenv map[string]string) []string {
	env := os.Environ()
	keys := make([]string, 0, len(setenv))
	for k := range setenv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+setenv[k])
	}
	return env
}
