package runner_test

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	mosrunerrors "mosrun.dev/mosrun/internal/errors"
	"mosrun.dev/mosrun/internal/registry"
	runpkg "mosrun.dev/mosrun/internal/runner"
	"mosrun.dev/mosrun/testhelpers"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests require a POSIX shell")
	}
}

func newRunner() (*runpkg.CommandRunner, *bytes.Buffer) {
	var out bytes.Buffer
	return &runpkg.CommandRunner{Stdout: &out, Stderr: &out}, &out
}

func command(args ...string) registry.Command {
	return registry.Command{Argv: args}
}

func TestRunEnvironment(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	t.Run("all commands succeed", func(t *testing.T) {
		t.Parallel()
		r, out := newRunner()
		env := &registry.Environment{
			Name:      "neutron",
			ChangeDir: t.TempDir(),
			Commands: []registry.Command{
				command("sh", "-c", "echo first"),
				command("sh", "-c", "echo second"),
			},
		}

		code, err := r.RunEnvironment(context.Background(), env)
		require.NoError(t, err)
		require.Equal(t, 0, code)
		require.Contains(t, out.String(), "first")
		require.Contains(t, out.String(), "second")
	})

	t.Run("a failing command aborts the remaining ones", func(t *testing.T) {
		t.Parallel()
		r, _ := newRunner()
		dir := t.TempDir()
		marker := filepath.Join(dir, "ran-anyway")
		env := &registry.Environment{
			Name:      "neutron",
			ChangeDir: dir,
			Commands: []registry.Command{
				command("false"),
				command("touch", marker),
			},
		}

		code, err := r.RunEnvironment(context.Background(), env)
		require.Error(t, err)
		require.ErrorIs(t, err, mosrunerrors.ErrCommandFailed)
		require.Equal(t, 1, code)
		testhelpers.ExpectNoFile(t, marker)

		var cmdErr *mosrunerrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "neutron", cmdErr.Env)
		require.Equal(t, []string{"false"}, cmdErr.Argv)
	})

	t.Run("the command's exit code is propagated", func(t *testing.T) {
		t.Parallel()
		r, _ := newRunner()
		env := &registry.Environment{
			Name:      "glance",
			ChangeDir: t.TempDir(),
			Commands:  []registry.Command{command("sh", "-c", "exit 3")},
		}

		code, err := r.RunEnvironment(context.Background(), env)
		require.Error(t, err)
		require.Equal(t, 3, code)

		var cmdErr *mosrunerrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, 3, cmdErr.ExitCode)
	})

	t.Run("commands run in the environment's changedir", func(t *testing.T) {
		t.Parallel()
		r, _ := newRunner()
		dir := t.TempDir()
		env := &registry.Environment{
			Name:      "neutron",
			ChangeDir: dir,
			Commands:  []registry.Command{command("touch", "here")},
		}

		code, err := r.RunEnvironment(context.Background(), env)
		require.NoError(t, err)
		require.Equal(t, 0, code)
		testhelpers.ExpectFileExists(t, filepath.Join(dir, "here"))
	})

	t.Run("setenv values reach the child process", func(t *testing.T) {
		t.Parallel()
		r, _ := newRunner()
		env := &registry.Environment{
			Name:      "neutron",
			ChangeDir: t.TempDir(),
			SetEnv:    map[string]string{"OS_DEBUG": "1"},
			Commands: []registry.Command{
				command("sh", "-c", `test "$OS_DEBUG" = 1`),
				command("sh", "-c", `test "$MOSRUN_ENV" = neutron`),
			},
		}

		code, err := r.RunEnvironment(context.Background(), env)
		require.NoError(t, err)
		require.Equal(t, 0, code)
	})

	t.Run("empty argv entries are skipped", func(t *testing.T) {
		t.Parallel()
		r, _ := newRunner()
		env := &registry.Environment{
			Name:      "neutron",
			ChangeDir: t.TempDir(),
			Commands:  []registry.Command{{}, command("true")},
		}

		code, err := r.RunEnvironment(context.Background(), env)
		require.NoError(t, err)
		require.Equal(t, 0, code)
	})
}

func TestMergedEnviron(t *testing.T) {
	env := &registry.Environment{
		Name:   "murano",
		SetEnv: map[string]string{"B_VAR": "2", "A_VAR": "1"},
	}

	environ := runpkg.MergedEnviron(env)
	n := len(environ)
	require.GreaterOrEqual(t, n, 3)
	require.Equal(t, "MOSRUN_ENV=murano", environ[n-3])
	require.Equal(t, "A_VAR=1", environ[n-2])
	require.Equal(t, "B_VAR=2", environ[n-1])
}
