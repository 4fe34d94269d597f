package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mosrun.dev/mosrun/internal/deps"
	mosrunerrors "mosrun.dev/mosrun/internal/errors"
	"mosrun.dev/mosrun/internal/registry"
)

func testPaths() registry.Paths {
	return registry.Paths{
		ToxIniDir: "/project",
		EnvDir:    "/project/.mosrun/neutron",
		HomeDir:   "/home/jenkins",
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("posargs are spliced into the command", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			Commands: []registry.Command{{
				Raw:  "py.test mos_tests/neutron {posargs}",
				Argv: []string{"py.test", "mos_tests/neutron", "{posargs}"},
			}},
		}

		resolved, err := registry.Resolve(env, []string{"-k", "smoke"}, testPaths())
		require.NoError(t, err)
		require.Equal(t,
			[]string{"py.test", "mos_tests/neutron", "-k", "smoke"},
			resolved.Commands[0].Argv)
		require.Equal(t, "py.test mos_tests/neutron -k smoke", resolved.Commands[0].Raw)
	})

	t.Run("empty posargs drop the placeholder token", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			Commands: []registry.Command{{
				Raw:  "py.test mos_tests/neutron {posargs}",
				Argv: []string{"py.test", "mos_tests/neutron", "{posargs}"},
			}},
		}

		resolved, err := registry.Resolve(env, nil, testPaths())
		require.NoError(t, err)
		require.Equal(t, []string{"py.test", "mos_tests/neutron"}, resolved.Commands[0].Argv)
	})

	t.Run("path placeholders expand everywhere", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			Deps: []deps.Spec{deps.Parse("-r{toxinidir}/requirements.txt")},
			SetEnv: map[string]string{
				"VIRTUAL_ENV": "{envdir}",
				"CONFIG_HOME": "{homedir}/.config",
			},
			Commands: []registry.Command{{
				Raw:  "flake8 {toxinidir}/mos_tests",
				Argv: []string{"flake8", "{toxinidir}/mos_tests"},
			}},
		}

		resolved, err := registry.Resolve(env, nil, testPaths())
		require.NoError(t, err)
		require.Equal(t, "/project/requirements.txt", resolved.Deps[0].Path)
		require.Equal(t, "/project/.mosrun/neutron", resolved.SetEnv["VIRTUAL_ENV"])
		require.Equal(t, "/home/jenkins/.config", resolved.SetEnv["CONFIG_HOME"])
		require.Equal(t, []string{"flake8", "/project/mos_tests"}, resolved.Commands[0].Argv)
	})

	t.Run("changedir defaults to the config directory", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{Name: "neutron"}

		resolved, err := registry.Resolve(env, nil, testPaths())
		require.NoError(t, err)
		require.Equal(t, "/project", resolved.ChangeDir)
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			Commands: []registry.Command{{
				Raw:  "py.test {posargs}",
				Argv: []string{"py.test", "{posargs}"},
			}},
		}

		once, err := registry.Resolve(env, []string{"-k", "smoke"}, testPaths())
		require.NoError(t, err)
		twice, err := registry.Resolve(once, []string{"-k", "other"}, testPaths())
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})

	t.Run("the source definition is not mutated", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			Commands: []registry.Command{{
				Raw:  "py.test {posargs}",
				Argv: []string{"py.test", "{posargs}"},
			}},
		}

		_, err := registry.Resolve(env, []string{"-k", "smoke"}, testPaths())
		require.NoError(t, err)
		require.False(t, env.Resolved)
		require.Equal(t, []string{"py.test", "{posargs}"}, env.Commands[0].Argv)
	})

	t.Run("unknown placeholders are left untouched", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			Commands: []registry.Command{{
				Raw:  "py.test {custom}",
				Argv: []string{"py.test", "{custom}"},
			}},
		}

		resolved, err := registry.Resolve(env, nil, testPaths())
		require.NoError(t, err)
		require.Equal(t, []string{"py.test", "{custom}"}, resolved.Commands[0].Argv)
	})

	t.Run("missing path context is an error", func(t *testing.T) {
		t.Parallel()
		env := &registry.Environment{
			Name: "neutron",
			SetEnv: map[string]string{
				"CONFIG_HOME": "{homedir}/.config",
			},
		}

		paths := testPaths()
		paths.HomeDir = ""
		_, err := registry.Resolve(env, nil, paths)
		require.Error(t, err)
		require.ErrorIs(t, err, mosrunerrors.ErrUnresolvedPlaceholder)

		var unresolved *mosrunerrors.UnresolvedPlaceholderError
		require.ErrorAs(t, err, &unresolved)
		require.Equal(t, "{homedir}", unresolved.Placeholder)
	})
}

func TestDefaultPaths(t *testing.T) {
	t.Parallel()

	reg := loadSample(t)
	paths := reg.DefaultPaths("neutron")
	require.Equal(t, reg.Dir(), paths.ToxIniDir)
	require.Contains(t, paths.EnvDir, ".mosrun")
	require.Contains(t, paths.EnvDir, "neutron")
}
