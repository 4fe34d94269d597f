package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTypes(t *testing.T) {
	t.Parallel()

	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		err := NewParseError("tox.ini", 7, "expected key = value, got %q", "oops")
		require.ErrorIs(t, err, ErrParse)
		require.Equal(t, "tox.ini:7: expected key = value, got \"oops\"", err.Error())

		noLine := NewParseError("tox.ini", 0, "unreadable")
		require.Equal(t, "tox.ini: unreadable", noLine.Error())
	})

	t.Run("env not found error", func(t *testing.T) {
		t.Parallel()
		err := NewEnvNotFoundError("murano")
		require.ErrorIs(t, err, ErrEnvNotFound)
		require.Contains(t, err.Error(), "murano")
	})

	t.Run("unresolved placeholder error", func(t *testing.T) {
		t.Parallel()
		err := NewUnresolvedPlaceholderError("{homedir}", "{homedir}/.config")
		require.ErrorIs(t, err, ErrUnresolvedPlaceholder)
		require.Contains(t, err.Error(), "{homedir}")
	})

	t.Run("command error wraps its cause", func(t *testing.T) {
		t.Parallel()
		cause := stderrors.New("exit status 2")
		err := NewCommandError("neutron", []string{"py.test", "mos_tests/neutron"}, 2, cause)
		require.ErrorIs(t, err, ErrCommandFailed)
		require.ErrorIs(t, err, cause)
		require.Equal(t, 2, err.ExitCode)
		require.Contains(t, err.Error(), "py.test mos_tests/neutron")
	})

	t.Run("sentinels do not match each other", func(t *testing.T) {
		t.Parallel()
		require.NotErrorIs(t, NewEnvNotFoundError("x"), ErrParse)
		require.NotErrorIs(t, NewParseError("tox.ini", 1, "bad"), ErrCommandFailed)
	})
}
