package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestSplog(t *testing.T) (*Splog, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	splog, err := NewSplogWithConfig(&buf, "")
	require.NoError(t, err)
	return splog, &buf
}

func TestSplog(t *testing.T) {
	t.Run("info writes the message", func(t *testing.T) {
		splog, buf := newTestSplog(t)
		splog.Info("running %s", "neutron")
		require.Equal(t, "running neutron\n", buf.String())
	})

	t.Run("warn carries the warning prefix", func(t *testing.T) {
		splog, buf := newTestSplog(t)
		splog.Warn("environment %s declares no commands", "doc_check")
		require.Contains(t, buf.String(), "environment doc_check declares no commands")
		require.Contains(t, buf.String(), "⚠️")
	})

	t.Run("debug is silent unless DEBUG is set", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		splog, buf := newTestSplog(t)
		splog.Debug("running environments: %v", []string{"neutron"})
		require.Empty(t, buf.String())
	})

	t.Run("quiet mode suppresses console output", func(t *testing.T) {
		splog, buf := newTestSplog(t)
		require.False(t, splog.IsQuiet())

		splog.SetQuiet(true)
		require.True(t, splog.IsQuiet())
		splog.Info("hidden")
		require.Empty(t, buf.String())

		splog.SetQuiet(false)
		splog.Info("visible")
		require.Equal(t, "visible\n", buf.String())
	})
}
