package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromptsNonInteractive(t *testing.T) {
	t.Setenv("MOSRUN_NON_INTERACTIVE", "1")

	_, err := PromptEnvironments([]string{"neutron", "glance"}, nil)
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = PromptConfirm("Reinstall dependencies?", true)
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}
