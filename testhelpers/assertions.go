package testhelpers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// ExpectFileExists asserts that a file exists at the given path
func ExpectFileExists(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.NoError(t, err, "expected file %s to exist", path)
}

// ExpectNoFile asserts that no file exists at the given path
func ExpectNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "expected file %s not to exist", path)
}
