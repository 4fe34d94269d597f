// Package testhelpers provides testing utilities for the mosrun CLI:
// a scene system for temporary projects with a configuration file, and
// custom assertions.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigFileName is the configuration file written into every scene
const ConfigFileName = "tox.ini"

// Scene is a temporary project directory holding a configuration file.
// Safe for parallel tests; every scene gets its own directory.
type Scene struct {
	T          *testing.T
	Dir        string
	ConfigPath string
}

// NewScene creates a project directory with the given configuration content
func NewScene(t *testing.T, config string) *Scene {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0600))

	return &Scene{
		T:          t,
		Dir:        dir,
		ConfigPath: configPath,
	}
}

// WriteFile writes a file relative to the scene directory and returns its path
func (s *Scene) WriteFile(rel, content string) string {
	s.T.Helper()
	path := filepath.Join(s.Dir, rel)
	require.NoError(s.T, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(s.T, os.WriteFile(path, []byte(content), 0600))
	return path
}

// Path returns a path relative to the scene directory
func (s *Scene) Path(rel string) string {
	return filepath.Join(s.Dir, rel)
}

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
