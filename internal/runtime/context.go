// Package runtime provides a context type that holds the registry and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mosrun.dev/mosrun/internal/registry"
	"mosrun.dev/mosrun/internal/tui"
)

// ConfigFileNames are the configuration file names searched for, in order
var ConfigFileNames = []string{"tox.ini", "mosrun.ini"}

// Context provides access to the registry and output for commands
type Context struct {
	Registry    *registry.Registry
	Splog       *tui.Splog
	ConfigPath  string
	ProjectRoot string
	Context     context.Context
}

// NewContext creates a new context around a loaded registry
func NewContext(reg *registry.Registry) *Context {
	return &Context{
		Registry:    reg,
		Splog:       newSplog(),
		ConfigPath:  reg.Path(),
		ProjectRoot: reg.Dir(),
		Context:     context.Background(),
	}
}

// newSplog builds the logger, with file logging when a log path is usable
func newSplog() *tui.Splog {
	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.GetLogFilePath())
	if err != nil {
		return tui.NewSplog()
	}
	return splog
}

// GetContext loads the registry and builds the command context.
// When configPath is empty, the configuration file is located by walking
// up from the working directory.
func GetContext(configPath string) (*Context, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath, err = FindConfigFile(wd)
		if err != nil {
			return nil, err
		}
	}

	reg, err := registry.Load(configPath)
	if err != nil {
		return nil, err
	}

	return NewContext(reg), nil
}

// FindConfigFile walks up from startDir looking for a configuration file
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no tox.ini found in %s or any parent directory; pass --config", startDir)
		}
		dir = parent
	}
}
