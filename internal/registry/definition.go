package registry

import (
	"mosrun.dev/mosrun/internal/deps"
)

// Command is one command line of an environment, tokenized into argv
type Command struct {
	Raw  string
	Argv []string
}

// Environment is the definition of one named test environment
type Environment struct {
	Name      string
	Deps      []deps.Spec
	SetEnv    map[string]string
	Commands  []Command
	ChangeDir string

	// Resolved is true once placeholders have been substituted
	Resolved bool
}

// VirtualEnv returns the VIRTUAL_ENV value configured for this
// environment, or "" when none is set
func (e *Environment) VirtualEnv() string {
	return e.SetEnv["VIRTUAL_ENV"]
}

// clone returns a deep copy, so resolution never mutates the registry
func (e *Environment) clone() *Environment {
	out := &Environment{
		Name:      e.Name,
		ChangeDir: e.ChangeDir,
		Resolved:  e.Resolved,
	}
	out.Deps = append([]deps.Spec(nil), e.Deps...)
	out.SetEnv = make(map[string]string, len(e.SetEnv))
	for k, v := range e.SetEnv {
		out.SetEnv[k] = v
	}
	out.Commands = make([]Command, len(e.Commands))
	for i, cmd := range e.Commands {
		out.Commands[i] = Command{
			Raw:  cmd.Raw,
			Argv: append([]string(nil), cmd.Argv...),
		}
	}
	return out
}
