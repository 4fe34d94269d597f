package registry

import (
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"mosrun.dev/mosrun/internal/config"
	"mosrun.dev/mosrun/internal/deps"
	mosrunerrors "mosrun.dev/mosrun/internal/errors"
)

// Registry is the immutable set of environment definitions declared in
// one configuration file. It is built once per invocation by Load.
type Registry struct {
	path      string
	order     []string
	envs      map[string]*Environment
	defaults  []string
	skipSDist bool
	toxExtra  map[string]string
	flake8    map[string]string
}

// Load parses the configuration file at path and builds the registry.
// Named sections inherit deps, commands, setenv and changedir from the
// base [testenv] section unless they declare their own.
func Load(path string) (*Registry, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		path:      abs,
		envs:      map[string]*Environment{},
		defaults:  cfg.EnvList,
		skipSDist: cfg.SkipSDist,
		toxExtra:  cfg.ToxExtra,
		flake8:    cfg.Flake8,
	}

	for _, name := range cfg.EnvOrder {
		env, err := buildEnvironment(path, cfg.Base, cfg.Envs[name])
		if err != nil {
			return nil, err
		}
		reg.order = append(reg.order, name)
		reg.envs[name] = env
	}

	return reg, nil
}

// buildEnvironment merges a named section over the base [testenv] section
// and tokenizes its command lines
func buildEnvironment(path string, base, settings *config.EnvSettings) (*Environment, error) {
	env := &Environment{
		Name:   settings.Name,
		SetEnv: map[string]string{},
	}

	rawDeps := settings.Deps
	rawCommands := settings.Commands
	env.ChangeDir = settings.ChangeDir

	if base != nil {
		if !settings.Declared("deps") {
			rawDeps = base.Deps
		}
		if !settings.Declared("commands") {
			rawCommands = base.Commands
		}
		if !settings.Declared("changedir") {
			env.ChangeDir = base.ChangeDir
		}
		for k, v := range base.SetEnv {
			env.SetEnv[k] = v
		}
	}
	for k, v := range settings.SetEnv {
		env.SetEnv[k] = v
	}

	env.Deps = deps.ParseAll(rawDeps)

	for _, raw := range rawCommands {
		argv, err := shellquote.Split(raw)
		if err != nil {
			return nil, mosrunerrors.NewParseError(path, 0, "invalid command %q in environment %s: %v", raw, settings.Name, err)
		}
		env.Commands = append(env.Commands, Command{Raw: raw, Argv: argv})
	}

	return env, nil
}

// Path returns the absolute path of the configuration file
func (r *Registry) Path() string {
	return r.path
}

// Dir returns the directory containing the configuration file, which is
// the value substituted for {toxinidir}
func (r *Registry) Dir() string {
	return filepath.Dir(r.path)
}

// Names returns the declared environment names in source order
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Defaults returns the [tox] envlist, the environments run when none are
// selected explicitly
func (r *Registry) Defaults() []string {
	return append([]string(nil), r.defaults...)
}

// SkipSDist returns the [tox] skipsdist setting
func (r *Registry) SkipSDist() bool {
	return r.skipSDist
}

// ToxExtra returns the retained [tox] keys mosrun parses but does not act
// on, such as toxworkdir
func (r *Registry) ToxExtra() map[string]string {
	return r.toxExtra
}

// Flake8 returns the retained [flake8] settings
func (r *Registry) Flake8() map[string]string {
	return r.flake8
}

// Lookup returns the definition of the named environment.
// It fails with an EnvNotFoundError when the name is absent.
func (r *Registry) Lookup(name string) (*Environment, error) {
	env, ok := r.envs[name]
	if !ok {
		return nil, mosrunerrors.NewEnvNotFoundError(name)
	}
	return env, nil
}
