package config

import (
	"os"
	"strings"

	mosrunerrors "mosrun.dev/mosrun/internal/errors"
)

// Section names recognized in the configuration file.
const (
	sectionTox     = "tox"
	sectionTestenv = "testenv"
	sectionFlake8  = "flake8"

	testenvPrefix = "testenv:"
)

// EnvSettings holds the raw, uninterpreted settings of one [testenv] section.
// Values are kept in declaration order; placeholders are not yet expanded.
type EnvSettings struct {
	Name      string
	Deps      []string
	Commands  []string
	SetEnv    map[string]string
	ChangeDir string

	// declared tracks which keys were present, so inheritance from the
	// base [testenv] section only fills in what a named section omits.
	declared map[string]bool
}

// Declared returns whether the section itself declared the given key
func (s *EnvSettings) Declared(key string) bool {
	return s.declared[key]
}

// Config is the parsed configuration file: global [tox] settings, the
// base [testenv] section, named environments, and the [flake8] passthrough.
type Config struct {
	Path string

	// [tox]
	EnvList   []string
	SkipSDist bool
	ToxExtra  map[string]string

	// [testenv], nil when absent
	Base *EnvSettings

	// [testenv:<name>] in declaration order
	EnvOrder []string
	Envs     map[string]*EnvSettings

	// [flake8] settings, retained verbatim for the external tool
	Flake8 map[string]string
}

// Load parses the configuration file at path.
// It fails with a ParseError on malformed syntax, unknown section headers,
// or duplicate environment names.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ini, err := parseINI(path, f)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Path:     path,
		ToxExtra: map[string]string{},
		Envs:     map[string]*EnvSettings{},
		Flake8:   map[string]string{},
	}

	for _, section := range ini.Sections {
		switch {
		case section.Name == sectionTox:
			if err := cfg.loadTox(section); err != nil {
				return nil, err
			}
		case section.Name == sectionTestenv:
			base, err := loadEnvSettings(path, section, "")
			if err != nil {
				return nil, err
			}
			cfg.Base = base
		case strings.HasPrefix(section.Name, testenvPrefix):
			name := strings.TrimSpace(strings.TrimPrefix(section.Name, testenvPrefix))
			if name == "" {
				return nil, mosrunerrors.NewParseError(path, section.Line, "empty environment name in [%s]", section.Name)
			}
			env, err := loadEnvSettings(path, section, name)
			if err != nil {
				return nil, err
			}
			cfg.EnvOrder = append(cfg.EnvOrder, name)
			cfg.Envs[name] = env
		case section.Name == sectionFlake8:
			for _, k := range section.Keys {
				cfg.Flake8[k.Name] = k.Value
			}
		default:
			return nil, mosrunerrors.NewParseError(path, section.Line, "unknown section [%s]", section.Name)
		}
	}

	return cfg, nil
}

// loadTox interprets the [tox] section
func (c *Config) loadTox(section *iniSection) error {
	for _, k := range section.Keys {
		switch k.Name {
		case "envlist":
			c.EnvList = splitEnvList(k.Value)
		case "skipsdist":
			c.SkipSDist = parseBool(k.Value)
		default:
			c.ToxExtra[k.Name] = k.Value
		}
	}
	return nil
}

// loadEnvSettings interprets a [testenv] or [testenv:<name>] section
func loadEnvSettings(path string, section *iniSection, name string) (*EnvSettings, error) {
	env := &EnvSettings{
		Name:     name,
		SetEnv:   map[string]string{},
		declared: map[string]bool{},
	}
	for _, k := range section.Keys {
		env.declared[k.Name] = true
		switch k.Name {
		case "deps":
			env.Deps = splitList(k.Value)
		case "commands":
			env.Commands = splitList(k.Value)
		case "changedir":
			env.ChangeDir = strings.TrimSpace(k.Value)
		case "setenv":
			for _, line := range splitList(k.Value) {
				eq := strings.Index(line, "=")
				if eq <= 0 {
					return nil, mosrunerrors.NewParseError(path, k.Line, "malformed setenv entry %q in [%s]", line, section.Name)
				}
				env.SetEnv[strings.TrimSpace(line[:eq])] = strings.TrimSpace(line[eq+1:])
			}
		default:
			// Keys like usedevelop or install_command are accepted but
			// have no effect; mosrun delegates environment construction
			// to external tooling.
		}
	}
	return env, nil
}

// parseBool reads tox-style booleans (True/False, 1/0)
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}
