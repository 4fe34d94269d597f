package registry

import (
	"os"
	"path/filepath"
	"strings"

	"mosrun.dev/mosrun/internal/deps"
	mosrunerrors "mosrun.dev/mosrun/internal/errors"
)

// Placeholder names substituted during resolution
const (
	placeholderPosargs   = "{posargs}"
	placeholderToxIniDir = "{toxinidir}"
	placeholderEnvDir    = "{envdir}"
	placeholderHomeDir   = "{homedir}"
)

// Paths supplies the path context for placeholder resolution
type Paths struct {
	ToxIniDir string
	EnvDir    string
	HomeDir   string
}

// DefaultPaths builds the path context for an environment of this
// registry: {toxinidir} is the config file's directory, {envdir} is a
// per-environment working directory under it, {homedir} is the user's
// home directory when available.
func (r *Registry) DefaultPaths(envName string) Paths {
	paths := Paths{
		ToxIniDir: r.Dir(),
		EnvDir:    filepath.Join(r.Dir(), ".mosrun", envName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths.HomeDir = home
	}
	return paths
}

// Resolve substitutes placeholders in a definition and returns the
// resolved copy. The registry's stored definition is never mutated.
// Resolving an already-resolved definition is a no-op.
func Resolve(env *Environment, posargs []string, paths Paths) (*Environment, error) {
	if env.Resolved {
		return env, nil
	}

	out := env.clone()
	joined := strings.Join(posargs, " ")

	for i, cmd := range out.Commands {
		argv, err := expandArgv(cmd.Argv, posargs, joined, paths)
		if err != nil {
			return nil, err
		}
		raw, err := expandString(cmd.Raw, joined, paths)
		if err != nil {
			return nil, err
		}
		out.Commands[i] = Command{Raw: raw, Argv: argv}
	}

	for i, spec := range out.Deps {
		raw, err := expandString(spec.Raw, joined, paths)
		if err != nil {
			return nil, err
		}
		if raw != spec.Raw {
			out.Deps[i] = deps.Parse(raw)
		}
	}

	for k, v := range out.SetEnv {
		expanded, err := expandString(v, joined, paths)
		if err != nil {
			return nil, err
		}
		out.SetEnv[k] = expanded
	}

	changeDir, err := expandString(out.ChangeDir, joined, paths)
	if err != nil {
		return nil, err
	}
	if changeDir == "" {
		changeDir = paths.ToxIniDir
	}
	out.ChangeDir = changeDir

	out.Resolved = true
	return out, nil
}

// expandArgv substitutes placeholders in a token list. A token that is
// exactly {posargs} is spliced into separate tokens; within a larger
// token, posargs are joined with spaces.
func expandArgv(argv []string, posargs []string, joined string, paths Paths) ([]string, error) {
	out := make([]string, 0, len(argv)+len(posargs))
	for _, tok := range argv {
		if tok == placeholderPosargs {
			out = append(out, posargs...)
			continue
		}
		expanded, err := expandString(tok, joined, paths)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// expandString substitutes the path placeholders and {posargs} in a
// single string. Placeholders whose path context is unavailable are an
// UnresolvedPlaceholderError; unknown {...} sequences are left untouched,
// which keeps resolution idempotent.
func expandString(s string, joined string, paths Paths) (string, error) {
	if !strings.Contains(s, "{") {
		return s, nil
	}
	for placeholder, value := range map[string]string{
		placeholderToxIniDir: paths.ToxIniDir,
		placeholderEnvDir:    paths.EnvDir,
		placeholderHomeDir:   paths.HomeDir,
	} {
		if !strings.Contains(s, placeholder) {
			continue
		}
		if value == "" {
			return "", mosrunerrors.NewUnresolvedPlaceholderError(placeholder, s)
		}
		s = strings.ReplaceAll(s, placeholder, value)
	}
	s = strings.ReplaceAll(s, placeholderPosargs, joined)
	return s, nil
}
