package actions

import (
	"fmt"
	"path/filepath"
	"strings"

	"mosrun.dev/mosrun/internal/deps"
	"mosrun.dev/mosrun/internal/registry"
	"mosrun.dev/mosrun/internal/runtime"
	"mosrun.dev/mosrun/internal/tui"
)

// DepsOptions contains options for the deps command
type DepsOptions struct {
	EnvName string
	// Install shells out to pip to install the dependencies
	Install bool
	// Resolve pins VCS refs to commit SHAs via the GitHub API
	Resolve bool
	// Fetch clones VCS dependency sources into the environment directory
	Fetch bool
}

// DepsAction inspects or installs an environment's dependencies
func DepsAction(ctx *runtime.Context, opts DepsOptions) error {
	reg := ctx.Registry
	splog := ctx.Splog

	env, err := reg.Lookup(opts.EnvName)
	if err != nil {
		return err
	}

	paths := reg.DefaultPaths(env.Name)
	resolved, err := registry.Resolve(env, nil, paths)
	if err != nil {
		return err
	}

	if len(resolved.Deps) == 0 {
		splog.Info("environment %s declares no dependencies", env.Name)
		return nil
	}

	if opts.Install {
		return installDeps(ctx, resolved, paths)
	}

	for _, spec := range resolved.Deps {
		switch {
		case opts.Resolve && spec.Kind == deps.KindVCS:
			sha, err := deps.ResolveGitHubRef(ctx.Context, spec)
			if err != nil {
				return err
			}
			splog.Info("%-14s %s %s", spec.Kind, spec.Raw, tui.ColorDim(sha))
		case opts.Fetch && spec.Kind == deps.KindVCS:
			dest := filepath.Join(paths.EnvDir, "src", vcsDirName(spec))
			label := fmt.Sprintf("Fetching %s", spec.URL)
			err := tui.RunWithSpinner(splog, label, func() error {
				return deps.FetchSource(ctx.Context, spec, dest)
			})
			if err != nil {
				return err
			}
			splog.Info("%-14s %s -> %s", spec.Kind, spec.URL, dest)
		default:
			splog.Info("%-14s %s", spec.Kind, spec.Raw)
		}
	}
	return nil
}

// vcsDirName picks a checkout directory name for a VCS dependency
func vcsDirName(spec deps.Spec) string {
	if spec.Egg != "" {
		return spec.Egg
	}
	base := spec.URL[strings.LastIndex(spec.URL, "/")+1:]
	return strings.TrimSuffix(base, ".git")
}
