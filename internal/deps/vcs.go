package deps

import (
	"context"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// FetchSource clones a VCS dependency into destDir and checks out its ref.
// An existing clone is reused; only the checkout is repeated.
func FetchSource(ctx context.Context, spec Spec, destDir string) error {
	if spec.Kind != KindVCS {
		return fmt.Errorf("dependency %q is not a VCS reference", spec.Raw)
	}

	repo, err := openOrClone(ctx, spec.URL, destDir)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", spec.URL, err)
	}

	if spec.Ref == "" {
		return nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree for %s: %w", destDir, err)
	}

	// The ref may be a branch, a tag, or a commit hash; try in that order
	candidates := []gogit.CheckoutOptions{
		{Branch: plumbing.NewBranchReferenceName(spec.Ref)},
		{Branch: plumbing.NewRemoteReferenceName("origin", spec.Ref)},
		{Branch: plumbing.NewTagReferenceName(spec.Ref)},
		{Hash: plumbing.NewHash(spec.Ref)},
	}
	var lastErr error
	for _, opts := range candidates {
		if err := worktree.Checkout(&opts); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("failed to checkout ref %q of %s: %w", spec.Ref, spec.URL, lastErr)
}

func openOrClone(ctx context.Context, url, destDir string) (*gogit.Repository, error) {
	if _, err := os.Stat(destDir); err == nil {
		if repo, err := gogit.PlainOpen(destDir); err == nil {
			return repo, nil
		}
	}
	return gogit.PlainCloneContext(ctx, destDir, false, &gogit.CloneOptions{
		URL: url,
	})
}
