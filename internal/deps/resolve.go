package deps

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// ResolveGitHubRef resolves the ref of a GitHub-hosted VCS dependency to a
// commit SHA via the GitHub API. A token is read from GITHUB_TOKEN or
// GH_TOKEN when present; unauthenticated requests are used otherwise.
func ResolveGitHubRef(ctx context.Context, spec Spec) (string, error) {
	if spec.Kind != KindVCS {
		return "", fmt.Errorf("dependency %q is not a VCS reference", spec.Raw)
	}

	owner, repo, err := githubOwnerRepo(spec.URL)
	if err != nil {
		return "", err
	}

	client := newGitHubClient(ctx)

	ref := spec.Ref
	if ref == "" {
		ref = "HEAD"
	}

	sha, _, err := client.Repositories.GetCommitSHA1(ctx, owner, repo, ref, "")
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s@%s: %w", spec.URL, ref, err)
	}
	return sha, nil
}

// githubOwnerRepo extracts owner and repository name from a GitHub clone URL
func githubOwnerRepo(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid VCS URL %q: %w", rawURL, err)
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", "", fmt.Errorf("ref resolution is only supported for github.com, got %q", u.Host)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid GitHub repository path %q", u.Path)
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// newGitHubClient creates a GitHub client, authenticated when a token is available
func newGitHubClient(ctx context.Context) *github.Client {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}
