package vcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// originRemote is the remote the generator reports as the canonical
// repository location.
const originRemote = "origin"

// gitInspector reads repository identity from a Git working tree through
// go-git, so no git binary is required on the build host.
type gitInspector struct {
	repo *git.Repository
}

// openGit opens the Git repository containing root. Returns
// ErrNotVersionControlled when root is not inside a Git working tree.
func openGit(root string) (*gitInspector, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotVersionControlled
		}
		return nil, fmt.Errorf("opening git repository at %q: %w", root, err)
	}

	return &gitInspector{repo: repo}, nil
}

func (g *gitInspector) Kind() Kind { return KindGit }

// Revision returns the full hash of the commit HEAD points at.
func (g *gitInspector) Revision(_ context.Context) (string, error) {
	head, err := g.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving git HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// RemoteURL returns the first fetch URL of the origin remote.
func (g *gitInspector) RemoteURL(_ context.Context) (string, error) {
	remote, err := g.repo.Remote(originRemote)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", ErrNoRemote
		}
		return "", fmt.Errorf("reading git remote %q: %w", originRemote, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ErrNoRemote
	}

	return urls[0], nil
}
