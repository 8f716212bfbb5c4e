package vcs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initGitRepo creates a Git repository with a single commit in a temp
// directory and returns its path and the commit hash. When remoteURL is
// non-empty an origin remote is configured as well.
func initGitRepo(t *testing.T, remoteURL string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("main.go")
	require.NoError(t, err)

	hash, err := worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	if remoteURL != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: originRemote,
			URLs: []string{remoteURL},
		})
		require.NoError(t, err)
	}

	return dir, hash.String()
}

func TestDetect_GitTree(t *testing.T) {
	root, hash := initGitRepo(t, "https://example.com/repo.git")

	inspector, err := Detect(root)
	require.NoError(t, err)
	assert.Equal(t, KindGit, inspector.Kind())

	ctx := context.Background()

	revision, err := inspector.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, hash, revision)

	url, err := inspector.RemoteURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/repo.git", url)
}

func TestDetect_GitTreeFromSubdirectory(t *testing.T) {
	root, hash := initGitRepo(t, "https://example.com/repo.git")
	sub := filepath.Join(root, "internal", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	inspector, err := Detect(sub)
	require.NoError(t, err)
	assert.Equal(t, KindGit, inspector.Kind())

	revision, err := inspector.Revision(context.Background())
	require.NoError(t, err)
	assert.Equal(t, hash, revision)
}

func TestGitInspector_NoRemote(t *testing.T) {
	root, _ := initGitRepo(t, "")

	inspector, err := Detect(root)
	require.NoError(t, err)

	_, err = inspector.RemoteURL(context.Background())
	require.ErrorIs(t, err, ErrNoRemote)
}

func TestGitInspector_RevisionStableAcrossRuns(t *testing.T) {
	root, _ := initGitRepo(t, "")
	ctx := context.Background()

	first, err := Detect(root)
	require.NoError(t, err)
	firstRevision, err := first.Revision(ctx)
	require.NoError(t, err)

	second, err := Detect(root)
	require.NoError(t, err)
	secondRevision, err := second.Revision(ctx)
	require.NoError(t, err)

	assert.Equal(t, firstRevision, secondRevision)
}

func TestDetect_PlainDirectory(t *testing.T) {
	inspector, err := Detect(t.TempDir())

	assert.Nil(t, inspector)
	require.ErrorIs(t, err, ErrNotVersionControlled)
}

func TestDetect_GitWinsOverSvn(t *testing.T) {
	root, _ := initGitRepo(t, "")
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".svn"), 0o755))

	inspector, err := Detect(root)
	require.NoError(t, err)
	assert.Equal(t, KindGit, inspector.Kind())
}
