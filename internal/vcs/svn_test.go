package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const svnInfoTranscript = `Path: mta
Working Copy Root Path: /build/mta
URL: svn://addr/app/trunk/mta
Relative URL: ^/trunk/mta
Repository Root: svn://addr/app
Repository UUID: 2c1fca21-9b2f-4e3a-8c3c-111111111111
Revision: 615
Node Kind: directory
Schedule: normal
Last Changed Author: user-name
Last Changed Rev: 615
Last Changed Date: 2019-01-30 20:50:59 +0300 (Wed, 30 Jan 2019)
`

func newSvnWorkingCopy(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".svn"), 0o755))
	return root
}

// ── parseSvnInfo ──────────────────────────────────────────────────────────────

func TestParseSvnInfo_FullTranscript(t *testing.T) {
	info, err := parseSvnInfo([]byte(svnInfoTranscript))

	require.NoError(t, err)
	assert.Equal(t, "615", info.revision)
	assert.Equal(t, "svn://addr/app/trunk/mta", info.url)
}

func TestParseSvnInfo_MissingRevision(t *testing.T) {
	_, err := parseSvnInfo([]byte("Path: mta\nURL: svn://addr/app\n"))

	require.ErrorIs(t, err, ErrMalformedSvnInfo)
}

func TestParseSvnInfo_MissingURL(t *testing.T) {
	info, err := parseSvnInfo([]byte("Revision: 42\n"))

	require.NoError(t, err)
	assert.Equal(t, "42", info.revision)
	assert.Empty(t, info.url)
}

func TestParseSvnInfo_Empty(t *testing.T) {
	_, err := parseSvnInfo(nil)

	require.ErrorIs(t, err, ErrMalformedSvnInfo)
}

// ── svnInspector ──────────────────────────────────────────────────────────────

func TestDetect_SvnWorkingCopy(t *testing.T) {
	root := newSvnWorkingCopy(t)

	inspector, err := Detect(root)

	require.NoError(t, err)
	assert.Equal(t, KindSubversion, inspector.Kind())
}

func TestDetect_SvnFromSubdirectory(t *testing.T) {
	root := newSvnWorkingCopy(t)
	sub := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	inspector, err := Detect(sub)

	require.NoError(t, err)
	assert.Equal(t, KindSubversion, inspector.Kind())
}

func TestOpenSvn_ResolvesWorkingCopyRoot(t *testing.T) {
	root := newSvnWorkingCopy(t)
	sub := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	inspector, err := openSvn(sub)

	require.NoError(t, err)
	// svn info must run against the working copy top, not the subdirectory
	expected, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, expected, inspector.root)
}

func TestSvnInspector_RevisionAndURL(t *testing.T) {
	inspector := &svnInspector{
		root: "/build/mta",
		runner: func(_ context.Context, name string, args ...string) ([]byte, error) {
			assert.Equal(t, "svn", name)
			assert.Equal(t, []string{"info", "/build/mta"}, args)
			return []byte(svnInfoTranscript), nil
		},
	}

	ctx := context.Background()

	revision, err := inspector.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, "615", revision)

	url, err := inspector.RemoteURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "svn://addr/app/trunk/mta", url)
}

func TestSvnInspector_RunsSvnInfoOnce(t *testing.T) {
	calls := 0
	inspector := &svnInspector{
		root: ".",
		runner: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			calls++
			return []byte(svnInfoTranscript), nil
		},
	}

	ctx := context.Background()
	_, err := inspector.Revision(ctx)
	require.NoError(t, err)
	_, err = inspector.RemoteURL(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "svn info must be invoked once per inspector")
}

func TestSvnInspector_RunnerFailure(t *testing.T) {
	bang := errors.New("svn: command not found")
	inspector := &svnInspector{
		root: ".",
		runner: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, bang
		},
	}

	_, err := inspector.Revision(context.Background())

	require.ErrorIs(t, err, bang)
}

func TestSvnInspector_NoURLReportsNoRemote(t *testing.T) {
	inspector := &svnInspector{
		root: ".",
		runner: func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return []byte("Revision: 7\n"), nil
		},
	}

	_, err := inspector.RemoteURL(context.Background())

	require.ErrorIs(t, err, ErrNoRemote)
}

func TestOpenSvn_FileNamedDotSvn(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".svn"), []byte("not a dir"), 0o644))

	_, err := openSvn(root)

	require.ErrorIs(t, err, ErrNotVersionControlled)
}
