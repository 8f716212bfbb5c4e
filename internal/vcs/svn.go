package vcs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// commandRunner executes an external command and returns its stdout.
// Extracted so tests can substitute canned `svn info` transcripts.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// svnInfo is the subset of `svn info` the generator cares about.
type svnInfo struct {
	revision string
	url      string
}

// svnInspector reads repository identity from a Subversion working copy by
// shelling out to `svn info`. There is no maintained Go Subversion library,
// and the svn client is present wherever a working copy was checked out.
type svnInspector struct {
	root   string
	runner commandRunner

	// cached result of the single `svn info` invocation
	info *svnInfo
}

// openSvn recognizes a Subversion working copy by its .svn administrative
// directory, walking from root up through its parents the same way the git
// backend detects .git. Returns ErrNotVersionControlled when no ancestor
// carries one.
func openSvn(root string) (*svnInspector, error) {
	dir, err := filepath.Abs(root)
	if err != nil {
		return nil, ErrNotVersionControlled
	}

	for {
		stat, err := os.Stat(filepath.Join(dir, ".svn"))
		if err == nil && stat.IsDir() {
			return &svnInspector{root: dir, runner: runCommand}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNotVersionControlled
		}
		dir = parent
	}
}

func (s *svnInspector) Kind() Kind { return KindSubversion }

// Revision returns the working copy revision number as a string.
func (s *svnInspector) Revision(ctx context.Context) (string, error) {
	info, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	return info.revision, nil
}

// RemoteURL returns the URL the working copy was checked out from.
func (s *svnInspector) RemoteURL(ctx context.Context) (string, error) {
	info, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	if info.url == "" {
		return "", ErrNoRemote
	}

	return info.url, nil
}

// load runs `svn info` once and caches the parsed result for the lifetime of
// the inspector. The generator is single-shot, so no locking is needed.
func (s *svnInspector) load(ctx context.Context) (*svnInfo, error) {
	if s.info != nil {
		return s.info, nil
	}

	out, err := s.runner(ctx, "svn", "info", s.root)
	if err != nil {
		return nil, fmt.Errorf("running svn info in %q: %w", s.root, err)
	}

	info, err := parseSvnInfo(out)
	if err != nil {
		return nil, err
	}

	s.info = &info
	return s.info, nil
}

// parseSvnInfo extracts the Revision and URL entries from plain `svn info`
// output.
func parseSvnInfo(out []byte) (svnInfo, error) {
	var info svnInfo

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if value, found := strings.CutPrefix(line, "Revision: "); found {
			info.revision = strings.TrimSpace(value)
		}
		if value, found := strings.CutPrefix(line, "URL: "); found {
			info.url = strings.TrimSpace(value)
		}
	}

	if info.revision == "" {
		return svnInfo{}, fmt.Errorf("%w: no Revision entry", ErrMalformedSvnInfo)
	}

	return info, nil
}
