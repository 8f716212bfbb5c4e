package vcs

import "errors"

var (
	// ErrNotVersionControlled indicates that the source root is not under
	// any recognized version-control system. Callers substitute placeholder
	// values; a missing VCS must never fail a build.
	ErrNotVersionControlled = errors.New("source root is not a version-controlled tree")

	// ErrNoRemote indicates the tree has no remote origin configured.
	ErrNoRemote = errors.New("no remote origin configured")

	// ErrMalformedSvnInfo indicates `svn info` output missing the expected
	// Revision or URL entries.
	ErrMalformedSvnInfo = errors.New("malformed svn info output")
)
