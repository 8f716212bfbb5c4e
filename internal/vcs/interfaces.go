// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vcs abstracts over the version-control system holding the source
// tree. The generator only needs two facts from it: the checked-out revision
// identifier and the remote origin URL. Both are free-form strings so that
// centralized (sequential numeric revision) and distributed (content hash)
// systems are served by the same capability.
package vcs

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/vcs_mock.go -package=mock

// Kind identifies the version-control system behind an [Inspector].
type Kind string

const (
	// KindGit marks a Git working tree.
	KindGit Kind = "git"
	// KindSubversion marks a Subversion working copy.
	KindSubversion Kind = "svn"
)

// Inspector reads repository identity facts from a source tree.
type Inspector interface {
	// Kind reports which version-control system backs the tree.
	Kind() Kind

	// Revision returns the currently checked-out revision identifier:
	// a commit hash for Git, a sequential revision number for Subversion.
	Revision(ctx context.Context) (string, error)

	// RemoteURL returns the canonical remote location of the repository.
	// Returns ErrNoRemote when the tree has no remote configured.
	RemoteURL(ctx context.Context) (string, error)
}
