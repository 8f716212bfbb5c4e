// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Unknown is the sentinel substituted for any metadata field that could not
// be determined. Missing provenance must never block a build, so collectors
// degrade to this value instead of failing.
const Unknown = "unknown"

// TimeLayout is the canonical format of BuildTime and ModifyTime fields:
// wall-clock time followed by a signed UTC offset, e.g.
// "2018-01-30 10:20:30 +0845". The explicit offset keeps timestamps
// unambiguous across build hosts in different time zones.
const TimeLayout = "2006-01-02 15:04:05 -0700"

// HostInfo describes the machine a snapshot was taken on.
type HostInfo struct {
	// Name is the hostname of the build machine.
	Name string
	// User is the OS account name performing the build.
	User string
	// OsNV is the operating system name and version of the build host.
	OsNV string
}

// BuildIdentity describes who performed the build and when.
type BuildIdentity struct {
	// User is the identity credited for the build, conventionally
	// "name <email>".
	User string
	// Time is the snapshot timestamp in [TimeLayout] format.
	Time string
}

// RepoIdentity describes where the source tree came from.
//
// Both fields are free-form strings so that centralized (sequential numeric
// revision) and distributed (content hash) version-control systems are
// carried the same way.
type RepoIdentity struct {
	// Hash is the checked-out revision identifier.
	Hash string
	// URL is the canonical remote location of the repository.
	URL string
}

// RepoInfo is an immutable snapshot of build/repository metadata.
//
// A record is produced exactly once per generator run and fully replaces any
// previously emitted record. Values are read through accessors only; there
// is no way to mutate a record after construction.
type RepoInfo struct {
	hostName string
	hostUser string
	hostOsNV string

	buildUser string
	buildTime string

	modifyTime string

	repoHash string
	repoUrl  string
}

// NewRepoInfo constructs a [RepoInfo] from the collected parts.
func NewRepoInfo(host HostInfo, build BuildIdentity, modifyTime string, repo RepoIdentity) RepoInfo {
	return RepoInfo{
		hostName:   host.Name,
		hostUser:   host.User,
		hostOsNV:   host.OsNV,
		buildUser:  build.User,
		buildTime:  build.Time,
		modifyTime: modifyTime,
		repoHash:   repo.Hash,
		repoUrl:    repo.URL,
	}
}

// HostName returns the name of the machine that performed the build.
func (r RepoInfo) HostName() string { return r.hostName }

// HostUser returns the account name that performed the build.
func (r RepoInfo) HostUser() string { return r.hostUser }

// HostOsNV returns the OS name and version of the build host.
func (r RepoInfo) HostOsNV() string { return r.hostOsNV }

// BuildUser returns the identity credited for the build.
func (r RepoInfo) BuildUser() string { return r.buildUser }

// BuildTime returns the snapshot timestamp.
func (r RepoInfo) BuildTime() string { return r.buildTime }

// ModifyTime returns the most recent source modification timestamp.
func (r RepoInfo) ModifyTime() string { return r.modifyTime }

// RepoHash returns the version-control revision identifier.
func (r RepoInfo) RepoHash() string { return r.repoHash }

// RepoUrl returns the remote repository URL.
func (r RepoInfo) RepoUrl() string { return r.repoUrl }
