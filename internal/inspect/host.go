// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package inspect collects build-host facts for a metadata snapshot: machine
// identity, build identity, and the newest modification time of the source
// tree.
//
// Collection is best-effort by design. A field that cannot be determined is
// replaced with [models.Unknown] and logged; missing provenance must never
// fail a build.
package inspect

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-repo-info/internal/logger"
	"github.com/MKhiriev/go-repo-info/models"
)

const osReleasePath = "/etc/os-release"

// HostInspector reads the identity of the machine performing the build.
type HostInspector struct {
	logger *logger.Logger
}

// NewHostInspector constructs a [HostInspector].
func NewHostInspector(logger *logger.Logger) *HostInspector {
	return &HostInspector{logger: logger}
}

// CollectHostInfo returns the hostname, the OS account name, and the OS
// name/version of the build host. Each field degrades independently to
// [models.Unknown] when it cannot be determined.
func (i *HostInspector) CollectHostInfo(_ context.Context) models.HostInfo {
	info := models.HostInfo{
		Name: models.Unknown,
		User: models.Unknown,
		OsNV: models.Unknown,
	}

	if name, err := os.Hostname(); err == nil {
		info.Name = name
	} else {
		i.logger.Warn().Err(fmt.Errorf("%w: hostname: %w", ErrEnvironmentUnavailable, err)).
			Msg("falling back to placeholder host name")
	}

	if current, err := user.Current(); err == nil {
		info.User = current.Username
	} else {
		i.logger.Warn().Err(fmt.Errorf("%w: current user: %w", ErrEnvironmentUnavailable, err)).
			Msg("falling back to placeholder host user")
	}

	info.OsNV = i.osNameVersion()

	return info
}

// osNameVersion resolves the OS name and version. On hosts carrying an
// os-release file the PRETTY_NAME entry is used (e.g. "Ubuntu 24.04.1 LTS");
// otherwise the bare GOOS value is returned.
func (i *HostInspector) osNameVersion() string {
	file, err := os.Open(osReleasePath)
	if err != nil {
		i.logger.Debug().Err(err).Msg("os-release not readable, using GOOS")
		return runtime.GOOS
	}
	defer file.Close()

	if pretty, ok := parseOsRelease(file); ok {
		return pretty
	}

	return runtime.GOOS
}

// parseOsRelease scans os-release formatted content for the PRETTY_NAME
// entry and returns its unquoted value.
func parseOsRelease(r io.Reader) (string, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		value, found := strings.CutPrefix(line, "PRETTY_NAME=")
		if !found {
			continue
		}

		value = strings.Trim(value, `"`)
		if value != "" {
			return value, true
		}
	}

	return "", false
}
