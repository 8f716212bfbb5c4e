// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-repo-info/models"
)

// HostCollector reads the identity of the machine performing the build.
type HostCollector interface {
	CollectHostInfo(ctx context.Context) models.HostInfo
}

// BuildCollector determines who is performing the build and when.
type BuildCollector interface {
	CollectBuildIdentity(ctx context.Context) models.BuildIdentity
}

// SourceCollector determines the most recent modification time of the
// source tree under root.
type SourceCollector interface {
	CollectModifyTime(ctx context.Context, root string) (string, error)
}

// ArtifactEmitter serializes a record into the build artifact at outputPath.
type ArtifactEmitter interface {
	Emit(ctx context.Context, record models.RepoInfo, outputPath string) error
}
