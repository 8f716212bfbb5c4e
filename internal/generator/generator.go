// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator orchestrates a metadata snapshot: it runs the host,
// build, source and repository collectors, assembles an immutable
// [models.RepoInfo] record, and hands it to the emitter.
//
// A run is single-threaded and run-to-completion. Collection is
// best-effort: any fact that cannot be determined degrades to the
// placeholder value, and only a failed artifact write makes a run fail.
package generator

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-repo-info/internal/config"
	"github.com/MKhiriev/go-repo-info/internal/emit"
	"github.com/MKhiriev/go-repo-info/internal/inspect"
	"github.com/MKhiriev/go-repo-info/internal/logger"
	"github.com/MKhiriev/go-repo-info/internal/utils"
	"github.com/MKhiriev/go-repo-info/internal/vcs"
	"github.com/MKhiriev/go-repo-info/models"
)

// Generator produces one metadata snapshot per Run invocation.
type Generator struct {
	cfg *config.GeneratorConfig

	hosts   HostCollector
	builds  BuildCollector
	sources SourceCollector
	emitter ArtifactEmitter

	// detect probes the source root for a version-control system;
	// replaced in tests.
	detect func(root string) (vcs.Inspector, error)

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewGenerator wires a [Generator] with the production collectors and
// emitter for cfg.
func NewGenerator(cfg *config.GeneratorConfig, log *logger.Logger) *Generator {
	return &Generator{
		cfg:     cfg,
		hosts:   inspect.NewHostInspector(log),
		builds:  inspect.NewBuildInspector(cfg.Build, log),
		sources: inspect.NewSourceInspector(log, cfg.Output.Path),
		emitter: emit.NewEmitter(cfg.Output.Package, log),
		detect:  vcs.Detect,
		uuid:    utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// Run collects a snapshot and installs the artifact at the configured
// output path. The returned record is the one that was emitted.
func (g *Generator) Run(ctx context.Context) (models.RepoInfo, error) {
	log := g.runLogger()

	record := g.collect(ctx, log)

	if err := g.emitter.Emit(ctx, record, g.cfg.Output.Path); err != nil {
		return models.RepoInfo{}, err
	}

	log.Info().
		Str("output", g.cfg.Output.Path).
		Str("repo_hash", record.RepoHash()).
		Msg("snapshot emitted")

	return record, nil
}

// Collect gathers a snapshot without writing anything. Used by the CLI to
// preview a record.
func (g *Generator) Collect(ctx context.Context) models.RepoInfo {
	return g.collect(ctx, g.runLogger())
}

func (g *Generator) collect(ctx context.Context, log *logger.Logger) models.RepoInfo {
	host := g.hosts.CollectHostInfo(ctx)
	build := g.builds.CollectBuildIdentity(ctx)

	modifyTime, err := g.sources.CollectModifyTime(ctx, g.cfg.Source.Root)
	if err != nil {
		log.Warn().Err(err).Msg("modify time unavailable, using placeholder")
		modifyTime = models.Unknown
	}

	repo := g.collectRepoIdentity(ctx, log)

	return models.NewRepoInfo(host, build, modifyTime, repo)
}

// collectRepoIdentity resolves the revision and remote URL of the source
// root. Each field degrades independently; an untracked tree yields
// placeholders for both.
func (g *Generator) collectRepoIdentity(ctx context.Context, log *logger.Logger) models.RepoIdentity {
	identity := models.RepoIdentity{
		Hash: models.Unknown,
		URL:  models.Unknown,
	}

	inspector, err := g.detect(g.cfg.Source.Root)
	if err != nil {
		if errors.Is(err, vcs.ErrNotVersionControlled) {
			log.Warn().Str("root", g.cfg.Source.Root).Msg("source root is not version controlled")
		} else {
			log.Warn().Err(err).Msg("version control probe failed, using placeholders")
		}
		return identity
	}

	log.Debug().Str("vcs", string(inspector.Kind())).Msg("version control system detected")

	if hash, err := inspector.Revision(ctx); err == nil {
		identity.Hash = hash
	} else {
		log.Warn().Err(err).Msg("revision unavailable, using placeholder")
	}

	if url, err := inspector.RemoteURL(ctx); err == nil {
		identity.URL = url
	} else {
		log.Warn().Err(err).Msg("remote url unavailable, using placeholder")
	}

	return identity
}

// runLogger returns a child logger carrying a fresh run id, so the log
// lines of one snapshot can be told apart from the next.
func (g *Generator) runLogger() *logger.Logger {
	child := g.logger.GetChildLogger()
	child.Logger = child.With().Str("run_id", g.uuid.Generate()).Logger()

	return child
}
