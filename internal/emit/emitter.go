// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package emit serializes a metadata record into a Go source artifact.
//
// The artifact is a single file of named string constants, written next to
// the consuming code and compiled into it. Writes go through a temporary
// file in the target directory followed by an atomic rename, so a killed
// generator never leaves a truncated artifact behind.
package emit

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/MKhiriev/go-repo-info/internal/logger"
	"github.com/MKhiriev/go-repo-info/models"
)

// artifactTemplate is the shape of the emitted file. Constant names mirror
// the record fields one to one; consumers depend on these exact names.
const artifactTemplate = `// Code generated by repoinfo sync. DO NOT EDIT.

// Package {{ .Package }} exposes build and repository metadata captured
// immediately before compilation.
package {{ .Package }}

// Build host identity.
const (
	HostName = {{ printf "%q" .Record.HostName }}
	HostUser = {{ printf "%q" .Record.HostUser }}
	HostOsNV = {{ printf "%q" .Record.HostOsNV }}
)

// Build identity and timestamp.
const (
	BuildUser = {{ printf "%q" .Record.BuildUser }}
	BuildTime = {{ printf "%q" .Record.BuildTime }}
)

// Most recent source modification timestamp.
const ModifyTime = {{ printf "%q" .Record.ModifyTime }}

// Repository identity: revision identifier (SVN revision or Git commit
// hash) and remote repository URL.
const (
	RepoHash = {{ printf "%q" .Record.RepoHash }}
	RepoUrl  = {{ printf "%q" .Record.RepoUrl }}
)
`

var parsedTemplate = template.Must(template.New("artifact").Parse(artifactTemplate))

// Emitter writes metadata records as Go source artifacts.
type Emitter struct {
	packageName string

	logger *logger.Logger
}

// NewEmitter constructs an [Emitter] that emits artifacts with the given
// package clause.
func NewEmitter(packageName string, logger *logger.Logger) *Emitter {
	return &Emitter{
		packageName: packageName,
		logger:      logger,
	}
}

// Emit renders record and installs it at outputPath, replacing any existing
// artifact atomically. Missing parent directories are created.
func (e *Emitter) Emit(_ context.Context, record models.RepoInfo, outputPath string) error {
	source, err := e.Render(record)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating artifact directory %q: %w", dir, err)
	}

	// temp file lives in the target directory so the rename stays on one
	// filesystem and therefore atomic
	tmp, err := os.CreateTemp(dir, ".repoinfo-*.go.tmp")
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}

	if err := writeAndClose(tmp, source); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("installing artifact at %q: %w", outputPath, err)
	}

	e.logger.Debug().Str("path", outputPath).Msg("artifact installed")

	return nil
}

// Render produces the gofmt-clean source of the artifact for record.
func (e *Emitter) Render(record models.RepoInfo) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Package string
		Record  models.RepoInfo
	}{
		Package: e.packageName,
		Record:  record,
	}

	if err := parsedTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering artifact: %w", err)
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting artifact: %w", err)
	}

	return source, nil
}

func writeAndClose(file *os.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	if err := file.Chmod(0o644); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
