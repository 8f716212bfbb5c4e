// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"go/token"
	"path/filepath"
)

// validate checks that the final merged [GeneratorConfig] satisfies the
// invariants the generator depends on before a run starts.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *GeneratorConfig) validate() error {
	if cfg.Source.Root == "" {
		return ErrInvalidSourceConfigs
	}

	if cfg.Output.Path == "" || filepath.Ext(cfg.Output.Path) != ".go" {
		return ErrInvalidOutputConfigs
	}

	// token.IsIdentifier also rejects Go keywords.
	if !token.IsIdentifier(cfg.Output.Package) {
		return ErrInvalidOutputConfigs
	}

	return nil
}
