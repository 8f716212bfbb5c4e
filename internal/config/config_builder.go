package config

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*GeneratorConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*GeneratorConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*GeneratorConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(GeneratorConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &GeneratorConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *GeneratorConfig) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var filePath string
	isFileSpecified := false

	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			isFileSpecified = true
			filePath = cfg.ConfigFilePath
			break
		}
	}

	if isFileSpecified {
		fileCfg, err := parseFile(filePath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, fileCfg)
	}

	return b
}

// applyDefaults fills the fields no source provided. The output package name
// falls back to the base name of the directory holding the artifact, which is
// what a Go consumer expects for a file generated in place.
func (cfg *GeneratorConfig) applyDefaults() {
	if cfg.Source.Root == "" {
		cfg.Source.Root = "."
	}

	if cfg.Output.Path == "" {
		cfg.Output.Path = filepath.Join("repoinfo", "repoinfo.go")
	}

	if cfg.Output.Package == "" {
		derived := filepath.Base(filepath.Dir(cfg.Output.Path))
		if !token.IsIdentifier(derived) {
			// artifact sits in "." or some other non-identifier directory
			derived = "repoinfo"
		}
		cfg.Output.Package = derived
	}
}
