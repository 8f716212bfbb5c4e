// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// GeneratorConfig is the top-level configuration container for the repo-info
// generator. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON or YAML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type GeneratorConfig struct {
	// Source holds settings describing the source tree being inspected.
	Source Source `envPrefix:"REPOINFO_SOURCE_"`

	// Output holds settings for the emitted artifact.
	Output Output `envPrefix:"REPOINFO_OUTPUT_"`

	// Build holds the configured build identity.
	Build Build `envPrefix:"REPOINFO_BUILD_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the REPOINFO_CONFIG environment variable or the
	// -c / --config flag.
	ConfigFilePath string `env:"REPOINFO_CONFIG"`
}

// Source describes the source tree the snapshot is taken from.
type Source struct {
	// Root is the path to the root of the source tree. The version-control
	// probe and the modify-time scan both start here.
	// Env: REPOINFO_SOURCE_ROOT. Defaults to ".".
	Root string `env:"ROOT"`
}

// Output describes the artifact the generator writes.
type Output struct {
	// Path is the location of the emitted Go source file. Any existing file
	// is replaced atomically.
	// Env: REPOINFO_OUTPUT_PATH. Defaults to "repoinfo/repoinfo.go".
	Path string `env:"PATH"`

	// Package is the package clause of the emitted artifact. When empty it
	// is derived from the base name of the directory containing Path.
	// Env: REPOINFO_OUTPUT_PACKAGE.
	Package string `env:"PACKAGE"`
}

// Build holds the configured build identity.
type Build struct {
	// User is the identity credited for the build, conventionally
	// "name <email>". When empty the generator synthesizes one from the
	// OS account and hostname.
	// Env: REPOINFO_BUILD_USER.
	User string `env:"USER"`
}

// GetGeneratorConfig loads, merges, and validates the generator
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//
// flags carries the values bound to the CLI flags; it may be nil when the
// generator is embedded without a command line.
//
// Returns a fully populated *GeneratorConfig or an error if any source
// fails to load or the final config fails validation.
func GetGeneratorConfig(flags *GeneratorConfig) (*GeneratorConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
