// Package config provides configuration loading, merging, and validation
// facilities for the repo-info generator.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones for non-zero fields):
//  1. Environment variables (REPOINFO_* namespace)
//  2. Command-line flags
//  3. JSON or YAML config file
//
// The main entry point is [GetGeneratorConfig].
package config
