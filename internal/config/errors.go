package config

import "errors"

// Validation errors returned by [GeneratorConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSourceConfigs indicates invalid source tree settings
	// (for example, an empty source root).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidOutputConfigs indicates invalid artifact settings
	// (for example, a non-Go output path or a package name that is not a
	// valid Go identifier).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
