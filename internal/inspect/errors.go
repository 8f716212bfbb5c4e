package inspect

import "errors"

var (
	// ErrEnvironmentUnavailable indicates that a build-host identity field
	// could not be determined. Collectors treat it as non-fatal and
	// substitute the placeholder value.
	ErrEnvironmentUnavailable = errors.New("environment information unavailable")

	// ErrEmptySourceTree indicates that the modify-time scan found no
	// regular files under the source root.
	ErrEmptySourceTree = errors.New("no files found under source root")
)
