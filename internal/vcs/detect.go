package vcs

import "errors"

// Detect probes the source root and returns an [Inspector] for the
// version-control system holding it. Git is probed first, then Subversion.
//
// Returns ErrNotVersionControlled when no system claims the tree; callers
// are expected to substitute placeholder identity values and carry on.
func Detect(root string) (Inspector, error) {
	gitInspector, err := openGit(root)
	if err == nil {
		return gitInspector, nil
	}
	if !errors.Is(err, ErrNotVersionControlled) {
		return nil, err
	}

	svnInspector, err := openSvn(root)
	if err == nil {
		return svnInspector, nil
	}
	if !errors.Is(err, ErrNotVersionControlled) {
		return nil, err
	}

	return nil, ErrNotVersionControlled
}
