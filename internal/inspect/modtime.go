package inspect

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-repo-info/internal/logger"
	"github.com/MKhiriev/go-repo-info/models"
)

// vcsMetadataDirs are directory names excluded from the modify-time scan.
// Their contents churn on VCS operations that do not touch the sources.
var vcsMetadataDirs = map[string]bool{
	".git": true,
	".svn": true,
	".hg":  true,
}

// SourceInspector determines the most recent modification time of a source
// tree.
type SourceInspector struct {
	// exclude holds absolute paths ignored by the scan. The emitted
	// artifact is registered here: it usually lives inside the source root,
	// and counting it would make every run report the previous run's write
	// time instead of the newest source change.
	exclude map[string]bool

	logger *logger.Logger
}

// NewSourceInspector constructs a [SourceInspector]. Files named in exclude
// are ignored by the scan; relative paths are resolved against the working
// directory.
func NewSourceInspector(logger *logger.Logger, exclude ...string) *SourceInspector {
	excluded := make(map[string]bool, len(exclude))
	for _, path := range exclude {
		if abs, err := filepath.Abs(path); err == nil {
			excluded[abs] = true
		}
	}

	return &SourceInspector{
		exclude: excluded,
		logger:  logger,
	}
}

// CollectModifyTime walks the tree under root and returns the newest file
// modification time in [models.TimeLayout] format. VCS metadata directories
// and excluded files are skipped. A tree without regular files reports
// ErrEmptySourceTree.
//
// The walk honors ctx cancellation.
func (i *SourceInspector) CollectModifyTime(ctx context.Context, root string) (string, error) {
	var newest time.Time
	found := false

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && vcsMetadataDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if abs, err := filepath.Abs(path); err == nil && i.exclude[abs] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		if mod := info.ModTime(); mod.After(newest) {
			newest = mod
		}
		found = true

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning source tree %q: %w", root, err)
	}

	if !found {
		return "", fmt.Errorf("%w: %q", ErrEmptySourceTree, root)
	}

	return newest.Format(models.TimeLayout), nil
}
