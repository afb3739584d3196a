// Package fsutil provides file system utility functions.
package fsutil

import (
	"context"
	"io/fs"
	"path/filepath"
)

// ListRegularFiles recursively enumerates the regular files under rootPath
// and returns their forward-slash paths relative to it, in walk order. A
// directory for which prune returns true is skipped whole; its contents are
// never visited. The walk checks ctx between directory visits so a large
// tree can be interrupted, and holds no handles after returning.
func ListRegularFiles(ctx context.Context, rootPath string, prune func(rel string) bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if rel != "." && prune != nil && prune(rel) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
