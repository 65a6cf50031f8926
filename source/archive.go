package source

import (
	"archive/zip"
	"context"
	"fmt"
	"path"
	"strings"
)

// walkFunc is called for each matching file in archive. If an error is
// returned, processing stops.
type walkFunc func(file *zip.File) error

// walkArchive visits all files in the archive with names starting with
// pattern. Entries with path traversal components ("..") or absolute paths
// fail the walk to prevent Zip Slip attacks.
func walkArchive(ctx context.Context, archive, pattern string, walkFn walkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(f); err != nil {
				return err
			}
		}
	}
	return nil
}

func fromArchive(ctx context.Context, archive, pattern string) ([]Item, error) {
	var items []Item
	err := walkArchive(ctx, archive, pattern, func(f *zip.File) error {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("unable to open zip entry %q: %w", f.Name, err)
		}
		defer rc.Close()

		lines, err := scanLines(ctx, archive+":"+f.Name, rc)
		if err != nil {
			return err
		}
		items = append(items, lines...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
