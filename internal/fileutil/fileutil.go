// Package fileutil provides whole-file replacement helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadableByAll is the permission used when the original mode is unknown.
const ReadableByAll os.FileMode = 0o644

// ResolvePath returns path with symlinks resolved, so a rewrite replaces the
// link target instead of the link itself.
func ResolvePath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("fileutil: resolving %s: %w", path, err)
	}
	return resolved, nil
}

// WriteFileAtomic replaces the file at path with data.
//
// The data is written to a temporary file in the same directory, synced, and
// renamed over path, so readers observe either the old or the new content.
// A zero perm keeps the existing file's permissions, falling back to
// ReadableByAll for a new file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	if perm == 0 {
		perm = ReadableByAll
		if info, statErr := os.Stat(path); statErr == nil {
			perm = info.Mode().Perm()
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".nextcase-*")
	if err != nil {
		return fmt.Errorf("fileutil: creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("fileutil: writing temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("fileutil: syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fileutil: closing temp file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("fileutil: setting permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("fileutil: replacing %s: %w", path, err)
	}
	return nil
}
