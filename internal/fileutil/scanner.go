package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when the scan root exists but is not a directory
var ErrNotDirectory = errors.New("path is not a directory")

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include, matched case-insensitively.
	// An empty list includes every file.
	Extensions []string
	// Recursive enables descending into subdirectories
	Recursive bool
	// ExcludeDirs is a list of directory names to prune (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// SkipHidden prunes directories whose name starts with "."
	SkipHidden bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = root only)
	MaxDepth int
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files holds matched paths joined onto the scan root, in walk order
	Files []string
	// Errors holds non-fatal problems met while walking
	Errors []error
}

// ScanDirectory walks dir and collects the files accepted by opts
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	extensions := make([]string, len(opts.Extensions))
	for i, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions[i] = ext
	}

	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			return nil
		}

		if path == dir {
			return nil
		}

		if d.IsDir() {
			if pruneDir(d.Name(), excludeMap, opts.SkipHidden) || !opts.Recursive {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 && depth(dir, path) >= opts.MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if len(extensions) > 0 && !hasAnyExtension(d.Name(), extensions) {
			return nil
		}

		result.Files = append(result.Files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}

// HasExtension reports whether name ends in ext, ignoring case
func HasExtension(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}

func hasAnyExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if HasExtension(name, ext) {
			return true
		}
	}
	return false
}

func pruneDir(name string, exclude map[string]bool, skipHidden bool) bool {
	if exclude[name] {
		return true
	}
	return skipHidden && strings.HasPrefix(name, ".")
}

// depth counts path segments below root: root/a is 1, root/a/b is 2.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
