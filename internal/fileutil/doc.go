// Package fileutil discovers candidate files under a search root.
//
// ScanDirectory walks a tree with filepath.WalkDir and returns the files whose
// extension is in the configured set, in walk order (lexical within each
// directory, so results are stable between runs). Directory names listed in
// ExcludeDirs are pruned, hidden directories can be pruned with SkipHidden, and
// MaxDepth limits how far below the root the walk descends.
//
// Problems below the root, such as an unreadable subdirectory, do not stop the
// walk. They are collected in ScanResult.Errors for the caller to report. Only a
// missing or non-directory root is fatal.
//
//	result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
//	    Extensions:  []string{".csv"},
//	    Recursive:   true,
//	    ExcludeDirs: []string{".git", "node_modules"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, path := range result.Files {
//	    // ...
//	}
package fileutil
