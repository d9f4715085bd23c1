// Package fileutil lists directory entries for the finder.
//
// # Scanning
//
// Scan visits the entries of a directory in discovery order and hands each
// one to a callback. By default only the immediate children of the root are
// visited; Recursive descends into subdirectories depth first, visiting a
// directory before its children.
//
//	err := fileutil.Scan("/path/to/dir", fileutil.ScanOptions{Recursive: true}, func(e fileutil.Entry) error {
//	    if e.Name == "go.mod" {
//	        fmt.Println(e.Path)
//	        return fileutil.SkipAll // stop after the first hit
//	    }
//	    return nil
//	})
//
// ScanDirectory collects the entries accepted by ScanOptions.Match:
//
//	result, err := fileutil.ScanDirectory("/path/to/project", fileutil.ScanOptions{
//	    Recursive:   true,
//	    MaxDepth:    2,
//	    ExcludeDirs: []string{"node_modules", "vendor"},
//	    Match:       func(e fileutil.Entry) bool { return !e.IsDir() },
//	})
//
// # Descent rules
//
//   - Entries are always reported, including hidden and excluded directories;
//     the rules below only decide whether the scan descends into them
//   - Directories listed in ExcludeDirs are not descended into
//   - Directories starting with "." are not descended into unless IncludeHidden is set
//   - MaxDepth bounds descent (0 = unlimited, 1 = current dir only)
//   - Symlinks are never descended into, which keeps link cycles out of the scan
//
// # Symlinks
//
// With FollowSymlinks an entry that is a symlink reports the type of its
// target, so a link to a file is a file. Dangling links keep the symlink type.
//
// # Errors
//
// Scanning fails fast: a root that is missing, unreadable or not a directory,
// or (in recursive mode) any subdirectory that cannot be listed, aborts the
// scan with a *ScanError wrapping the underlying *fs.PathError. Nothing is
// retried and no partial result is returned.
package fileutil
