package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned when a scan root exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// SkipAll returned from a VisitFunc stops the scan without error.
// SkipDir returned for a directory entry prevents descending into it.
var (
	SkipAll = fs.SkipAll
	SkipDir = fs.SkipDir
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Recursive enables descending into subdirectories
	Recursive bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = current dir only)
	MaxDepth int
	// ExcludeDirs is a list of directory names never descended into (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// IncludeHidden allows descending into directories whose name starts with "."
	IncludeHidden bool
	// FollowSymlinks classifies symlinks by their target instead of as links
	FollowSymlinks bool
	// Match filters the entries collected by ScanDirectory (nil = all entries)
	Match func(Entry) bool
}

// Entry is a single directory entry encountered during a scan.
type Entry struct {
	// Path is the root joined with the entry's path relative to it
	Path string
	// Name is the entry's base name
	Name string
	// Mode holds the entry's type bits, resolved through symlinks when FollowSymlinks is set
	Mode fs.FileMode
	// Depth is 1 for immediate children of the root
	Depth int
}

// IsDir reports whether the entry is (or, when links are followed, points to) a directory.
func (e Entry) IsDir() bool {
	return e.Mode.IsDir()
}

// ScanError reports a directory that could not be listed.
type ScanError struct {
	Root string // Root the scan started from
	Path string // Directory that failed; equals Root for top-level failures
	Err  error  // Underlying error, usually *fs.PathError
}

// Error implements the error interface for ScanError.
func (e *ScanError) Error() string {
	if e.Path == e.Root {
		return fmt.Sprintf("scan %s: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("scan %s: %s: %v", e.Root, e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// VisitFunc is called for every entry in discovery order.
type VisitFunc func(e Entry) error

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Entries contains the matched entries in discovery order
	Entries []Entry
}

// Paths returns the path of every entry in the result.
func (r *ScanResult) Paths() []string {
	paths := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// ScanDirectory scans a directory and collects the entries accepted by opts.Match
func ScanDirectory(dir string, opts ScanOptions) (*ScanResult, error) {
	result := &ScanResult{
		Entries: make([]Entry, 0),
	}

	err := Scan(dir, opts, func(e Entry) error {
		if opts.Match == nil || opts.Match(e) {
			result.Entries = append(result.Entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Scan lists dir and calls visit for each entry. Entries within a directory
// arrive in lexical order. In recursive mode a directory is visited before its
// children (pre-order). The first listing failure aborts the scan with a
// *ScanError.
func Scan(dir string, opts ScanOptions, visit VisitFunc) error {
	// Validate directory exists
	info, err := os.Stat(dir)
	if err != nil {
		return &ScanError{Root: dir, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &ScanError{Root: dir, Path: dir, Err: &fs.PathError{Op: "scan", Path: dir, Err: ErrNotDirectory}}
	}

	// Create excluded dirs map
	excludeMap := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	s := &scanner{root: dir, opts: opts, exclude: excludeMap, visit: visit}
	err = s.scanDir(dir, 1)
	if errors.Is(err, SkipAll) {
		return nil
	}
	return err
}

type scanner struct {
	root    string
	opts    ScanOptions
	exclude map[string]bool
	visit   VisitFunc
}

func (s *scanner) scanDir(dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &ScanError{Root: s.root, Path: dir, Err: err}
	}

	for _, d := range entries {
		e := Entry{
			Path:  filepath.Join(dir, d.Name()),
			Name:  d.Name(),
			Mode:  d.Type(),
			Depth: depth,
		}

		isLink := d.Type()&fs.ModeSymlink != 0
		if isLink && s.opts.FollowSymlinks {
			// A dangling link keeps its symlink mode and matches nothing.
			if target, err := os.Stat(e.Path); err == nil {
				e.Mode = target.Mode().Type()
			}
		}

		err := s.visit(e)
		if errors.Is(err, SkipDir) {
			continue
		}
		if err != nil {
			return err
		}

		// Links are never descended into, even when they resolve to a directory.
		if isLink || !d.IsDir() || !s.shouldDescend(d.Name(), depth) {
			continue
		}
		if err := s.scanDir(e.Path, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (s *scanner) shouldDescend(name string, depth int) bool {
	if !s.opts.Recursive {
		return false
	}
	if s.exclude[name] {
		return false
	}
	if !s.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return false
	}
	// Check max depth
	if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
		return false
	}
	return true
}
