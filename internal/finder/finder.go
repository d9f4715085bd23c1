// Package finder looks up files and folders by name within one or more roots.
//
// A search pairs a criterion from package entry with a list of roots:
//
//	path, err := finder.FileNamed(entry.Exact("cat.txt")).Within("assets").Find()
//	paths, err := finder.FileNamed(entry.Wildmatch("*.txt")).Within("assets").FindAll()
//
// Roots are scanned in the order given and, within a directory, entries are
// considered in lexical order. Only the immediate children of each root are
// scanned unless Recursive or MaxDepth is set.
//
// Find returns the first match or an error matching ErrNotFound. FindAll
// returns every match in discovery order and never reports "no match" as an
// error. Both fail with a *ScanError when a directory cannot be listed.
package finder

import (
	"fmt"

	"github.com/harrison/filematcher/internal/entry"
	"github.com/harrison/filematcher/internal/fileutil"
)

// Logger receives scan progress. *logger.ConsoleLogger satisfies it.
type Logger interface {
	LogDebug(message string)
	LogTrace(message string)
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogTrace(string) {}

// Options controls how roots are traversed.
type Options struct {
	// Recursive descends into subdirectories (hidden and excluded ones aside)
	Recursive bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = roots only)
	MaxDepth int
	// ExcludeDirs names directories never descended into
	ExcludeDirs []string
	// IncludeHidden descends into directories starting with "."
	IncludeHidden bool
	// FollowSymlinks classifies symlinks by their target
	FollowSymlinks bool
	// Logger receives debug and trace messages (nil = silent)
	Logger Logger
}

// DefaultOptions returns single-level scanning with symlinks resolved.
func DefaultOptions() Options {
	return Options{FollowSymlinks: true}
}

func (o Options) scanOptions() fileutil.ScanOptions {
	return fileutil.ScanOptions{
		Recursive:      o.Recursive,
		MaxDepth:       o.MaxDepth,
		ExcludeDirs:    o.ExcludeDirs,
		IncludeHidden:  o.IncludeHidden,
		FollowSymlinks: o.FollowSymlinks,
	}
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

// normalizeRoots defaults an empty root list to the working directory.
func normalizeRoots(roots []string) []string {
	if len(roots) == 0 {
		return []string{"."}
	}
	return roots
}

// FindOne returns the path of the first entry satisfying named. Roots are
// tried in order; the first root containing a match wins.
func FindOne(named entry.Named, roots []string, opts Options) (string, error) {
	filter, err := named.Compile()
	if err != nil {
		return "", fmt.Errorf("invalid criterion: %w", err)
	}

	roots = normalizeRoots(roots)
	log := opts.logger()

	for _, root := range roots {
		log.LogDebug(fmt.Sprintf("Scanning %s for %s", root, named))

		var found string
		err := fileutil.Scan(root, opts.scanOptions(), func(e fileutil.Entry) error {
			if filter.Match(e.Name, e.Mode) {
				found = e.Path
				return fileutil.SkipAll
			}
			return nil
		})
		if err != nil {
			return "", err
		}

		if found != "" {
			log.LogTrace(fmt.Sprintf("Matched %s", found))
			return found, nil
		}
	}

	return "", &NotFoundError{Criterion: named, Roots: roots}
}

// FindAll returns the path of every entry satisfying named, root by root in
// discovery order. No match yields an empty slice and a nil error.
func FindAll(named entry.Named, roots []string, opts Options) ([]string, error) {
	filter, err := named.Compile()
	if err != nil {
		return nil, fmt.Errorf("invalid criterion: %w", err)
	}

	roots = normalizeRoots(roots)
	log := opts.logger()

	scanOpts := opts.scanOptions()
	scanOpts.Match = func(e fileutil.Entry) bool {
		return filter.Match(e.Name, e.Mode)
	}

	matches := make([]string, 0)
	for _, root := range roots {
		log.LogDebug(fmt.Sprintf("Scanning %s for %s", root, named))

		result, err := fileutil.ScanDirectory(root, scanOpts)
		if err != nil {
			return nil, err
		}

		for _, path := range result.Paths() {
			log.LogTrace(fmt.Sprintf("Matched %s", path))
			matches = append(matches, path)
		}
		log.LogDebug(fmt.Sprintf("Found %d match(es) in %s", len(result.Entries), root))
	}

	return matches, nil
}
