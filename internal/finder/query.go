package finder

import (
	"github.com/harrison/filematcher/internal/entry"
)

// Query is an immutable search description. Every configurator returns a
// modified copy, so a Query can be shared and extended freely.
type Query struct {
	named entry.Named
	roots []string
	opts  Options
}

// Named starts a query for an arbitrary criterion.
func Named(named entry.Named) Query {
	return Query{named: named, opts: DefaultOptions()}
}

// FileNamed starts a query for regular files.
func FileNamed(name entry.Name) Query {
	return Named(entry.File(name))
}

// FolderNamed starts a query for directories.
func FolderNamed(name entry.Name) Query {
	return Named(entry.Folder(name))
}

// EntryNamed starts a query for files and directories alike.
func EntryNamed(name entry.Name) Query {
	return Named(entry.AnyEntry(name))
}

// Within sets the roots to scan, in order. Without roots the working
// directory is scanned.
func (q Query) Within(roots ...string) Query {
	q.roots = append([]string(nil), roots...)
	return q
}

// Recursive descends into subdirectories of the roots.
func (q Query) Recursive() Query {
	q.opts.Recursive = true
	return q
}

// MaxDepth enables recursion bounded to depth levels (1 = roots only).
func (q Query) MaxDepth(depth int) Query {
	q.opts.Recursive = true
	q.opts.MaxDepth = depth
	return q
}

// ExcludeDirs names directories that recursion skips.
func (q Query) ExcludeDirs(names ...string) Query {
	q.opts.ExcludeDirs = append(append([]string(nil), q.opts.ExcludeDirs...), names...)
	return q
}

// IncludeHidden lets recursion enter directories starting with ".".
func (q Query) IncludeHidden() Query {
	q.opts.IncludeHidden = true
	return q
}

// NoFollowSymlinks classifies symlinks as links, so they match no entry type.
func (q Query) NoFollowSymlinks() Query {
	q.opts.FollowSymlinks = false
	return q
}

// WithOptions replaces all traversal options at once.
func (q Query) WithOptions(opts Options) Query {
	q.opts = opts
	return q
}

// WithLogger sends scan progress to l.
func (q Query) WithLogger(l Logger) Query {
	q.opts.Logger = l
	return q
}

// Criterion returns the criterion being searched for.
func (q Query) Criterion() entry.Named {
	return q.named
}

// Roots returns the roots that will be scanned.
func (q Query) Roots() []string {
	return append([]string(nil), normalizeRoots(q.roots)...)
}

// Options returns the traversal options.
func (q Query) Options() Options {
	return q.opts
}

// Find returns the first matching path.
func (q Query) Find() (string, error) {
	return FindOne(q.named, q.roots, q.opts)
}

// FindAll returns every matching path in discovery order.
func (q Query) FindAll() ([]string, error) {
	return FindAll(q.named, q.roots, q.opts)
}
