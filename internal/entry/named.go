package entry

import (
	"fmt"
	"io/fs"
)

// Named pairs a Name with a Type. The zero value matches nothing.
type Named struct {
	name Name
	typ  Type
}

// New returns a criterion matching entries of type typ whose name satisfies name.
func New(name Name, typ Type) Named {
	return Named{name: name, typ: typ}
}

// File returns a criterion for regular files.
func File(name Name) Named {
	return New(name, FileType)
}

// Folder returns a criterion for directories.
func Folder(name Name) Named {
	return New(name, FolderType)
}

// AnyEntry returns a criterion for files and directories alike.
func AnyEntry(name Name) Named {
	return New(name, AnyType)
}

// Name returns the name-matching strategy.
func (n Named) Name() Name {
	return n.name
}

// Type returns the entry-type filter.
func (n Named) Type() Type {
	return n.typ
}

// String renders the criterion for log and error messages.
func (n Named) String() string {
	return fmt.Sprintf("%s named %s", n.typ, describe(n.name))
}

// Filter is a compiled Named criterion.
type Filter struct {
	typ  Type
	name *Matcher
}

// Compile prepares the criterion for matching directory entries.
func (n Named) Compile() (*Filter, error) {
	m, err := Compile(n.name)
	if err != nil {
		return nil, err
	}
	return &Filter{typ: n.typ, name: m}, nil
}

// Match reports whether an entry with the given base name and resolved mode
// satisfies both the type filter and the name strategy.
func (f *Filter) Match(name string, mode fs.FileMode) bool {
	return f.typ.MatchesMode(mode) && f.name.Match(name)
}

// describe renders a Name as "Variant(payload)".
func describe(n Name) string {
	if n == nil {
		return "<nil>"
	}
	switch v := n.(type) {
	case Any:
		return fmt.Sprintf("Any%q", []string(v))
	case AnyNamed:
		parts := make([]string, 0, len(v))
		for _, inner := range v {
			parts = append(parts, describe(inner))
		}
		return fmt.Sprintf("AnyNamed%v", parts)
	default:
		return fmt.Sprintf("%s(%q)", n.variant(), fmt.Sprint(v))
	}
}
