package entry

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type filters entries by filesystem kind.
type Type int

const (
	// FileType accepts regular files only.
	FileType Type = iota
	// FolderType accepts directories only.
	FolderType
	// AnyType accepts regular files and directories.
	AnyType
)

// String returns the serialized form of the type.
func (t Type) String() string {
	switch t {
	case FileType:
		return "File"
	case FolderType:
		return "Folder"
	case AnyType:
		return "Any"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType accepts the serialized form ("File", "Folder", "Any") as well as
// the lowercase spellings used on the command line ("file", "folder", "dir", "any").
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return FileType, nil
	case "folder", "dir", "directory":
		return FolderType, nil
	case "any":
		return AnyType, nil
	default:
		return 0, fmt.Errorf("invalid entry type %q, must be one of: file, folder, any", s)
	}
}

// MatchesMode reports whether an entry with the given mode passes the filter.
// Symlinks, sockets, devices and other special kinds never pass; callers
// resolve links before asking.
func (t Type) MatchesMode(mode fs.FileMode) bool {
	switch t {
	case FileType:
		return mode.IsRegular()
	case FolderType:
		return mode.IsDir()
	case AnyType:
		return mode.IsRegular() || mode.IsDir()
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	switch t {
	case FileType, FolderType, AnyType:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("invalid entry type %d", int(t))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. JSON uses it directly.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the type as a plain scalar.
func (t Type) MarshalYAML() (interface{}, error) {
	text, err := t.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML decodes a scalar type name.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: entry type must be a scalar", node.Line)
	}
	return t.UnmarshalText([]byte(node.Value))
}
