// Package entry defines the matching criterion used to select filesystem
// entries: a name-matching strategy paired with an entry-type filter.
//
// # Names
//
// Name is a closed set of variants. Only this package can add one:
//
//   - Exact: byte-for-byte equality with the entry's base name
//   - Any: equality with any element of a list
//   - AnyNamed: any nested Name matches (criteria compose, e.g. "exact A or regex B")
//   - Regex: RE2 regular expression, unanchored (build without filematcher_noregex)
//   - Wildmatch: wildcard pattern over the whole name; * is any run, ? any one
//     character, everything else is literal (build without filematcher_nowildmatch)
//
// Empty Any and AnyNamed lists are legal and match nothing.
//
// # Capabilities
//
// Regex and Wildmatch are compiled in by default. Building with the
// filematcher_noregex or filematcher_nowildmatch tag removes the variant, its
// constructor and its decoder, so a disabled capability cannot be constructed
// or decoded:
//
//	go build -tags filematcher_noregex ./...
//
// # Matching
//
// Patterns are compiled once, before any directory is read:
//
//	filter, err := entry.File(entry.Wildmatch("*.txt")).Compile()
//	if err != nil {
//	    return err // invalid pattern
//	}
//	ok := filter.Match("cat.txt", 0) // a zero mode is a regular file
//
// # Serialization
//
// Names, Types and Named criteria encode to externally tagged JSON and YAML:
//
//	{"entry_name": {"AnyNamed": [{"Exact": "a"}, {"Regex": "b.*"}]}, "entry_type": "File"}
package entry
