//go:build !filematcher_nowildmatch

package entry

import (
	"encoding/json"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Wildmatch matches a candidate against a wildcard pattern covering the
// whole name: * is any run of characters, ? is any single character. Every
// other character, including [ ] { } and \, matches itself.
type Wildmatch string

// literalEscaper disables doublestar's class, alternation and escape syntax.
var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
)

func init() {
	registerVariant("Wildmatch", func(unmarshal func(any) error) (Name, error) {
		var s string
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return Wildmatch(s), nil
	})
}

func (Wildmatch) variant() string { return "Wildmatch" }

func (w Wildmatch) compile() (func(string) bool, error) {
	pattern := literalEscaper.Replace(string(w))
	if !doublestar.ValidatePattern(pattern) {
		return nil, &PatternError{Variant: "Wildmatch", Pattern: string(w), Err: doublestar.ErrBadPattern}
	}
	return func(candidate string) bool {
		// Pattern was validated above, so Match cannot fail.
		ok, _ := doublestar.Match(pattern, candidate)
		return ok
	}, nil
}

func (w Wildmatch) equal(other Name) bool {
	o, ok := other.(Wildmatch)
	return ok && o == w
}

// MarshalJSON encodes the name as {"Wildmatch": "..."}.
func (w Wildmatch) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged("Wildmatch", string(w)))
}

// MarshalYAML encodes the name as a single-key mapping.
func (w Wildmatch) MarshalYAML() (interface{}, error) {
	return tagged("Wildmatch", string(w)), nil
}
