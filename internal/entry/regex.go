//go:build !filematcher_noregex

package entry

import (
	"encoding/json"
	"regexp"
)

// Regex matches a candidate containing a match of the RE2 pattern.
// The search is unanchored; use ^ and $ to match the whole name.
type Regex string

func init() {
	registerVariant("Regex", func(unmarshal func(any) error) (Name, error) {
		var s string
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return Regex(s), nil
	})
}

func (Regex) variant() string { return "Regex" }

func (r Regex) compile() (func(string) bool, error) {
	re, err := regexp.Compile(string(r))
	if err != nil {
		return nil, &PatternError{Variant: "Regex", Pattern: string(r), Err: err}
	}
	return re.MatchString, nil
}

func (r Regex) equal(other Name) bool {
	o, ok := other.(Regex)
	return ok && o == r
}

// MarshalJSON encodes the name as {"Regex": "..."}.
func (r Regex) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged("Regex", string(r)))
}

// MarshalYAML encodes the name as a single-key mapping.
func (r Regex) MarshalYAML() (interface{}, error) {
	return tagged("Regex", string(r)), nil
}
