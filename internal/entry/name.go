package entry

import (
	"encoding/json"
)

// Name is a name-matching strategy. The set of implementations is closed:
// Exact, Any, AnyNamed, and, when compiled in, Regex and Wildmatch.
type Name interface {
	// variant returns the tag used in the serialized form.
	variant() string

	// compile builds the predicate applied to candidate base names.
	compile() (func(string) bool, error)

	// equal reports structural equality with another Name.
	equal(other Name) bool
}

// Exact matches a candidate equal to the string, byte for byte.
type Exact string

// Any matches a candidate equal to any element.
type Any []string

// AnyNamed matches a candidate satisfying any nested Name.
type AnyNamed []Name

func init() {
	registerVariant("Exact", func(unmarshal func(any) error) (Name, error) {
		var s string
		if err := unmarshal(&s); err != nil {
			return nil, err
		}
		return Exact(s), nil
	})
	registerVariant("Any", func(unmarshal func(any) error) (Name, error) {
		var list []string
		if err := unmarshal(&list); err != nil {
			return nil, err
		}
		return Any(list), nil
	})
	registerVariant("AnyNamed", func(unmarshal func(any) error) (Name, error) {
		var values []Value
		if err := unmarshal(&values); err != nil {
			return nil, err
		}
		names := make(AnyNamed, 0, len(values))
		for _, v := range values {
			names = append(names, v.Name)
		}
		return names, nil
	})
}

func (Exact) variant() string { return "Exact" }

func (e Exact) compile() (func(string) bool, error) {
	want := string(e)
	return func(candidate string) bool {
		return candidate == want
	}, nil
}

func (e Exact) equal(other Name) bool {
	o, ok := other.(Exact)
	return ok && o == e
}

// MarshalJSON encodes the name as {"Exact": "..."}.
func (e Exact) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged("Exact", string(e)))
}

// MarshalYAML encodes the name as a single-key mapping.
func (e Exact) MarshalYAML() (interface{}, error) {
	return tagged("Exact", string(e)), nil
}

func (Any) variant() string { return "Any" }

func (a Any) compile() (func(string) bool, error) {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	return func(candidate string) bool {
		_, ok := set[candidate]
		return ok
	}, nil
}

func (a Any) equal(other Name) bool {
	o, ok := other.(Any)
	if !ok || len(o) != len(a) {
		return false
	}
	for i := range a {
		if a[i] != o[i] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the name as {"Any": [...]}.
func (a Any) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged("Any", a.payload()))
}

// MarshalYAML encodes the name as a single-key mapping.
func (a Any) MarshalYAML() (interface{}, error) {
	return tagged("Any", a.payload()), nil
}

func (a Any) payload() []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

func (AnyNamed) variant() string { return "AnyNamed" }

func (a AnyNamed) compile() (func(string) bool, error) {
	preds := make([]func(string) bool, 0, len(a))
	for _, n := range a {
		if n == nil {
			continue
		}
		pred, err := n.compile()
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return func(candidate string) bool {
		for _, pred := range preds {
			if pred(candidate) {
				return true
			}
		}
		return false
	}, nil
}

func (a AnyNamed) equal(other Name) bool {
	o, ok := other.(AnyNamed)
	if !ok || len(o) != len(a) {
		return false
	}
	for i := range a {
		if !Equal(a[i], o[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the name as {"AnyNamed": [...]}.
func (a AnyNamed) MarshalJSON() ([]byte, error) {
	return json.Marshal(tagged("AnyNamed", a.payload()))
}

// MarshalYAML encodes the name as a single-key mapping.
func (a AnyNamed) MarshalYAML() (interface{}, error) {
	return tagged("AnyNamed", a.payload()), nil
}

func (a AnyNamed) payload() []Name {
	if a == nil {
		return []Name{}
	}
	return []Name(a)
}

// Equal reports whether two names are the same variant with the same payload.
// A nil list and an empty list compare equal.
func Equal(a, b Name) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equal(b)
}

// Flatten splices nested AnyNamed lists into their parent. The result matches
// exactly the same candidates as n.
func Flatten(n Name) Name {
	list, ok := n.(AnyNamed)
	if !ok {
		return n
	}
	flat := make(AnyNamed, 0, len(list))
	for _, inner := range list {
		if nested, ok := Flatten(inner).(AnyNamed); ok {
			flat = append(flat, nested...)
			continue
		}
		flat = append(flat, inner)
	}
	return flat
}

// Matcher is a compiled Name.
type Matcher struct {
	name Name
	pred func(string) bool
}

// Compile prepares n for repeated matching. Regex and Wildmatch patterns are
// validated here; an invalid pattern yields a *PatternError.
func Compile(n Name) (*Matcher, error) {
	if n == nil {
		return &Matcher{pred: func(string) bool { return false }}, nil
	}
	pred, err := n.compile()
	if err != nil {
		return nil, err
	}
	return &Matcher{name: n, pred: pred}, nil
}

// Match reports whether candidate, an entry base name, satisfies the name.
func (m *Matcher) Match(candidate string) bool {
	return m.pred(candidate)
}

// Name returns the Name the matcher was compiled from.
func (m *Matcher) Name() Name {
	return m.name
}

// Matches compiles n and applies it to a single candidate.
func Matches(n Name, candidate string) (bool, error) {
	m, err := Compile(n)
	if err != nil {
		return false, err
	}
	return m.Match(candidate), nil
}
