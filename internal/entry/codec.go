package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// variantDecoder builds a Name from a variant payload. unmarshal decodes the
// payload into the supplied pointer using whichever format is being read.
type variantDecoder func(unmarshal func(any) error) (Name, error)

var decoders = make(map[string]variantDecoder)

// registerVariant makes a variant tag decodable. Called from init in the file
// defining the variant, so build-tagged variants vanish with their decoder.
func registerVariant(tag string, dec variantDecoder) {
	decoders[tag] = dec
}

// Variants returns the tags of the name variants compiled into this build.
func Variants() []string {
	tags := make([]string, 0, len(decoders))
	for tag := range decoders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func tagged(tag string, payload interface{}) map[string]interface{} {
	return map[string]interface{}{tag: payload}
}

func decodeVariant(tag string, unmarshal func(any) error) (Name, error) {
	dec, ok := decoders[tag]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, tag)
	}
	n, err := dec(unmarshal)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	return n, nil
}

// Value wraps a Name so it can be decoded from JSON or YAML.
type Value struct {
	Name Name
}

// MarshalJSON encodes the wrapped name.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Name == nil {
		return nil, errors.New("entry name is nil")
	}
	return json.Marshal(v.Name)
}

// UnmarshalJSON decodes an externally tagged name, e.g. {"Exact": "cat.txt"}.
func (v *Value) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("entry name must be an object with one variant key: %w", err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("entry name must have exactly one variant key, got %d", len(obj))
	}
	for tag, raw := range obj {
		n, err := decodeVariant(tag, func(out any) error {
			return json.Unmarshal(raw, out)
		})
		if err != nil {
			return err
		}
		v.Name = n
	}
	return nil
}

// MarshalYAML encodes the wrapped name.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Name == nil {
		return nil, errors.New("entry name is nil")
	}
	return v.Name, nil
}

// UnmarshalYAML decodes a single-key mapping such as `Wildmatch: "*.txt"`.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: entry name must be a mapping with exactly one variant key", node.Line)
	}
	body := node.Content[1]
	n, err := decodeVariant(node.Content[0].Value, func(out any) error {
		return body.Decode(out)
	})
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	v.Name = n
	return nil
}

// namedDoc is the serialized shape of Named.
type namedDoc struct {
	EntryName *Value `json:"entry_name" yaml:"entry_name"`
	EntryType *Type  `json:"entry_type" yaml:"entry_type"`
}

func (d namedDoc) named() (Named, error) {
	if d.EntryName == nil || d.EntryName.Name == nil {
		return Named{}, errors.New("criterion is missing entry_name")
	}
	if d.EntryType == nil {
		return Named{}, errors.New("criterion is missing entry_type")
	}
	return New(d.EntryName.Name, *d.EntryType), nil
}

// MarshalJSON encodes the criterion as {"entry_name": ..., "entry_type": ...}.
func (n Named) MarshalJSON() ([]byte, error) {
	typ := n.typ
	return json.Marshal(namedDoc{EntryName: &Value{Name: n.name}, EntryType: &typ})
}

// UnmarshalJSON decodes a criterion; both fields are required.
func (n *Named) UnmarshalJSON(data []byte) error {
	var doc namedDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := doc.named()
	if err != nil {
		return err
	}
	*n = decoded
	return nil
}

// MarshalYAML encodes the criterion as a two-key mapping.
func (n Named) MarshalYAML() (interface{}, error) {
	typ := n.typ
	return namedDoc{EntryName: &Value{Name: n.name}, EntryType: &typ}, nil
}

// UnmarshalYAML decodes a criterion; both fields are required.
func (n *Named) UnmarshalYAML(node *yaml.Node) error {
	var doc namedDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	decoded, err := doc.named()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*n = decoded
	return nil
}

// DecodeJSON parses a JSON-encoded criterion.
func DecodeJSON(data []byte) (Named, error) {
	var n Named
	if err := json.Unmarshal(data, &n); err != nil {
		return Named{}, fmt.Errorf("failed to parse criterion: %w", err)
	}
	return n, nil
}

// DecodeYAML parses a YAML-encoded criterion. JSON input is accepted too,
// since JSON is a subset of YAML.
func DecodeYAML(data []byte) (Named, error) {
	var n Named
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Named{}, fmt.Errorf("failed to parse criterion: %w", err)
	}
	return n, nil
}
