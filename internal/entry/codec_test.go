package entry

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var namedCmpOpts = []cmp.Option{
	cmp.AllowUnexported(Named{}),
	cmp.Comparer(Equal),
}

func TestNameJSONEncoding(t *testing.T) {
	tests := []struct {
		name string
		in   Name
		want string
	}{
		{"exact", Exact("cat.txt"), `{"Exact":"cat.txt"}`},
		{"any", Any{"cat.txt", "dog.txt"}, `{"Any":["cat.txt","dog.txt"]}`},
		{"nil any", Any(nil), `{"Any":[]}`},
		{"any named", AnyNamed{Exact("a"), Any{"b"}}, `{"AnyNamed":[{"Exact":"a"},{"Any":["b"]}]}`},
		{"empty any named", AnyNamed{}, `{"AnyNamed":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var v Value
			require.NoError(t, json.Unmarshal(data, &v))
			assert.True(t, Equal(tt.in, v.Name), "round trip changed %s", data)
		})
	}
}

func TestNamedJSONRoundTrip(t *testing.T) {
	in := Folder(AnyNamed{Exact("src"), Any{"lib", "pkg"}})

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"entry_name":{"AnyNamed":[{"Exact":"src"},{"Any":["lib","pkg"]}]},"entry_type":"Folder"}`,
		string(data))

	got, err := DecodeJSON(data)
	require.NoError(t, err)
	if diff := cmp.Diff(in, got, namedCmpOpts...); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNamedYAMLRoundTrip(t *testing.T) {
	in := AnyEntry(Any{"cat.txt", "dog.txt"})

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	got, err := DecodeYAML(data)
	require.NoError(t, err)
	if diff := cmp.Diff(in, got, namedCmpOpts...); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAMLDocument(t *testing.T) {
	doc := `
entry_name:
  AnyNamed:
    - Exact: cat.txt
    - Any: [dog.txt, fish.txt]
entry_type: File
`
	got, err := DecodeYAML([]byte(doc))
	require.NoError(t, err)

	want := File(AnyNamed{Exact("cat.txt"), Any{"dog.txt", "fish.txt"}})
	if diff := cmp.Diff(want, got, namedCmpOpts...); diff != "" {
		t.Errorf("decoded criterion mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAMLAcceptsJSON(t *testing.T) {
	got, err := DecodeYAML([]byte(`{"entry_name": {"Exact": "cat.txt"}, "entry_type": "Any"}`))
	require.NoError(t, err)
	assert.Equal(t, AnyType, got.Type())
	assert.True(t, Equal(Exact("cat.txt"), got.Name()))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		unknown bool
	}{
		{"unknown variant", `{"entry_name":{"Prefix":"cat"},"entry_type":"File"}`, "unknown entry name variant", true},
		{"two variant keys", `{"entry_name":{"Exact":"a","Any":["b"]},"entry_type":"File"}`, "exactly one variant key", false},
		{"no variant keys", `{"entry_name":{},"entry_type":"File"}`, "exactly one variant key", false},
		{"missing name", `{"entry_type":"File"}`, "missing entry_name", false},
		{"missing type", `{"entry_name":{"Exact":"a"}}`, "missing entry_type", false},
		{"bad type", `{"entry_name":{"Exact":"a"},"entry_type":"Symlink"}`, "invalid entry type", false},
		{"wrong payload", `{"entry_name":{"Exact":["a"]},"entry_type":"File"}`, "decode Exact", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/json", func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownVariant))
		})
		t.Run(tt.name+"/yaml", func(t *testing.T) {
			_, err := DecodeYAML([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.unknown, errors.Is(err, ErrUnknownVariant))
		})
	}
}

func TestMarshalNilName(t *testing.T) {
	_, err := json.Marshal(Named{})
	assert.Error(t, err)
}

func TestVariantsIncludesCoreVariants(t *testing.T) {
	variants := Variants()
	assert.Contains(t, variants, "Exact")
	assert.Contains(t, variants, "Any")
	assert.Contains(t, variants, "AnyNamed")
}
