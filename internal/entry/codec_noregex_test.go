//go:build filematcher_noregex

package entry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexVariantDisabled(t *testing.T) {
	assert.NotContains(t, Variants(), "Regex")

	_, err := DecodeJSON([]byte(`{"entry_name":{"Regex":"cat.*"},"entry_type":"File"}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant), "got %v", err)

	_, err = DecodeYAML([]byte("entry_name:\n  Regex: cat.*\nentry_type: File\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownVariant), "got %v", err)
}
