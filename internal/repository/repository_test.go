package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTechStackRoundTrip(t *testing.T) {
	raw := marshalTechStack([]string{"a", "b"})
	require.NotNil(t, raw)
	assert.Equal(t, `["a","b"]`, *raw)

	parsed := unmarshalTechStack(raw)
	assert.Equal(t, []string{"a", "b"}, parsed)
}

func TestTechStackNilStaysNil(t *testing.T) {
	assert.Nil(t, marshalTechStack(nil))
	assert.Nil(t, unmarshalTechStack(nil))
}

func TestTechStackEmptyListRoundTrip(t *testing.T) {
	raw := marshalTechStack([]string{})
	require.NotNil(t, raw)
	assert.Equal(t, `[]`, *raw)
	assert.Equal(t, []string{}, unmarshalTechStack(raw))
}

func TestTechStackMalformedReadsAsNil(t *testing.T) {
	for _, bad := range []string{"", "not json", `{"a":1}`, `[1,2,3]`} {
		s := bad
		assert.Nil(t, unmarshalTechStack(&s), "input %q", bad)
	}
}
