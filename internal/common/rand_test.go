package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandBase36String(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{name: "empty", length: 0},
		{name: "short", length: 6},
		{name: "long", length: 32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := MakeRandBase36String(tc.length)
			require.NoError(t, err)
			assert.Len(t, s, tc.length)
			for _, r := range s {
				assert.True(t, strings.ContainsRune(base36Alphabet, r), "unexpected rune %q", r)
			}
		})
	}
}

func TestMakeRandBase36String_Varies(t *testing.T) {
	a, err := MakeRandBase36String(16)
	require.NoError(t, err)
	b, err := MakeRandBase36String(16)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
