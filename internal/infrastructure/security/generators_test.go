package security

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePrefixedID(t *testing.T) {
	id := GeneratePrefixedID("comment")
	require.True(t, strings.HasPrefix(id, "comment-"))

	_, err := ulid.Parse(strings.TrimPrefix(id, "comment-"))
	assert.NoError(t, err)
}

func TestGeneratePrefixedIDUnique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		id := GeneratePrefixedID("analysis")
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestGenerateClientID(t *testing.T) {
	_, err := uuid.Parse(GenerateClientID())
	assert.NoError(t, err)
}
