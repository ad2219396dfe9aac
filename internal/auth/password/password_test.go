package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("secreto123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))

	assert.True(t, Verify("secreto123", encoded))
	assert.False(t, Verify("otro", encoded))
}

func TestHashesAreSalted(t *testing.T) {
	a, err := Hash("secreto123")
	require.NoError(t, err)
	b, err := Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	assert.False(t, Verify("x", ""))
	assert.False(t, Verify("x", "$argon2id$v=19$bad"))
	assert.False(t, Verify("x", "plaintext"))
}
