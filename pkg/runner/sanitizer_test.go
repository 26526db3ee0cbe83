package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_CleanPassthrough(t *testing.T) {
	out, err := SanitizeInput(`set prompt "round %r> "`)
	require.NoError(t, err)
	assert.Equal(t, `set prompt "round %r> "`, out)
}

func TestSanitizeInput_StripsControlCharacters(t *testing.T) {
	out, err := SanitizeInput("get\x1b[31m edge\x00")
	require.NoError(t, err)
	assert.Equal(t, "get[31m edge", out)
}

func TestSanitizeInput_KeepsTabs(t *testing.T) {
	out, err := SanitizeInput("get\tedge")
	require.NoError(t, err)
	assert.Equal(t, "get\tedge", out)
}

func TestSanitizeInput_RejectsOversized(t *testing.T) {
	_, err := SanitizeInput(strings.Repeat("a", DefaultMaxInputSize+1))
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestSanitizeInput_SizeLimitOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")

	_, err := SanitizeInput("123456789")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	out, err := SanitizeInput("12345678")
	require.NoError(t, err)
	assert.Equal(t, "12345678", out)
}

func TestSanitizeInput_RejectsInvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("get \xff\xfe")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
