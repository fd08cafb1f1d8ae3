package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pond/config"
)

func newHasherTestConfig(iterations int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			PBKDF2Iterations: iterations,
		},
	}
}

func TestPBKDF2Hasher_HashAndVerify(t *testing.T) {
	hasher := NewPBKDF2Hasher(newHasherTestConfig(100_000))
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, password)

	assert.True(t, hasher.Verify(password, hash))
	assert.False(t, hasher.Verify("WrongPassword123!", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPBKDF2Hasher_EncodingIsSelfDescribing(t *testing.T) {
	hasher := NewPBKDF2Hasher(newHasherTestConfig(120_000))

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "pbkdf2_sha256", parts[0])
	assert.Equal(t, "120000", parts[1])
	assert.NotEmpty(t, parts[2])
	assert.NotEmpty(t, parts[3])
}

func TestPBKDF2Hasher_DistinctSalts(t *testing.T) {
	hasher := NewPBKDF2Hasher(newHasherTestConfig(100_000))
	password := "StrongPass123!"

	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Same password, fresh salt, different encoding. Both must verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify(password, first))
	assert.True(t, hasher.Verify(password, second))
}

func TestPBKDF2Hasher_IterationsClampedToMinimum(t *testing.T) {
	hasher := NewPBKDF2Hasher(newHasherTestConfig(1_000))

	hash, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 4)
	assert.Equal(t, "100000", parts[1])
}

func TestPBKDF2Hasher_VerifyOldIterationCount(t *testing.T) {
	// A record hashed under an older, lower-iteration config must still
	// verify after the work factor is raised.
	oldHasher := NewPBKDF2Hasher(newHasherTestConfig(100_000))
	newHasher := NewPBKDF2Hasher(newHasherTestConfig(200_000))

	hash, err := oldHasher.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.True(t, newHasher.Verify("StrongPass123!", hash))
}

func TestPBKDF2Hasher_VerifyMalformedEncodings(t *testing.T) {
	hasher := NewPBKDF2Hasher(newHasherTestConfig(100_000))

	malformed := []string{
		"",
		"not-an-encoded-hash",
		"bcrypt$100000$c2FsdA$a2V5",           // wrong scheme
		"pbkdf2_sha256$100000$c2FsdA",         // missing key field
		"pbkdf2_sha256$100000$c2FsdA$a2V5$x",  // extra field
		"pbkdf2_sha256$abc$c2FsdA$a2V5",       // non-numeric iterations
		"pbkdf2_sha256$0$c2FsdA$a2V5",         // zero iterations
		"pbkdf2_sha256$-1$c2FsdA$a2V5",        // negative iterations
		"pbkdf2_sha256$100000$!!!$a2V5",       // invalid salt base64
		"pbkdf2_sha256$100000$c2FsdA$!!!",     // invalid key base64
		"pbkdf2_sha256$100000$$a2V5",          // empty salt
		"pbkdf2_sha256$100000$c2FsdA$",        // empty key
	}

	for _, encoded := range malformed {
		assert.False(t, hasher.Verify("StrongPass123!", encoded),
			"expected verification failure for encoding: %q", encoded)
	}
}
