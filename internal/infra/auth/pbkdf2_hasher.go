// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"

	"pond/config"
	"pond/internal/domain/service"
)

const (
	pbkdf2Scheme        = "pbkdf2_sha256"
	pbkdf2SaltLen       = 16 // 128-bit salt
	pbkdf2KeyLen        = 32
	pbkdf2MinIterations = 100_000
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2-HMAC-SHA256. The encoded output is self-describing
// ("pbkdf2_sha256$<iterations>$<salt>$<key>", base64url fields) so the
// iteration count can be raised without breaking stored records.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher. The configured
// iteration count is clamped to the minimum work factor.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := pbkdf2MinIterations
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PBKDF2Iterations > pbkdf2MinIterations {
		iterations = cfg.Auth.PBKDF2Iterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash derives a salted key from the plaintext password with a fresh random salt.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate password salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, pbkdf2KeyLen, sha256.New)

	encoded := fmt.Sprintf("%s$%d$%s$%s",
		pbkdf2Scheme,
		h.iterations,
		base64.RawURLEncoding.EncodeToString(salt),
		base64.RawURLEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the key with the parameters stored in the encoding and
// compares in constant time. Malformed encodings fail closed.
func (h *pbkdf2Hasher) Verify(password, encodedHash string) bool {
	iterations, salt, expectedKey, ok := parseEncodedHash(encodedHash)
	if !ok {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, iterations, len(expectedKey), sha256.New)

	// Full-length comparison regardless of where the keys first differ.
	return subtle.ConstantTimeCompare(computed, expectedKey) == 1
}

func parseEncodedHash(encodedHash string) (iterations int, salt, key []byte, ok bool) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 4 || parts[0] != pbkdf2Scheme {
		return 0, nil, nil, false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, false
	}

	salt, err = base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, false
	}

	key, err = base64.RawURLEncoding.DecodeString(parts[3])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, false
	}

	return iterations, salt, key, true
}
