// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"moneta/internal/domain/service"
	"moneta/internal/errors"
)

const (
	// apiKeyByteLength is the number of random bytes backing each key.
	apiKeyByteLength = 32
	// apiKeyPrefixLength is how many leading characters of the raw key are
	// persisted for display in key listings.
	apiKeyPrefixLength = 16
	// apiKeyMinLength is a cheap lower bound on any key this service mints.
	apiKeyMinLength = 40

	livePrefix = "mnt_live_"
	testPrefix = "mnt_test_"
)

// apiKeyService is a concrete implementation of the ApiKeyService interface.
// Keys are 32 random bytes, hex encoded, behind an environment discriminator
// prefix. Only the SHA-256 hash of a key is ever persisted.
type apiKeyService struct{}

// NewApiKeyService is the constructor for apiKeyService.
func NewApiKeyService() service.ApiKeyService {
	return &apiKeyService{}
}

// Generate mints a new random key for the given environment.
func (s *apiKeyService) Generate(live bool) (*service.GeneratedApiKey, error) {
	raw := make([]byte, apiKeyByteLength)
	if _, err := rand.Read(raw); err != nil {
		return nil, errors.Wrap(err, "read random bytes")
	}

	prefix := testPrefix
	if live {
		prefix = livePrefix
	}
	key := prefix + hex.EncodeToString(raw)

	return &service.GeneratedApiKey{
		Key:       key,
		KeyPrefix: key[:apiKeyPrefixLength],
		KeyHash:   s.Hash(key),
	}, nil
}

// Hash returns the hex-encoded SHA-256 digest of a raw key.
func (s *apiKeyService) Hash(key string) string {
	digest := sha256.Sum256([]byte(key))

	return hex.EncodeToString(digest[:])
}

// Verify reports whether a raw key matches a stored hash.
func (s *apiKeyService) Verify(key, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(s.Hash(key)), []byte(hash)) == 1
}

// ValidateFormat cheaply rejects strings that cannot be keys minted by this
// service, avoiding a database round trip on garbage input.
func (s *apiKeyService) ValidateFormat(key string) bool {
	if len(key) < apiKeyMinLength {
		return false
	}

	return strings.HasPrefix(key, livePrefix) || strings.HasPrefix(key, testPrefix)
}
