package service

// GeneratedApiKey carries the three derived forms of a freshly minted key.
// The raw Key is returned to the caller exactly once and never persisted.
type GeneratedApiKey struct {
	Key       string // The full raw key, e.g. "mnt_live_<hex>".
	KeyPrefix string // The first characters of the raw key, kept for display.
	KeyHash   string // The hex-encoded SHA-256 digest of the raw key.
}

// ApiKeyService defines the interface for minting and verifying API keys.
type ApiKeyService interface {
	// Generate mints a new random key. The live flag selects the
	// environment discriminator embedded in the key prefix.
	Generate(live bool) (*GeneratedApiKey, error)

	// Hash returns the hex-encoded SHA-256 digest of a raw key.
	Hash(key string) string

	// Verify reports whether a raw key matches a stored hash.
	Verify(key, hash string) bool

	// ValidateFormat cheaply rejects strings that cannot be keys minted
	// by this service, avoiding a database round trip.
	ValidateFormat(key string) bool
}
