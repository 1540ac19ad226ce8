package i

import (
	"time"
)

// Tokenizer defines methods for issuing and checking API client tokens.
type Tokenizer interface {
	// Generate creates a token with the given claims that expires after expTime.
	Generate(claims map[string]any, expTime time.Duration) (string, error)

	// Decode validates a token, including its issuer, and returns its claims.
	Decode(token string) (map[string]any, error)
}
