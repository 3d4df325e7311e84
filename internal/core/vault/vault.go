// Package vault defines the secrets-resolver interface.
package vault

import "context"

// Type represents the type of vault.
type Type string

const (
	// TypeDotEnv represents a dotenv vault (for development).
	TypeDotEnv Type = "dotenv"
)

// Client defines the interface for secrets resolution.
type Client interface {
	// GetSecret retrieves a secret by URI (e.g. "dotenv://CACHE_ENCRYPTION_KEY").
	GetSecret(ctx context.Context, uri string) (string, error)

	// StoreSecret stores a secret and returns its URI.
	StoreSecret(ctx context.Context, key string, value string) (string, error)

	// Ping checks if the vault is reachable.
	Ping(ctx context.Context) error

	// Close closes the vault connection.
	Close() error
}
