package ports

import "context"

// SecretStore holds credentials such as the tracker API token.
// Get returns domain.ErrSecretNotFound for keys that were never stored,
// and Delete of a missing key is not an error.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
