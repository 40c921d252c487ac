package interfaces

import (
	"context"

	"checkout_pro/internal/domain/entities"
)

// ICredentialRepository abstracts durable storage for the single named
// gateway credential. Get returns a zero Credential (no error) when the
// entry does not exist.

type ICredentialRepository interface {
	Get(ctx context.Context, name string) (entities.Credential, error)
	Put(ctx context.Context, cred entities.Credential) error
	Delete(ctx context.Context, name string) error
}
