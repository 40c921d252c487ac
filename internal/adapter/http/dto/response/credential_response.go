package response

import (
	"time"

	"checkout_pro/internal/domain/entities"
)

type CredentialResponse struct {
	Configured  bool       `json:"configured"`
	AccessToken string     `json:"access_token,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// FromCredential masks the token: enough of the prefix to recognize which
// credential is active, never the full secret.
func FromCredential(c entities.Credential) CredentialResponse {
	if c.AccessToken == "" {
		return CredentialResponse{Configured: false}
	}
	updatedAt := c.UpdatedAt
	return CredentialResponse{
		Configured:  true,
		AccessToken: maskToken(c.AccessToken),
		UpdatedAt:   &updatedAt,
	}
}

func maskToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "********"
	}
	return token[:visible] + "..."
}
