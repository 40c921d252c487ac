package request

// CredentialRequest configures the gateway bearer credential.

type CredentialRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}
