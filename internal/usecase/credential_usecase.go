package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"checkout_pro/internal/domain/entities"
	"checkout_pro/internal/usecase/interfaces"
)

var (
	ErrInvalidCredential       = errors.New("invalid credential")
	ErrCredentialNotConfigured = errors.New("payment credential not configured")
)

// ICredentialUseCase manages the single named gateway credential.
//
// Configure replaces the active credential; sessions that already resolved a
// gateway keep the credential they started with.

type ICredentialUseCase interface {
	Configure(ctx context.Context, accessToken string) (entities.Credential, error)
	Current(ctx context.Context) (entities.Credential, error)
	Reset(ctx context.Context) error
}

type CredentialUseCase struct {
	repo interfaces.ICredentialRepository
}

var _ ICredentialUseCase = (*CredentialUseCase)(nil)

func NewCredentialUseCase(repo interfaces.ICredentialRepository) *CredentialUseCase {
	return &CredentialUseCase{repo: repo}
}

func (u *CredentialUseCase) Configure(ctx context.Context, accessToken string) (entities.Credential, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return entities.Credential{}, ErrInvalidCredential
	}

	cred := entities.Credential{
		Name:        entities.CredentialName,
		AccessToken: accessToken,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := u.repo.Put(ctx, cred); err != nil {
		log.Printf("[credential][usecase] configure failed err=%v", err)
		return entities.Credential{}, err
	}
	log.Printf("[credential][usecase] credential configured name=%s", cred.Name)
	return cred, nil
}

func (u *CredentialUseCase) Current(ctx context.Context) (entities.Credential, error) {
	cred, err := u.repo.Get(ctx, entities.CredentialName)
	if err != nil {
		return entities.Credential{}, err
	}
	if strings.TrimSpace(cred.AccessToken) == "" {
		return entities.Credential{}, ErrCredentialNotConfigured
	}
	return cred, nil
}

func (u *CredentialUseCase) Reset(ctx context.Context) error {
	if err := u.repo.Delete(ctx, entities.CredentialName); err != nil {
		log.Printf("[credential][usecase] reset failed err=%v", err)
		return err
	}
	log.Printf("[credential][usecase] credential removed name=%s", entities.CredentialName)
	return nil
}
