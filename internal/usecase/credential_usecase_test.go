package usecase

import (
	"context"
	"errors"
	"testing"

	"checkout_pro/internal/domain/entities"
	mock_interfaces "checkout_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCredentialUseCase_Configure(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewCredentialUseCase(nil)
		if _, err := uc.Configure(context.Background(), "   "); !errors.Is(err, ErrInvalidCredential) {
			t.Fatalf("expected ErrInvalidCredential, got %v", err)
		}
	})

	t.Run("stores trimmed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewCredentialUseCase(repo)

		var stored entities.Credential
		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cred entities.Credential) error {
				stored = cred
				return nil
			})

		cred, err := uc.Configure(context.Background(), "  APP_USR-token  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cred.AccessToken != "APP_USR-token" || cred.Name != entities.CredentialName {
			t.Fatalf("unexpected credential: %+v", cred)
		}
		if stored.AccessToken != "APP_USR-token" || stored.UpdatedAt.IsZero() {
			t.Fatalf("unexpected stored credential: %+v", stored)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewCredentialUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		if _, err := uc.Configure(context.Background(), "APP_USR-token"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCredentialUseCase_Current(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewCredentialUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.CredentialName).Return(entities.Credential{
			Name:        entities.CredentialName,
			AccessToken: "APP_USR-token",
		}, nil)

		cred, err := uc.Current(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cred.AccessToken != "APP_USR-token" {
			t.Fatalf("unexpected credential: %+v", cred)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewCredentialUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.CredentialName).Return(entities.Credential{}, nil)

		if _, err := uc.Current(context.Background()); !errors.Is(err, ErrCredentialNotConfigured) {
			t.Fatalf("expected ErrCredentialNotConfigured, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICredentialRepository(ctrl)
		uc := NewCredentialUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), entities.CredentialName).Return(entities.Credential{}, errors.New("db"))

		if _, err := uc.Current(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCredentialUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICredentialRepository(ctrl)
	uc := NewCredentialUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), entities.CredentialName).Return(nil)
	if err := uc.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), entities.CredentialName).Return(errors.New("db"))
	if err := uc.Reset(context.Background()); err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}
