package auth

import (
	"context"
	"errors"

	"github.com/Alubalulu/sales-forecast-app/internal/models"
	repo "github.com/Alubalulu/sales-forecast-app/internal/repository"
	"github.com/Alubalulu/sales-forecast-app/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=WhitelistChecker
type WhitelistChecker interface {
	Exists(ctx context.Context, email string) (bool, error)
}

type AuthService struct {
	trm       service.TransactionManager
	users     UserProvider
	whitelist WhitelistChecker
}

func NewAuthService(trm service.TransactionManager, users UserProvider, whitelist WhitelistChecker) *AuthService {
	return &AuthService{
		trm:       trm,
		users:     users,
		whitelist: whitelist,
	}
}

// SignIn maps a provider identity assertion to a user row. Emails outside the
// whitelist are rejected with repo.ErrNotWhitelisted and create nothing.
// First-time logins get an Individual row with no manager; a lost insert race
// for the same google_id resolves to the winning row, so concurrent first
// logins stay idempotent.
func (s *AuthService) SignIn(ctx context.Context, googleID, email, displayName string) (*models.User, error) {
	var signedIn *models.User

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		whitelisted, err := s.whitelist.Exists(ctx, email)
		if err != nil {
			return err
		}
		if !whitelisted {
			return repo.ErrNotWhitelisted
		}

		user, err := s.users.GetByGoogleID(ctx, googleID)
		if err == nil {
			signedIn = user
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		created, err := s.users.Create(ctx, &models.User{
			GoogleID:    googleID,
			Email:       email,
			DisplayName: displayName,
			Role:        models.RoleIndividual,
		})
		if err == nil {
			signedIn = created
			return nil
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return err
		}

		// lost the insert race; the conflicting row is this identity
		user, err = s.users.GetByGoogleID(ctx, googleID)
		if err != nil {
			return err
		}
		signedIn = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return signedIn, nil
}
