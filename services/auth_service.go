//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"chat-circle/auth"
	"chat-circle/domain"
	"chat-circle/errors"
	"chat-circle/repositories"
	"chat-circle/storage"
	"context"
	"fmt"
	"log/slog"
	"time"
)

type IAuthService interface {
	Register(ctx context.Context, email, password, name string) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
	DeleteAccount(ctx context.Context, claims *auth.Claims) error
}

// Session is what a client keeps after signing in.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

type AuthService struct {
	accounts    repositories.IAccountRepository
	users       repositories.IUserRepository
	revocations repositories.IRevocationRepository
	blobs       storage.IBlobStore
	issuer      *auth.TokenIssuer
	gate        ISessionGate
	log         *slog.Logger
	now         func() time.Time
}

func NewAuthService(
	accounts repositories.IAccountRepository,
	users repositories.IUserRepository,
	revocations repositories.IRevocationRepository,
	blobs storage.IBlobStore,
	issuer *auth.TokenIssuer,
	gate ISessionGate,
	log *slog.Logger,
) *AuthService {
	return &AuthService{
		accounts:    accounts,
		users:       users,
		revocations: revocations,
		blobs:       blobs,
		issuer:      issuer,
		gate:        gate,
		log:         log,
		now:         time.Now,
	}
}

// Register creates the credentials and the public profile, then signs the user in.
// The profile is named after the email when no name is given.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (Session, error) {
	// Validate before any expensive cryptographic operation
	if err := auth.ValidateRegister(auth.RegisterRequest{Email: email, Password: password, Name: name}); err != nil {
		return Session{}, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	account, err := s.accounts.Create(email, hashedPassword)
	if err != nil {
		return Session{}, err
	}

	profile := domain.User{ID: account.ID, Name: domain.DisplayName(name, account.Email), Email: account.Email}
	if err := s.users.Create(ctx, profile); err != nil {
		if rollbackErr := s.accounts.Delete(account.ID); rollbackErr != nil {
			s.log.Error("Failed to roll back account", "user_id", account.ID, "error", rollbackErr)
		}
		return Session{}, err
	}

	return s.open(account)
}

func (s *AuthService) Login(_ context.Context, email, password string) (Session, error) {
	if err := auth.ValidateLogin(auth.LoginRequest{Email: email, Password: password}); err != nil {
		return Session{}, err
	}

	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, account.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	return s.open(account)
}

// Logout revokes the token for the rest of its lifetime.
func (s *AuthService) Logout(_ context.Context, claims *auth.Claims) error {
	if err := s.revoke(claims); err != nil {
		return err
	}
	s.gate.Publish(claims.UserID, domain.SignedOut)
	return nil
}

// Authenticate accepts a token that is well signed, not expired, not revoked
// and whose account still exists.
func (s *AuthService) Authenticate(_ context.Context, token string) (*auth.Claims, error) {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil, err
	}
	revoked, err := s.revocations.IsRevoked(claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", errors.ErrInvalidToken)
	}
	// Other tokens of a deleted account outlive the deletion, the account does not
	if _, err := s.accounts.GetByID(claims.UserID); err != nil {
		if errors.Is(err, errors.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: account deleted", errors.ErrInvalidToken)
		}
		return nil, err
	}
	if s.gate.State(claims.UserID) != domain.SignedIn {
		s.gate.Publish(claims.UserID, domain.SignedIn)
	}
	return claims, nil
}

// DeleteAccount removes the profile, the avatar and the credentials, in that order.
// A missing avatar blob does not stop the deletion.
func (s *AuthService) DeleteAccount(ctx context.Context, claims *auth.Claims) error {
	user, found, err := s.users.Get(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if found {
		if err := s.users.Delete(ctx, user.ID); err != nil {
			return err
		}
		if user.PhotoPath != "" {
			if err := s.blobs.Delete(user.PhotoPath); err != nil {
				s.log.Warn("Failed to delete avatar", "user_id", user.ID, "path", user.PhotoPath, "error", err)
			}
		}
	}

	if err := s.accounts.Delete(claims.UserID); err != nil && !errors.Is(err, errors.ErrAccountNotFound) {
		return err
	}
	if err := s.revoke(claims); err != nil {
		s.log.Warn("Failed to revoke token of deleted account", "user_id", claims.UserID, "error", err)
	}
	s.gate.Publish(claims.UserID, domain.Deleted)
	return nil
}

func (s *AuthService) open(account repositories.Account) (Session, error) {
	token, claims, err := s.issuer.Issue(account.ID, account.Roles)
	if err != nil {
		return Session{}, errors.ErrTokenGeneration
	}
	s.gate.Publish(account.ID, domain.SignedIn)
	return Session{Token: token, UserID: account.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (s *AuthService) revoke(claims *auth.Claims) error {
	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	return s.revocations.Revoke(claims.ID, ttl)
}
