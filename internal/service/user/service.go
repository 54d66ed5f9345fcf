package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/domain"
	userrepo "ventas-dashboard/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
)

// Service handles dashboard sign-in and customer lookups.
type Service struct {
	repo        userrepo.Repository
	passwordMin int
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo, passwordMin: 6}
}

// Login validates the form and exchanges credentials for an access token.
func (s *Service) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	email, err := normalizeEmail(creds.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(creds.Password, s.passwordMin); err != nil {
		return nil, err
	}
	session, err := s.repo.Login(ctx, domain.Credentials{Email: email, Password: creds.Password})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return session, nil
}

// Register creates a dashboard account.
func (s *Service) Register(ctx context.Context, in domain.Registration) (*domain.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password, s.passwordMin); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("nombre", "required")
	}
	return s.repo.Register(ctx, domain.Registration{Email: email, Password: in.Password, Name: name})
}

// LookupByToken returns the account the bearer token belongs to.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.Me(backend.WithToken(ctx, token))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return u, nil
}

// Current returns the account of the token already carried by ctx.
func (s *Service) Current(ctx context.Context) (*domain.User, error) {
	return s.repo.Me(ctx)
}

// Customers lists the users a sale can be made to.
func (s *Service) Customers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", domain.NewValidationError("email", "required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", domain.NewValidationError("email", "invalid email address")
	}
	return email, nil
}

func validatePassword(p string, min int) error {
	if len([]rune(p)) < min {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", min))
	}
	return nil
}
