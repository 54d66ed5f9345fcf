package user

import (
	"context"
	"io"
	"log"
	"strings"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/domain"
)

type apiRepo struct {
	client *backend.Client
	logger *log.Logger
}

// NewAPI returns a Repository backed by the inventory API.
func NewAPI(client *backend.Client, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &apiRepo{client: client, logger: logger}
}

func (r *apiRepo) List(ctx context.Context) ([]domain.User, error) {
	var result []domain.User
	if err := r.client.Get(ctx, "/users", nil, &result); err != nil {
		r.logger.Printf("user repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("user repo: list count=%d", len(result))
	return result, nil
}

func (r *apiRepo) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := r.client.Get(ctx, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *apiRepo) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	creds.Email = strings.ToLower(strings.TrimSpace(creds.Email))
	var s domain.Session
	if err := r.client.Post(ctx, "/auth/login", creds, &s); err != nil {
		r.logger.Printf("user repo: login email=%s error=%v", creds.Email, err)
		return nil, err
	}
	r.logger.Printf("user repo: login email=%s id=%s", creds.Email, s.User.ID)
	return &s, nil
}

func (r *apiRepo) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	var u domain.User
	if err := r.client.Post(ctx, "/auth/register", reg, &u); err != nil {
		if backend.IsClientError(err) && strings.Contains(strings.ToLower(err.Error()), "exist") {
			r.logger.Printf("user repo: register email=%s already exists", reg.Email)
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: register email=%s error=%v", reg.Email, err)
		return nil, err
	}
	r.logger.Printf("user repo: registered email=%s id=%s", reg.Email, u.ID)
	return &u, nil
}
