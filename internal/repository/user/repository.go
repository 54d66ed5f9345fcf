package user

import (
	"context"

	"ventas-dashboard/internal/domain"
)

// Repository covers accounts and customers held by the inventory API.
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	Me(ctx context.Context) (*domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.User, error)
}
