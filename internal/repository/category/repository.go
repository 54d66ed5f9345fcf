package category

import (
	"context"

	"ventas-dashboard/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
