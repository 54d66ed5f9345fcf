package sale

import (
	"context"

	"ventas-dashboard/internal/domain"
)

// Repository reads completed sales and creates new ones in the inventory API.
type Repository interface {
	List(ctx context.Context) ([]domain.Order, error)
	CreateSale(ctx context.Context, in domain.CreateSaleInput) (*domain.Order, error)
}
