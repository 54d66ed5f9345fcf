package sale

import (
	"context"
	"io"
	"log"

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

func (r *apiRepo) List(ctx context.Context) ([]domain.Order, error) {
	var result []domain.Order
	if err := r.client.Get(ctx, "/sales", nil, &result); err != nil {
		r.logger.Printf("sale repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("sale repo: list count=%d", len(result))
	return result, nil
}

func (r *apiRepo) CreateSale(ctx context.Context, in domain.CreateSaleInput) (*domain.Order, error) {
	var order domain.Order
	if err := r.client.Post(ctx, "/sales/generate", in, &order); err != nil {
		r.logger.Printf("sale repo: create user_id=%s items=%d error=%v", in.UserID, len(in.Items), err)
		return nil, err
	}
	r.logger.Printf("sale repo: created id=%s user_id=%s total=%s", order.ID, order.UserID, order.Total)
	return &order, nil
}
