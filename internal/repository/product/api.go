package product

import (
	"context"
	"io"
	"log"
	"net/url"

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

func (r *apiRepo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	var result []domain.Product
	if err := r.client.Get(ctx, "/products", filterQuery(filter), &result); err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: list count=%d", len(result))
	return result, nil
}

func (r *apiRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.client.Get(ctx, "/products/"+url.PathEscape(id), nil, &p); err != nil {
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: get id=%s nombre=%s", id, p.Name)
	return &p, nil
}

func (r *apiRepo) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var p domain.Product
	if err := r.client.Post(ctx, "/products", in, &p); err != nil {
		r.logger.Printf("product repo: create error=%v", err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s", p.ID)
	return &p, nil
}

func (r *apiRepo) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	var p domain.Product
	if err := r.client.Patch(ctx, "/products/"+url.PathEscape(id), in, &p); err != nil {
		r.logger.Printf("product repo: update id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("product repo: updated id=%s", id)
	return &p, nil
}

func (r *apiRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/products/"+url.PathEscape(id)); err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	r.logger.Printf("product repo: deleted id=%s", id)
	return nil
}

func filterQuery(f domain.ProductFilter) url.Values {
	q := url.Values{}
	if f.Genero != "" {
		q.Set("genero", string(f.Genero))
	}
	if f.Brand != "" {
		q.Set("marca", f.Brand)
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.MinPrice != nil {
		q.Set("minPrecio", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("maxPrecio", f.MaxPrice.String())
	}
	if f.Estado != "" {
		q.Set("estado", string(f.Estado))
	}
	return q
}
