package category

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

func NewAPI(client *backend.Client, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &apiRepo{client: client, logger: logger}
}

func (r *apiRepo) List(ctx context.Context) ([]domain.Category, error) {
	var result []domain.Category
	if err := r.client.Get(ctx, "/categories", nil, &result); err != nil {
		r.logger.Printf("category repo: list error=%v", err)
		return nil, err
	}
	r.logger.Printf("category repo: list count=%d", len(result))
	return result, nil
}

func (r *apiRepo) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := r.client.Post(ctx, "/categories", in, &out); err != nil {
		r.logger.Printf("category repo: create nombre=%s error=%v", in.Name, err)
		return nil, err
	}
	return &out, nil
}

func (r *apiRepo) Update(ctx context.Context, id string, in domain.CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := r.client.Patch(ctx, "/categories/"+url.PathEscape(id), in, &out); err != nil {
		r.logger.Printf("category repo: update id=%s error=%v", id, err)
		return nil, err
	}
	return &out, nil
}

func (r *apiRepo) Delete(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/categories/"+url.PathEscape(id)); err != nil {
		r.logger.Printf("category repo: delete id=%s error=%v", id, err)
		return err
	}
	return nil
}
