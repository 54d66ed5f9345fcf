package product

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ventas-dashboard/internal/domain"
	productrepo "ventas-dashboard/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if filter.Genero != "" && !filter.Genero.Valid() {
		return nil, domain.NewValidationError("genero", "must be HOMBRE, MUJER or NINO")
	}
	if filter.Estado != "" && !filter.Estado.Valid() {
		return nil, domain.NewValidationError("estado", "must be ACTIVO or INACTIVO")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, domain.NewValidationError("minPrecio", "must not exceed maxPrecio")
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create requires every field the product form marks as mandatory.
func (s *Service) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	switch {
	case in.Name == nil || strings.TrimSpace(*in.Name) == "":
		return nil, domain.NewValidationError("nombre", "required")
	case in.Brand == nil || strings.TrimSpace(*in.Brand) == "":
		return nil, domain.NewValidationError("marca", "required")
	case in.Genero == nil:
		return nil, domain.NewValidationError("genero", "required")
	case in.Price == nil:
		return nil, domain.NewValidationError("precio", "required")
	case in.CategoryID == nil || strings.TrimSpace(*in.CategoryID) == "":
		return nil, domain.NewValidationError("categoryId", "required")
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// Update sends only the fields that are set.
func (s *Service) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.NewValidationError("nombre", "must not be empty")
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(in domain.ProductInput) error {
	if in.Genero != nil && !in.Genero.Valid() {
		return domain.NewValidationError("genero", "must be HOMBRE, MUJER or NINO")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return domain.NewValidationError("precio", "must be zero or more")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return domain.NewValidationError("stock", "must be zero or more")
	}
	if in.Estado != nil && !in.Estado.Valid() {
		return domain.NewValidationError("estado", "must be ACTIVO or INACTIVO")
	}
	if in.CategoryID != nil && uuid.Validate(*in.CategoryID) != nil {
		return domain.NewValidationError("categoryId", "invalid category")
	}
	return nil
}
