package seed

import (
	"context"
	"errors"
	"testing"

	"ventas-dashboard/internal/domain"
)

type stubCategories struct {
	existing []domain.Category
	created  []string
}

func (s *stubCategories) List(context.Context) ([]domain.Category, error) {
	return s.existing, nil
}

func (s *stubCategories) Create(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	s.created = append(s.created, in.Name)
	return &domain.Category{ID: "new-" + in.Name, Name: in.Name}, nil
}

type stubProducts struct {
	existing []domain.Product
	created  []domain.ProductInput
	err      error
}

func (s *stubProducts) List(context.Context, domain.ProductFilter) ([]domain.Product, error) {
	return s.existing, nil
}

func (s *stubProducts) Create(_ context.Context, in domain.ProductInput) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, in)
	return &domain.Product{ID: "p"}, nil
}

func TestApplyCreatesMissingOnly(t *testing.T) {
	cats := &stubCategories{existing: []domain.Category{{ID: "c-1", Name: "camisas"}}}
	prods := &stubProducts{existing: []domain.Product{{Name: "Camisa Oxford"}}}

	if err := Apply(context.Background(), cats, prods, nil); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(cats.created) != len(categorySeeds)-1 {
		t.Fatalf("expected %d new categories, got %v", len(categorySeeds)-1, cats.created)
	}
	if len(prods.created) != len(productSeeds)-1 {
		t.Fatalf("expected %d new products, got %d", len(productSeeds)-1, len(prods.created))
	}
	for _, in := range prods.created {
		if *in.Name == "Camisa Oxford" {
			t.Fatalf("existing product must not be recreated")
		}
		if *in.Name == "Polo Infantil" && *in.CategoryID != "c-1" {
			t.Fatalf("expected existing category id, got %s", *in.CategoryID)
		}
	}
}

func TestApplyPropagatesErrors(t *testing.T) {
	prods := &stubProducts{err: errors.New("boom")}
	if err := Apply(context.Background(), &stubCategories{}, prods, nil); err == nil {
		t.Fatalf("expected error")
	}
}
