package seed

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}

type ProductStore interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
}

type productSeed struct {
	Name        string
	Description string
	Genero      domain.Genero
	Brand       string
	Price       string
	Stock       int
	Category    string
}

var categorySeeds = []string{"Camisas", "Pantalones", "Vestidos"}

var productSeeds = []productSeed{
	{Name: "Camisa Oxford", Description: "Algodon, manga larga", Genero: domain.GeneroHombre, Brand: "Demo", Price: "24.90", Stock: 12, Category: "Camisas"},
	{Name: "Jean Recto", Description: "Denim azul", Genero: domain.GeneroMujer, Brand: "Demo", Price: "39.50", Stock: 8, Category: "Pantalones"},
	{Name: "Vestido Floral", Genero: domain.GeneroMujer, Brand: "Demo", Price: "45.00", Stock: 5, Category: "Vestidos"},
	{Name: "Polo Infantil", Genero: domain.GeneroNino, Brand: "Demo", Price: "14.99", Stock: 20, Category: "Camisas"},
}

// Apply creates demo categories and products in the inventory API. Entries
// that already exist by name are left alone so reruns are harmless.
func Apply(ctx context.Context, categories CategoryStore, products ProductStore, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	categoryIDs, err := ensureCategories(ctx, categories, logger)
	if err != nil {
		return fmt.Errorf("ensure categories: %w", err)
	}

	existing, err := products.List(ctx, domain.ProductFilter{})
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[strings.ToLower(p.Name)] = true
	}

	for _, p := range productSeeds {
		if have[strings.ToLower(p.Name)] {
			continue
		}
		if err := createProduct(ctx, products, p, categoryIDs[p.Category]); err != nil {
			return fmt.Errorf("create product %s: %w", p.Name, err)
		}
		logger.Printf("seed: created product name=%q", p.Name)
	}

	return nil
}

func ensureCategories(ctx context.Context, repo CategoryStore, logger *log.Logger) (map[string]string, error) {
	list, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(list))
	for _, c := range list {
		byName[strings.ToLower(c.Name)] = c.ID
	}

	ids := make(map[string]string, len(categorySeeds))
	for _, name := range categorySeeds {
		if id, ok := byName[strings.ToLower(name)]; ok {
			ids[name] = id
			continue
		}
		created, err := repo.Create(ctx, domain.CategoryInput{Name: name})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		logger.Printf("seed: created category name=%q id=%s", name, created.ID)
		ids[name] = created.ID
	}
	return ids, nil
}

func createProduct(ctx context.Context, repo ProductStore, p productSeed, categoryID string) error {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return err
	}
	estado := domain.EstadoActivo
	in := domain.ProductInput{
		Name:       &p.Name,
		Genero:     &p.Genero,
		Brand:      &p.Brand,
		Price:      &price,
		Stock:      &p.Stock,
		Estado:     &estado,
		CategoryID: &categoryID,
	}
	if p.Description != "" {
		in.Description = &p.Description
	}
	_, err = repo.Create(ctx, in)
	return err
}
