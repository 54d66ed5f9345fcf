package dashboard

import (
	"context"
	"io"
	"log"

	"ventas-dashboard/internal/analytics"
	"ventas-dashboard/internal/domain"
)

type productLister interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

type saleLister interface {
	List(ctx context.Context) ([]domain.Order, error)
}

// Service derives dashboard figures from fresh API data on every call.
type Service struct {
	products productLister
	sales    saleLister
	limit    int
	logger   *log.Logger
}

func New(products productLister, sales saleLister, limit int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if limit <= 0 {
		limit = analytics.DefaultLimit
	}
	return &Service{products: products, sales: sales, limit: limit, logger: logger}
}

type Summary struct {
	Inventory   analytics.Inventory      `json:"inventory"`
	RecentSales []domain.Order           `json:"recentSales"`
	TopProducts []analytics.ProductSales `json:"topProducts"`
	SalesCount  int                      `json:"salesCount"`
}

// Summary builds the dashboard home. limit <= 0 uses the configured limit.
func (s *Service) Summary(ctx context.Context, limit int) (*Summary, error) {
	if limit <= 0 {
		limit = s.limit
	}
	products, err := s.products.List(ctx, domain.ProductFilter{})
	if err != nil {
		return nil, err
	}
	orders, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("dashboard: summary products=%d orders=%d limit=%d", len(products), len(orders), limit)

	recent := analytics.RecentSales(orders, limit)
	if recent == nil {
		recent = []domain.Order{}
	}
	return &Summary{
		Inventory:   analytics.InventoryTotals(products),
		RecentSales: recent,
		TopProducts: analytics.TopProducts(orders, limit),
		SalesCount:  len(orders),
	}, nil
}

// OrderQuery carries the raw sales-list query parameters.
type OrderQuery struct {
	Search  string
	SortBy  string
	SortDir string
}

// Orders returns the sales list filtered by Search and sorted by SortBy/SortDir.
func (s *Service) Orders(ctx context.Context, q OrderQuery) ([]domain.Order, error) {
	key, err := analytics.ParseSortKey(q.SortBy)
	if err != nil {
		return nil, domain.NewValidationError("sortBy", err.Error())
	}
	dir, err := analytics.ParseSortDirection(q.SortDir)
	if err != nil {
		return nil, domain.NewValidationError("sortDir", err.Error())
	}
	orders, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	result := analytics.SortOrders(analytics.FilterOrders(orders, q.Search), key, dir)
	if result == nil {
		result = []domain.Order{}
	}
	return result, nil
}
