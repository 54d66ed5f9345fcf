// Package analytics derives dashboard summaries from order and product lists.
// Every function is total over its input and never mutates it.
package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

// DefaultLimit is used when a caller passes a non-positive limit.
const DefaultLimit = 5

// ProductSales is the accumulated sales of one product.
type ProductSales struct {
	ProductID     string          `json:"id"`
	Name          string          `json:"nombre"`
	TotalQuantity int             `json:"totalQty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// Inventory holds stock totals across the catalog.
type Inventory struct {
	TotalUnits int             `json:"totalInventory"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// RecentSales returns up to limit orders, newest first.
func RecentSales(orders []domain.Order, limit int) []domain.Order {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return head(sorted, limit)
}

// TopProducts ranks products by units sold across all order items.
func TopProducts(orders []domain.Order, limit int) []ProductSales {
	index := make(map[string]int)
	summaries := make([]ProductSales, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			i, ok := index[item.ProductID]
			if !ok {
				index[item.ProductID] = len(summaries)
				summaries = append(summaries, ProductSales{
					ProductID:     item.ProductID,
					Name:          item.Product.Name,
					TotalQuantity: item.Quantity,
					TotalAmount:   amount,
				})
				continue
			}
			summaries[i].TotalQuantity += item.Quantity
			summaries[i].TotalAmount = summaries[i].TotalAmount.Add(amount)
		}
	}
	slices.SortStableFunc(summaries, func(a, b ProductSales) int {
		return b.TotalQuantity - a.TotalQuantity
	})
	return head(summaries, limit)
}

// InventoryTotals sums stock units and stock value.
func InventoryTotals(products []domain.Product) Inventory {
	inv := Inventory{TotalValue: decimal.Zero}
	for _, p := range products {
		inv.TotalUnits += p.Stock
		inv.TotalValue = inv.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return inv
}

func head[T any](s []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(s) > limit {
		s = s[:limit]
	}
	return s
}
