package analytics

import (
	"fmt"
	"slices"
	"strings"

	"ventas-dashboard/internal/domain"
)

type SortKey string

const (
	SortByCustomer  SortKey = "nombre"
	SortByCreatedAt SortKey = "createdAt"
	SortByTotal     SortKey = "total"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortKey accepts an empty value as the default createdAt.
func ParseSortKey(v string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(v)) {
	case "":
		return SortByCreatedAt, nil
	case SortByCustomer:
		return SortByCustomer, nil
	case SortByCreatedAt:
		return SortByCreatedAt, nil
	case SortByTotal:
		return SortByTotal, nil
	}
	return "", fmt.Errorf("unsupported sort key %q", v)
}

// ParseSortDirection accepts an empty value as the default desc.
func ParseSortDirection(v string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(v))) {
	case "", Descending:
		return Descending, nil
	case Ascending:
		return Ascending, nil
	}
	return "", fmt.Errorf("unsupported sort direction %q", v)
}

// FilterOrders keeps orders whose customer name or id contains term, ignoring case.
func FilterOrders(orders []domain.Order, term string) []domain.Order {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(orders)
	}
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.User.Name), term) || strings.Contains(strings.ToLower(o.ID), term) {
			out = append(out, o)
		}
	}
	return out
}

// SortOrders returns a sorted copy of orders.
func SortOrders(orders []domain.Order, key SortKey, dir SortDirection) []domain.Order {
	sorted := slices.Clone(orders)
	sign := 1
	if dir != Ascending {
		sign = -1
	}
	slices.SortStableFunc(sorted, func(a, b domain.Order) int {
		var c int
		switch key {
		case SortByCustomer:
			c = strings.Compare(strings.ToLower(a.User.Name), strings.ToLower(b.User.Name))
		case SortByTotal:
			c = a.Total.Cmp(b.Total)
		default:
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		return c * sign
	})
	return sorted
}
