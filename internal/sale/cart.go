// Package sale builds a single point-of-sale order from line items before it
// is submitted to the inventory API.
package sale

import (
	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

// Cart is an ordered list of line items with at most one item per product.
type Cart []domain.SaleLineItem

// Add merges quantity of product into cart and returns the new cart.
// An existing line keeps its position and its captured price; a new product is
// appended at the current catalog price. A nil product or a non-positive
// quantity leaves the cart unchanged.
func Add(cart Cart, product *domain.Product, quantity int) Cart {
	if product == nil || quantity <= 0 {
		return cart
	}
	out := make(Cart, len(cart), len(cart)+1)
	copy(out, cart)
	for i := range out {
		if out[i].ProductID == product.ID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, domain.SaleLineItem{
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
	})
}

// Remove drops the line for productID. Remaining lines keep their order.
func Remove(cart Cart, productID string) Cart {
	out := make(Cart, 0, len(cart))
	for _, item := range cart {
		if item.ProductID == productID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Total is the exact sum of price*quantity. Rounding is left to presentation.
func Total(cart Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Quantity is the number of units across all lines.
func Quantity(cart Cart) int {
	n := 0
	for _, item := range cart {
		n += item.Quantity
	}
	return n
}

// Find returns the line for productID.
func Find(cart Cart, productID string) (domain.SaleLineItem, bool) {
	for _, item := range cart {
		if item.ProductID == productID {
			return item, true
		}
	}
	return domain.SaleLineItem{}, false
}
