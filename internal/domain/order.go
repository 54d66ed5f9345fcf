package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a completed sale as reported by the inventory API. Read-only here.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	User      OrderUser       `json:"user"`
	Items     []OrderItem     `json:"items"`
}

type OrderUser struct {
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

type OrderItem struct {
	ID        string          `json:"id,omitempty"`
	OrderID   string          `json:"orderId,omitempty"`
	ProductID string          `json:"productId"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Product   OrderProduct    `json:"product"`
}

type OrderProduct struct {
	Name string `json:"nombre"`
}

// SaleLineItem is one product in a cart being built. Price is locked in when
// the product is first added.
type SaleLineItem struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleInput is the order-creation payload.
type CreateSaleInput struct {
	UserID string         `json:"userId"`
	Items  []SaleLineItem `json:"items"`
}
