package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ventas-dashboard/internal/domain"
)

// Publisher publishes events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) PublishEvent(context.Context, string, string, any) error { return nil }

// SaleCreated is emitted after the inventory API accepted a sale built in a cart draft.
type SaleCreated struct {
	EventID    string                `json:"eventId"`
	OccurredAt time.Time             `json:"occurredAt"`
	OrderID    string                `json:"orderId"`
	DraftID    string                `json:"draftId"`
	SellerID   string                `json:"sellerId"`
	UserID     string                `json:"userId"`
	Total      decimal.Decimal       `json:"total"`
	Items      []domain.SaleLineItem `json:"items"`
}

// NewSaleCreated builds the event for order. Total falls back to the cart
// total when the API did not report one.
func NewSaleCreated(draft *domain.CartDraft, order *domain.Order, cartTotal decimal.Decimal) SaleCreated {
	total := order.Total
	if total.IsZero() {
		total = cartTotal
	}
	return SaleCreated{
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		OrderID:    order.ID,
		DraftID:    draft.ID,
		SellerID:   draft.OwnerID,
		UserID:     draft.UserID,
		Total:      total,
		Items:      draft.Items,
	}
}
