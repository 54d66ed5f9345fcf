package sale

import (
	"context"
	"errors"
	"strings"

	"ventas-dashboard/internal/domain"
)

// FallbackSubmitMessage is shown when the inventory API gives no reason for a rejected sale.
const FallbackSubmitMessage = "error generating sale"

// OrderCreator creates an order in the inventory API.
type OrderCreator interface {
	CreateSale(ctx context.Context, in domain.CreateSaleInput) (*domain.Order, error)
}

// MessageError is implemented by upstream errors that carry a user-facing message.
type MessageError interface {
	error
	UserMessage() string
}

// Session is the state of the sale form: the selected customer and the cart.
type Session struct {
	UserID string
	Items  Cart
}

// Submit turns the whole session into one order. On success the returned
// session is empty. On any failure the input session is returned untouched so
// the caller can retry.
func Submit(ctx context.Context, s Session, creator OrderCreator) (Session, *domain.Order, error) {
	userID := strings.TrimSpace(s.UserID)
	if userID == "" {
		return s, nil, domain.NewValidationError("userId", "select a customer")
	}
	if len(s.Items) == 0 {
		return s, nil, domain.NewValidationError("items", "add at least one product")
	}

	items := make([]domain.SaleLineItem, len(s.Items))
	copy(items, s.Items)

	order, err := creator.CreateSale(ctx, domain.CreateSaleInput{UserID: userID, Items: items})
	if err != nil {
		return s, nil, &domain.SubmissionError{Message: submitMessage(err), Err: err}
	}
	return Session{}, order, nil
}

func submitMessage(err error) string {
	var me MessageError
	if errors.As(err, &me) {
		if msg := strings.TrimSpace(me.UserMessage()); msg != "" {
			return msg
		}
	}
	return FallbackSubmitMessage
}
