package cart

import (
	"context"

	"ventas-dashboard/internal/domain"
)

// Repository stores cart drafts. Every lookup is scoped by owner; a draft that
// belongs to someone else is reported as domain.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, ownerID string) (*domain.CartDraft, error)
	Get(ctx context.Context, ownerID, id string) (*domain.CartDraft, error)
	// Save replaces the selected customer and items of an existing draft.
	Save(ctx context.Context, draft *domain.CartDraft) error
	Delete(ctx context.Context, ownerID, id string) error
}
