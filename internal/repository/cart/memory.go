package cart

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"ventas-dashboard/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	drafts map[string]domain.CartDraft
	now    func() time.Time
}

// NewMemory returns a process-local Repository. Drafts are lost on restart.
func NewMemory() Repository {
	return &memoryRepo{
		drafts: make(map[string]domain.CartDraft),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryRepo) Create(_ context.Context, ownerID string) (*domain.CartDraft, error) {
	now := r.now()
	d := domain.CartDraft{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Items:     []domain.SaleLineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.mu.Lock()
	r.drafts[d.ID] = d
	r.mu.Unlock()
	return cloneDraft(d), nil
}

func (r *memoryRepo) Get(_ context.Context, ownerID, id string) (*domain.CartDraft, error) {
	r.mu.RLock()
	d, ok := r.drafts[id]
	r.mu.RUnlock()
	if !ok || d.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return cloneDraft(d), nil
}

func (r *memoryRepo) Save(_ context.Context, draft *domain.CartDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.drafts[draft.ID]
	if !ok || stored.OwnerID != draft.OwnerID {
		return domain.ErrNotFound
	}
	stored.UserID = draft.UserID
	stored.Items = slices.Clone(draft.Items)
	stored.UpdatedAt = r.now()
	r.drafts[draft.ID] = stored
	draft.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drafts[id]
	if !ok || d.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.drafts, id)
	return nil
}

func cloneDraft(d domain.CartDraft) *domain.CartDraft {
	d.Items = slices.Clone(d.Items)
	if d.Items == nil {
		d.Items = []domain.SaleLineItem{}
	}
	return &d
}
