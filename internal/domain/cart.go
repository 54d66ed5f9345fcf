package domain

import "time"

// CartDraft is an in-progress sale owned by a signed-in dashboard user.
type CartDraft struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"-"`
	UserID    string         `json:"userId"`
	Items     []SaleLineItem `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
