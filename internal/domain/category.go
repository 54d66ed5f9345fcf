package domain

import "time"

type Category struct {
	ID        string         `json:"id"`
	Name      string         `json:"nombre"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Count     *CategoryCount `json:"_count,omitempty"`
	Products  []Product      `json:"products,omitempty"`
}

type CategoryCount struct {
	Products int `json:"products"`
}

type CategoryInput struct {
	Name string `json:"nombre"`
}
