package domain

import "time"

// User is a dashboard account or a customer selectable on a sale.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"nombre"`
	Phone     string    `json:"tel,omitempty"`
	Address   string    `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nombre"`
}

// Session is what a successful login returns.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
