package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Genero string

const (
	GeneroHombre Genero = "HOMBRE"
	GeneroMujer  Genero = "MUJER"
	GeneroNino   Genero = "NINO"
)

func (g Genero) Valid() bool {
	switch g {
	case GeneroHombre, GeneroMujer, GeneroNino:
		return true
	}
	return false
}

type EstadoProducto string

const (
	EstadoActivo   EstadoProducto = "ACTIVO"
	EstadoInactivo EstadoProducto = "INACTIVO"
)

func (e EstadoProducto) Valid() bool {
	return e == EstadoActivo || e == EstadoInactivo
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	Genero      Genero          `json:"genero,omitempty"`
	Brand       string          `json:"marca,omitempty"`
	Price       decimal.Decimal `json:"precio"`
	Images      []string        `json:"imagenes,omitempty"`
	Stock       int             `json:"stock"`
	Estado      EstadoProducto  `json:"estado,omitempty"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Category    *Category       `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductInput is the create/update payload accepted by the inventory API.
// Pointer fields are omitted on partial updates.
type ProductInput struct {
	Name        *string          `json:"nombre,omitempty"`
	Description *string          `json:"descripcion,omitempty"`
	Genero      *Genero          `json:"genero,omitempty"`
	Brand       *string          `json:"marca,omitempty"`
	Price       *decimal.Decimal `json:"precio,omitempty"`
	Images      []string         `json:"imagenes,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Estado      *EstadoProducto  `json:"estado,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
}

// ProductFilter narrows product listings; zero values are ignored.
type ProductFilter struct {
	Genero     Genero
	Brand      string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Estado     EstadoProducto
}
