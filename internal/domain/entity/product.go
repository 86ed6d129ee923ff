package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por un vendedor.
// Stock se descuenta de forma condicional en el checkout (nunca queda negativo).
type Product struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	Category    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
