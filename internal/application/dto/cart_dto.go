package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddToCartRequest agrega (o suma) una cantidad de un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,min=1"`
}

// SetCartQuantityRequest fija la cantidad exacta de una línea; 0 la elimina.
type SetCartQuantityRequest struct {
	Quantity int64 `json:"quantity" validate:"min=0"`
}

// CartLineResponse línea del carrito enriquecida con datos del producto.
type CartLineResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	VendorID    string          `json:"vendor_id"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	AddedAt     time.Time       `json:"added_at"`
}

// CartResponse carrito completo con total estimado (el precio definitivo se
// congela recién en el checkout).
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
