package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse línea congelada de una orden.
type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID            string              `json:"id"`
	CheckoutID    string              `json:"checkout_id"`
	UserID        string              `json:"user_id"`
	VendorID      string              `json:"vendor_id"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	NextStatusDue *time.Time          `json:"next_status_due,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// CheckoutResponse resultado del checkout: una orden por vendedor del carrito.
type CheckoutResponse struct {
	CheckoutID string          `json:"checkout_id"`
	Orders     []OrderResponse `json:"orders"`
	Total      decimal.Decimal `json:"total"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// RateOrderRequest calificación de los productos de una orden fulfilled.
type RateOrderRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// RatingResponse salida de una calificación.
type RatingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	OrderID   string    `json:"order_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
