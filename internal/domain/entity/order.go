package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. Secuencia lineal pending -> paid -> fulfilled;
// cancelled solo es alcanzable desde pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusCancelled = "cancelled"
)

// OrderItem línea congelada al momento del checkout. El precio unitario es el
// vigente en ese instante; cambios posteriores del producto no afectan la orden.
type OrderItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// Order representa la compra de un usuario a UN vendedor. Un checkout con líneas
// de V vendedores produce V órdenes que comparten CheckoutID.
// NextStatusDue persiste la próxima transición programada: el worker la aplica
// aunque el proceso se reinicie (no depende de timers en memoria).
type Order struct {
	ID            string
	CheckoutID    string
	UserID        string
	VendorID      string
	Items         json.RawMessage // snapshot [] OrderItem
	Total         decimal.Decimal
	Status        string
	NextStatusDue *time.Time // nil cuando el estado es terminal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DecodeItems deserializa el snapshot de líneas.
func (o *Order) DecodeItems() ([]OrderItem, error) {
	var items []OrderItem
	if err := json.Unmarshal(o.Items, &items); err != nil {
		return nil, fmt.Errorf("decodificar items de la orden %s: %w", o.ID, err)
	}
	return items, nil
}

// IsTerminal indica si la orden ya no admite transiciones.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusFulfilled || o.Status == OrderStatusCancelled
}

// NextStatus devuelve el estado siguiente en la secuencia lineal, o "" si es terminal.
func NextStatus(status string) string {
	switch status {
	case OrderStatusPending:
		return OrderStatusPaid
	case OrderStatusPaid:
		return OrderStatusFulfilled
	default:
		return ""
	}
}
