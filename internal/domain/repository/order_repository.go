package repository

import (
	"context"
	"time"

	"github.com/jhoicas/softshop-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para órdenes. Las órdenes nunca se borran.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByUser(userID string, limit, offset int) ([]*entity.Order, error)
	ListByVendor(vendorID string, limit, offset int) ([]*entity.Order, error)
	List(limit, offset int) ([]*entity.Order, error)

	// ListDue devuelve órdenes no terminales con next_status_due vencido.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*entity.Order, error)
	// AdvanceStatus aplica una transición compare-and-swap:
	// UPDATE ... WHERE id = $id AND status = $from. Devuelve false si la orden
	// ya no estaba en $from (transición ya aplicada u orden cancelada) — eso
	// hace la operación idempotente y segura ante workers concurrentes.
	AdvanceStatus(ctx context.Context, id, from, to string, nextDue *time.Time) (bool, error)
}
