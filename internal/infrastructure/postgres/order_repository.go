package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, checkout_id, user_id, vendor_id, items, total, status, next_status_due, created_at, updated_at`

// Create persiste una orden con su snapshot de líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, checkout_id, user_id, vendor_id, items, total, status, next_status_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CheckoutID, order.UserID, order.VendorID, order.Items,
		order.Total, order.Status, order.NextStatusDue, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CheckoutID, &o.UserID, &o.VendorID, &o.Items, &o.Total,
		&o.Status, &o.NextStatusDue, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListByUser lista las órdenes del comprador, más recientes primero.
func (r *OrderRepo) ListByUser(userID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, userID, limit, offset)
}

// ListByVendor lista las órdenes dirigidas a un vendedor, más recientes primero.
func (r *OrderRepo) ListByVendor(vendorID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE vendor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryMany(query, vendorID, limit, offset)
}

// List lista todas las órdenes (panel admin), más recientes primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, limit, offset)
}

// ListDue devuelve órdenes con transición programada ya vencida. El orden por
// next_status_due hace que las más atrasadas (p.ej. tras un reinicio largo) salgan primero.
func (r *OrderRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE next_status_due IS NOT NULL AND next_status_due <= $1
		  AND status IN ($2, $3)
		ORDER BY next_status_due ASC
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, now, entity.OrderStatusPending, entity.OrderStatusPaid, limit)
	if err != nil {
		return nil, fmt.Errorf("list due orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// AdvanceStatus aplica la transición from->to solo si la orden sigue en from.
// RowsAffected == 0 significa que otro worker ya la aplicó o la orden fue
// cancelada: aplicar dos veces es un no-op.
func (r *OrderRepo) AdvanceStatus(ctx context.Context, id, from, to string, nextDue *time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3, next_status_due = $4, updated_at = now() WHERE id = $1 AND status = $2`,
		id, from, to, nextDue,
	)
	if err != nil {
		return false, fmt.Errorf("advance order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *OrderRepo) queryMany(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CheckoutID, &o.UserID, &o.VendorID, &o.Items, &o.Total,
			&o.Status, &o.NextStatusDue, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
