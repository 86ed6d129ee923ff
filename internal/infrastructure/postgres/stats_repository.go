package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas de solo lectura para el panel admin.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Counts devuelve los conteos globales de la plataforma en una sola consulta.
func (r *StatsRepo) Counts(ctx context.Context) (*repository.CountsResult, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM users WHERE role = 'user')   AS users,
	    (SELECT COUNT(*) FROM users WHERE role = 'vendor') AS vendors,
	    (SELECT COUNT(*) FROM products)                    AS products,
	    (SELECT COUNT(*) FROM orders)                      AS orders`
	var c repository.CountsResult
	if err := r.pool.QueryRow(ctx, query).Scan(&c.Users, &c.Vendors, &c.Products, &c.Orders); err != nil {
		return nil, fmt.Errorf("stats.Counts: %w", err)
	}
	return &c, nil
}

// Revenue suma los totales de órdenes paid y fulfilled del período.
// Usa COALESCE para devolver cero si no hay filas (período sin ventas).
func (r *StatsRepo) Revenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0)
	FROM orders
	WHERE status IN ($1, $2) AND created_at BETWEEN $3 AND $4`
	var revenue decimal.Decimal
	err := r.pool.QueryRow(ctx, query,
		entity.OrderStatusPaid, entity.OrderStatusFulfilled, start, end).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stats.Revenue: %w", err)
	}
	return revenue, nil
}

// OrdersByStatus agrupa las órdenes por estado.
func (r *StatsRepo) OrdersByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("stats.OrdersByStatus: %w", err)
	}
	defer rows.Close()
	result := map[string]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("stats.OrdersByStatus scan: %w", err)
		}
		result[status] = count
	}
	return result, rows.Err()
}

// TopProducts devuelve los `limit` productos con mayor ingreso del período,
// expandiendo el snapshot JSON de líneas de cada orden válida.
func (r *StatsRepo) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductRow, error) {
	const query = `
	SELECT
	    item->>'product_id'                                              AS product_id,
	    MAX(item->>'name')                                               AS name,
	    SUM((item->>'quantity')::BIGINT)                                 AS units_sold,
	    SUM((item->>'unit_price')::NUMERIC * (item->>'quantity')::BIGINT) AS revenue
	FROM orders o,
	     jsonb_array_elements(o.items) AS item
	WHERE o.status IN ($1, $2)
	  AND o.created_at BETWEEN $3 AND $4
	GROUP BY item->>'product_id'
	ORDER BY revenue DESC
	LIMIT $5`
	rows, err := r.pool.Query(ctx, query,
		entity.OrderStatusPaid, entity.OrderStatusFulfilled, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopProducts: %w", err)
	}
	defer rows.Close()
	var results []repository.TopProductRow
	for rows.Next() {
		var row repository.TopProductRow
		if err := rows.Scan(&row.ProductID, &row.Name, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("stats.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
