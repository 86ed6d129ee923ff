package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL (usable con pool o tx).
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador de carrito. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// Add suma qty a la línea (user, product) con un upsert atómico: dos requests
// concurrentes del mismo usuario no pierden cantidades.
func (r *CartRepo) Add(userID, productID string, qty int64) error {
	query := `
		INSERT INTO cart_lines (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, userID, productID, qty)
	if err != nil {
		return fmt.Errorf("add cart line: %w", err)
	}
	return nil
}

// SetQuantity fija la cantidad exacta de la línea (upsert).
func (r *CartRepo) SetQuantity(userID, productID string, qty int64) error {
	query := `
		INSERT INTO cart_lines (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, userID, productID, qty)
	if err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}
	return nil
}

// Get obtiene una línea puntual del carrito.
func (r *CartRepo) Get(userID, productID string) (*entity.CartLine, error) {
	query := `
		SELECT user_id, product_id, quantity, created_at, updated_at
		FROM cart_lines WHERE user_id = $1 AND product_id = $2`
	var l entity.CartLine
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&l.UserID, &l.ProductID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart line: %w", err)
	}
	return &l, nil
}

// ListByUser devuelve todas las líneas del carrito del usuario, más recientes primero.
func (r *CartRepo) ListByUser(userID string) ([]*entity.CartLine, error) {
	query := `
		SELECT user_id, product_id, quantity, created_at, updated_at
		FROM cart_lines WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartLine
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(&l.UserID, &l.ProductID, &l.Quantity, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Remove elimina una línea del carrito.
func (r *CartRepo) Remove(userID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_lines WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	return nil
}

// Clear vacía el carrito del usuario.
func (r *CartRepo) Clear(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_lines WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
