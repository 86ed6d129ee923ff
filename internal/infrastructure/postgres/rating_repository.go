package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo implementación de RatingRepository sobre PostgreSQL.
type RatingRepo struct {
	q Querier
}

// NewRatingRepository construye el adaptador de calificaciones.
func NewRatingRepository(q Querier) *RatingRepo {
	return &RatingRepo{q: q}
}

// Upsert inserta o sobreescribe la calificación apoyado en la constraint única
// (user_id, product_id): reenviar actualiza score y comentario, nunca duplica.
func (r *RatingRepo) Upsert(rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ratings (id, user_id, product_id, order_id, score, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET score = EXCLUDED.score, comment = EXCLUDED.comment,
		              order_id = EXCLUDED.order_id, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		rating.ID, rating.UserID, rating.ProductID, rating.OrderID,
		rating.Score, nullIfEmpty(rating.Comment), rating.CreatedAt, rating.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// GetByUserAndProduct obtiene la calificación de un usuario sobre un producto.
func (r *RatingRepo) GetByUserAndProduct(userID, productID string) (*entity.Rating, error) {
	query := `
		SELECT id, user_id, product_id, order_id, COALESCE(comment, ''), score, created_at, updated_at
		FROM ratings WHERE user_id = $1 AND product_id = $2`
	var rt entity.Rating
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&rt.ID, &rt.UserID, &rt.ProductID, &rt.OrderID, &rt.Comment, &rt.Score,
		&rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rt, nil
}

// ListByProduct lista las calificaciones de un producto, más recientes primero.
func (r *RatingRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Rating, error) {
	query := `
		SELECT id, user_id, product_id, order_id, COALESCE(comment, ''), score, created_at, updated_at
		FROM ratings WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rating
	for rows.Next() {
		var rt entity.Rating
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.ProductID, &rt.OrderID, &rt.Comment,
			&rt.Score, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		list = append(list, &rt)
	}
	return list, rows.Err()
}

// SummaryByProduct devuelve promedio y cantidad de calificaciones de un producto.
func (r *RatingRepo) SummaryByProduct(productID string) (*repository.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(score), 0), COUNT(*)
		FROM ratings WHERE product_id = $1`
	var s repository.RatingSummary
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&s.Average, &s.Count)
	if err != nil {
		return nil, fmt.Errorf("rating summary: %w", err)
	}
	return &s, nil
}
