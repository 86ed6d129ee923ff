package repository

import "github.com/jhoicas/softshop-api/internal/domain/entity"

// RatingSummary promedio y cantidad de calificaciones de un producto.
type RatingSummary struct {
	Average float64
	Count   int64
}

// RatingRepository puerto de persistencia para calificaciones.
// Upsert se apoya en la constraint única (user_id, product_id): reenviar
// sobreescribe score y comentario en lugar de duplicar filas.
type RatingRepository interface {
	Upsert(rating *entity.Rating) error
	GetByUserAndProduct(userID, productID string) (*entity.Rating, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Rating, error)
	SummaryByProduct(productID string) (*RatingSummary, error)
}
