package entity

import "time"

// Rating calificación 1..5 de un usuario sobre un producto comprado.
// Único por (UserID, ProductID); reenviar sobreescribe en lugar de duplicar.
type Rating struct {
	ID        string
	UserID    string
	ProductID string
	OrderID   string
	Score     int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidScore valida el rango permitido.
func ValidScore(score int) bool {
	return score >= 1 && score <= 5
}
