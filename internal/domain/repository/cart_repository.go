package repository

import "github.com/jhoicas/softshop-api/internal/domain/entity"

// CartRepository puerto de persistencia para líneas de carrito.
// Add y SetQuantity son atómicos en la DB para que dos requests concurrentes
// del mismo usuario no pierdan actualizaciones de cantidad.
type CartRepository interface {
	// Add suma qty a la línea (user, product), creándola si no existe.
	Add(userID, productID string, qty int64) error
	// SetQuantity fija la cantidad exacta de la línea.
	SetQuantity(userID, productID string, qty int64) error
	Get(userID, productID string) (*entity.CartLine, error)
	ListByUser(userID string) ([]*entity.CartLine, error)
	Remove(userID, productID string) error
	Clear(userID string) error
}
