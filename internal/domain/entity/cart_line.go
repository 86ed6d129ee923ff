package entity

import "time"

// CartLine línea de carrito con clave compuesta (user, product).
// Es efímera: se crea al agregar al carrito y se borra en el checkout o al quitarla.
type CartLine struct {
	UserID    string
	ProductID string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
