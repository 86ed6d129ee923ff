package repository

import "github.com/jhoicas/softshop-api/internal/domain/entity"

// ProductFilter predicados simples del catálogo. Query se compara plegado
// (sin mayúsculas ni tildes) contra nombre y descripción.
type ProductFilter struct {
	Category string
	Query    string
	VendorID string
	Active   *bool
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Categories() ([]string, error)
	// DecrementStock descuenta qty solo si hay stock suficiente (UPDATE condicional).
	// Devuelve false si el stock era insuficiente.
	DecrementStock(productID string, qty int64) (bool, error)
	IncrementStock(productID string, qty int64) error
}
