package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/jhoicas/softshop-api/pkg/search"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, vendor_id, name, description, price, stock, category, active, created_at, updated_at`

// Create persiste un nuevo producto. search_text guarda nombre+descripción plegados
// para la búsqueda insensible a mayúsculas y tildes.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, vendor_id, name, description, price, stock, category, active, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.VendorID, product.Name, product.Description,
		product.Price, product.Stock, product.Category, product.Active,
		search.Fold(product.Name+" "+product.Description),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Price, &p.Stock,
		&p.Category, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. Stock no se toca aquí (se maneja con
// DecrementStock/IncrementStock para no perder actualizaciones concurrentes).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, category = $5, active = $6, search_text = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.Active,
		search.Fold(product.Name+" "+product.Description),
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos según el filtro, más recientes primero, con paginación.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + productColumns + ` FROM products WHERE 1=1`)
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Category != "" {
		sb.WriteString(` AND category = ` + arg(filter.Category))
	}
	if filter.VendorID != "" {
		sb.WriteString(` AND vendor_id = ` + arg(filter.VendorID))
	}
	if filter.Active != nil {
		sb.WriteString(` AND active = ` + arg(*filter.Active))
	}
	if filter.Query != "" {
		sb.WriteString(` AND search_text LIKE ` + arg("%"+search.Fold(filter.Query)+"%"))
	}
	sb.WriteString(` ORDER BY created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset))

	rows, err := r.q.Query(context.Background(), sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.VendorID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.Category, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Categories devuelve las categorías distintas de productos activos.
func (r *ProductRepo) Categories() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT category FROM products WHERE active = true AND category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DecrementStock descuenta qty solo si hay stock suficiente. El UPDATE condicional
// garantiza que dos checkouts concurrentes no vendan por debajo de cero.
func (r *ProductRepo) DecrementStock(productID string, qty int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		productID, qty,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// IncrementStock devuelve qty al stock (cancelación de una orden pending).
func (r *ProductRepo) IncrementStock(productID string, qty int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return nil
}
