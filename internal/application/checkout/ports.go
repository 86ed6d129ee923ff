package checkout

import (
	"context"

	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

// TxRunner abstrae la transacción de checkout. La implementación ata los tres
// repos a una misma tx: si el callback falla, nada queda persistido.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
