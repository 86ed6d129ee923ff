package checkout

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// UseCase convierte el carrito de un usuario en órdenes, una por vendedor.
// Toda la operación corre dentro de una transacción: leer carrito, descontar
// stock, crear órdenes y vaciar el carrito se confirman juntos o no se
// confirma nada.
type UseCase struct {
	txRunner     TxRunner
	payDelay     time.Duration
	fulfillDelay time.Duration
	log          zerolog.Logger
}

// NewUseCase construye el caso de uso de checkout.
func NewUseCase(txRunner TxRunner, payDelay, fulfillDelay time.Duration, log zerolog.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, payDelay: payDelay, fulfillDelay: fulfillDelay, log: log}
}

// Checkout congela precios y cantidades al momento de la llamada:
//   - carrito vacío -> ErrEmptyCart
//   - producto borrado o inactivo en el carrito -> ErrConflict
//   - stock insuficiente en CUALQUIER línea -> ErrInsufficientStock y rollback
//     completo (ninguna línea se descuenta, el carrito queda intacto)
//
// Las líneas se parten por vendedor: V vendedores producen V órdenes que
// comparten CheckoutID. Cada orden nace pending con su transición a paid
// programada en next_status_due.
func (uc *UseCase) Checkout(ctx context.Context, userID string) (*dto.CheckoutResponse, error) {
	var resp *dto.CheckoutResponse

	err := uc.txRunner.RunCheckout(ctx, func(
		cartRepo repository.CartRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error {
		lines, err := cartRepo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		// Snapshot por vendedor: precio y nombre vigentes al instante del checkout.
		byVendor := make(map[string][]entity.OrderItem)
		for _, line := range lines {
			product, err := productRepo.GetByID(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Active {
				return domain.ErrConflict
			}
			ok, err := productRepo.DecrementStock(product.ID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrInsufficientStock
			}
			byVendor[product.VendorID] = append(byVendor[product.VendorID], entity.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				UnitPrice: product.Price,
				Quantity:  line.Quantity,
			})
		}

		// Orden de vendedores estable para que la respuesta sea determinista.
		vendorIDs := make([]string, 0, len(byVendor))
		for vendorID := range byVendor {
			vendorIDs = append(vendorIDs, vendorID)
		}
		sort.Strings(vendorIDs)

		checkoutID := uuid.New().String()
		now := time.Now()
		due := now.Add(uc.payDelay)
		grandTotal := decimal.Zero
		orders := make([]dto.OrderResponse, 0, len(vendorIDs))

		for _, vendorID := range vendorIDs {
			items := byVendor[vendorID]
			total := decimal.Zero
			for _, item := range items {
				total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
			}
			raw, err := json.Marshal(items)
			if err != nil {
				return err
			}
			order := &entity.Order{
				ID:            uuid.New().String(),
				CheckoutID:    checkoutID,
				UserID:        userID,
				VendorID:      vendorID,
				Items:         raw,
				Total:         total,
				Status:        entity.OrderStatusPending,
				NextStatusDue: &due,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := orderRepo.Create(order); err != nil {
				return err
			}
			grandTotal = grandTotal.Add(total)
			orders = append(orders, *ToOrderResponse(order))
		}

		if err := cartRepo.Clear(userID); err != nil {
			return err
		}

		resp = &dto.CheckoutResponse{
			CheckoutID: checkoutID,
			Orders:     orders,
			Total:      grandTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("checkout_id", resp.CheckoutID).
		Str("user_id", userID).
		Int("orders", len(resp.Orders)).
		Str("total", resp.Total.String()).
		Msg("Checkout completado")
	return resp, nil
}

// ToOrderResponse arma el DTO de salida de una orden, decodificando el snapshot.
func ToOrderResponse(order *entity.Order) *dto.OrderResponse {
	if order == nil {
		return nil
	}
	items, err := order.DecodeItems()
	if err != nil {
		items = nil
	}
	outItems := make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		outItems = append(outItems, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:            order.ID,
		CheckoutID:    order.CheckoutID,
		UserID:        order.UserID,
		VendorID:      order.VendorID,
		Items:         outItems,
		Total:         order.Total,
		Status:        order.Status,
		NextStatusDue: order.NextStatusDue,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}
