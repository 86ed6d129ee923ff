package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/softshop-api/internal/application/checkout"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// ReceiptGenerator genera el comprobante PDF de una orden.
type ReceiptGenerator interface {
	OrderReceipt(order *entity.Order, items []entity.OrderItem) ([]byte, error)
}

// OrderUseCase consulta y ciclo de vida post-checkout de órdenes:
// listados por rol, cancelación, calificación y comprobante.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	ratingRepo  repository.RatingRepository
	receipts    ReceiptGenerator
	log         zerolog.Logger
}

// NewOrderUseCase construye el caso de uso de órdenes.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	ratingRepo repository.RatingRepository,
	receipts ReceiptGenerator,
	log zerolog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		ratingRepo:  ratingRepo,
		receipts:    receipts,
		log:         log,
	}
}

// GetForRequester devuelve la orden si el solicitante puede verla: el comprador,
// el vendedor de la orden o un admin. Cualquier otro recibe ErrForbidden.
func (uc *OrderUseCase) GetForRequester(orderID, requesterID, role string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := uc.authorize(order, requesterID, role); err != nil {
		return nil, err
	}
	return checkout.ToOrderResponse(order), nil
}

// ListByUser órdenes del comprador, más recientes primero.
func (uc *OrderUseCase) ListByUser(userID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, page), nil
}

// ListByVendor órdenes recibidas por el vendedor.
func (uc *OrderUseCase) ListByVendor(vendorID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByVendor(vendorID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, page), nil
}

// ListAll todas las órdenes de la plataforma (panel admin).
func (uc *OrderUseCase) ListAll(page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toOrderList(orders, page), nil
}

// Cancel cancela una orden del comprador. Solo pending es cancelable: la
// transición es compare-and-swap, así que si el worker la pasó a paid en el
// medio la cancelación falla con ErrConflict. Al cancelar se restituye el
// stock descontado en el checkout.
func (uc *OrderUseCase) Cancel(ctx context.Context, orderID, userID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domain.ErrConflict
	}

	ok, err := uc.orderRepo.AdvanceStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConflict
	}

	items, err := order.DecodeItems()
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := uc.productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
			uc.log.Error().Err(err).
				Str("order_id", order.ID).
				Str("product_id", item.ProductID).
				Msg("No se pudo restituir stock al cancelar")
		}
	}

	order.Status = entity.OrderStatusCancelled
	order.NextStatusDue = nil
	order.UpdatedAt = time.Now()
	uc.log.Info().Str("order_id", order.ID).Str("user_id", userID).Msg("Orden cancelada")
	return checkout.ToOrderResponse(order), nil
}

// Rate califica los productos de una orden. Solo el comprador de una orden
// fulfilled puede calificar (ErrNotRatable en cualquier otro caso). La
// calificación es única por (usuario, producto): reenviar sobreescribe.
func (uc *OrderUseCase) Rate(orderID, userID string, in dto.RateOrderRequest) ([]dto.RatingResponse, error) {
	if !entity.ValidScore(in.Score) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID || order.Status != entity.OrderStatusFulfilled {
		return nil, domain.ErrNotRatable
	}
	items, err := order.DecodeItems()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]dto.RatingResponse, 0, len(items))
	for _, item := range items {
		rating := &entity.Rating{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: item.ProductID,
			OrderID:   order.ID,
			Score:     in.Score,
			Comment:   in.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.ratingRepo.Upsert(rating); err != nil {
			return nil, err
		}
		out = append(out, dto.RatingResponse{
			ID:        rating.ID,
			UserID:    rating.UserID,
			ProductID: rating.ProductID,
			OrderID:   rating.OrderID,
			Score:     rating.Score,
			Comment:   rating.Comment,
			CreatedAt: rating.CreatedAt,
			UpdatedAt: rating.UpdatedAt,
		})
	}
	return out, nil
}

// Receipt genera el comprobante PDF de una orden fulfilled. Mismas reglas de
// visibilidad que GetForRequester; órdenes no entregadas devuelven ErrConflict.
func (uc *OrderUseCase) Receipt(orderID, requesterID, role string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.authorize(order, requesterID, role); err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusFulfilled {
		return nil, domain.ErrConflict
	}
	items, err := order.DecodeItems()
	if err != nil {
		return nil, err
	}
	return uc.receipts.OrderReceipt(order, items)
}

func (uc *OrderUseCase) authorize(order *entity.Order, requesterID, role string) error {
	if role == entity.RoleAdmin || order.UserID == requesterID || order.VendorID == requesterID {
		return nil
	}
	return domain.ErrForbidden
}

func toOrderList(orders []*entity.Order, page dto.PageRequest) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, *checkout.ToOrderResponse(order))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
