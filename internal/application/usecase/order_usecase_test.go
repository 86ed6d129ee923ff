package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders = append(f.orders, o); return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrderRepo) ListByUser(userID string, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) ListByVendor(vendorID string, _, _ int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.VendorID == vendorID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeOrderRepo) List(int, int) ([]*entity.Order, error) { return f.orders, nil }
func (f *fakeOrderRepo) ListDue(context.Context, time.Time, int) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) AdvanceStatus(_ context.Context, id, from, to string, nextDue *time.Time) (bool, error) {
	for _, o := range f.orders {
		if o.ID == id && o.Status == from {
			o.Status = to
			o.NextStatusDue = nextDue
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) Delete(id string) error         { delete(f.products, id); return nil }
func (f *fakeProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Categories() ([]string, error) { return nil, nil }
func (f *fakeProductRepo) DecrementStock(productID string, qty int64) (bool, error) {
	p := f.products[productID]
	if p == nil || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}
func (f *fakeProductRepo) IncrementStock(productID string, qty int64) error {
	if p := f.products[productID]; p != nil {
		p.Stock += qty
	}
	return nil
}

type fakeRatingRepo struct {
	ratings map[string]*entity.Rating // user|product -> rating
}

func ratingKey(userID, productID string) string { return userID + "|" + productID }

func (f *fakeRatingRepo) Upsert(r *entity.Rating) error {
	f.ratings[ratingKey(r.UserID, r.ProductID)] = r
	return nil
}
func (f *fakeRatingRepo) GetByUserAndProduct(userID, productID string) (*entity.Rating, error) {
	return f.ratings[ratingKey(userID, productID)], nil
}
func (f *fakeRatingRepo) ListByProduct(string, int, int) ([]*entity.Rating, error) { return nil, nil }
func (f *fakeRatingRepo) SummaryByProduct(string) (*repository.RatingSummary, error) {
	return nil, nil
}

type fakeReceiptGen struct{}

func (fakeReceiptGen) OrderReceipt(*entity.Order, []entity.OrderItem) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	buyerID  = "user-1"
	vendorID = "vendor-a"
)

func mustItems(t *testing.T, items []entity.OrderItem) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	return raw
}

func newOrder(t *testing.T, id, status string) *entity.Order {
	return &entity.Order{
		ID:         id,
		CheckoutID: "chk-1",
		UserID:     buyerID,
		VendorID:   vendorID,
		Items: mustItems(t, []entity.OrderItem{
			{ProductID: "p1", Name: "Teclado", UnitPrice: decimal.NewFromInt(100), Quantity: 2},
			{ProductID: "p2", Name: "Mouse", UnitPrice: decimal.NewFromInt(50), Quantity: 1},
		}),
		Total:  decimal.NewFromInt(250),
		Status: status,
	}
}

func setupOrders(t *testing.T) (*usecase.OrderUseCase, *fakeOrderRepo, *fakeProductRepo, *fakeRatingRepo) {
	orders := &fakeOrderRepo{}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", VendorID: vendorID, Name: "Teclado", Price: decimal.NewFromInt(100), Stock: 8, Active: true},
		"p2": {ID: "p2", VendorID: vendorID, Name: "Mouse", Price: decimal.NewFromInt(50), Stock: 4, Active: true},
	}}
	ratings := &fakeRatingRepo{ratings: map[string]*entity.Rating{}}
	uc := usecase.NewOrderUseCase(orders, products, ratings, fakeReceiptGen{}, zerolog.Nop())
	return uc, orders, products, ratings
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelación
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_PendingRestituyeStock(t *testing.T) {
	uc, orders, products, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusPending)))

	out, err := uc.Cancel(context.Background(), "o1", buyerID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
	assert.Nil(t, out.NextStatusDue)

	assert.Equal(t, int64(10), products.products["p1"].Stock, "2 unidades restituidas")
	assert.Equal(t, int64(5), products.products["p2"].Stock, "1 unidad restituida")
}

func TestCancel_PaidNoEsCancelable(t *testing.T) {
	uc, orders, products, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusPaid)))

	_, err := uc.Cancel(context.Background(), "o1", buyerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, int64(8), products.products["p1"].Stock, "el stock no se toca")
}

func TestCancel_OrdenAjena(t *testing.T) {
	uc, orders, _, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusPending)))

	_, err := uc.Cancel(context.Background(), "o1", "otro-user")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Calificación
// ──────────────────────────────────────────────────────────────────────────────

func TestRate_OrdenFulfilled(t *testing.T) {
	uc, orders, _, ratings := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusFulfilled)))

	out, err := uc.Rate("o1", buyerID, dto.RateOrderRequest{Score: 5, Comment: "excelente"})
	require.NoError(t, err)
	assert.Len(t, out, 2, "una calificación por producto de la orden")
	assert.Len(t, ratings.ratings, 2)
	assert.Equal(t, 5, ratings.ratings[ratingKey(buyerID, "p1")].Score)
}

func TestRate_ReenvioSobreescribe(t *testing.T) {
	uc, orders, _, ratings := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusFulfilled)))

	_, err := uc.Rate("o1", buyerID, dto.RateOrderRequest{Score: 2})
	require.NoError(t, err)
	_, err = uc.Rate("o1", buyerID, dto.RateOrderRequest{Score: 4})
	require.NoError(t, err)

	assert.Len(t, ratings.ratings, 2, "reenviar no duplica")
	assert.Equal(t, 4, ratings.ratings[ratingKey(buyerID, "p1")].Score, "el último score gana")
}

func TestRate_OrdenNoEntregada(t *testing.T) {
	uc, orders, _, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusPaid)))

	_, err := uc.Rate("o1", buyerID, dto.RateOrderRequest{Score: 5})
	assert.ErrorIs(t, err, domain.ErrNotRatable)
}

func TestRate_OrdenAjena(t *testing.T) {
	uc, orders, _, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusFulfilled)))

	_, err := uc.Rate("o1", "otro-user", dto.RateOrderRequest{Score: 5})
	assert.ErrorIs(t, err, domain.ErrNotRatable)
}

func TestRate_ScoreFueraDeRango(t *testing.T) {
	uc, orders, _, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusFulfilled)))

	_, err := uc.Rate("o1", buyerID, dto.RateOrderRequest{Score: 6})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante y visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_SoloFulfilled(t *testing.T) {
	uc, orders, _, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusFulfilled)))
	require.NoError(t, orders.Create(newOrder(t, "o2", entity.OrderStatusPending)))

	pdf, err := uc.Receipt("o1", buyerID, entity.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = uc.Receipt("o2", buyerID, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestGetForRequester_Visibilidad(t *testing.T) {
	uc, orders, _, _ := setupOrders(t)
	require.NoError(t, orders.Create(newOrder(t, "o1", entity.OrderStatusPending)))

	// Comprador, vendedor de la orden y admin la ven
	for _, tc := range []struct{ id, role string }{
		{buyerID, entity.RoleUser},
		{vendorID, entity.RoleVendor},
		{"cualquier-admin", entity.RoleAdmin},
	} {
		out, err := uc.GetForRequester("o1", tc.id, tc.role)
		require.NoError(t, err)
		require.NotNil(t, out)
	}

	// Un tercero no
	_, err := uc.GetForRequester("o1", "otro-user", entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
