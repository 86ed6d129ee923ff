package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softshop-api/internal/application/checkout"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCartRepo struct {
	lines []*entity.CartLine
}

func (f *fakeCartRepo) Add(userID, productID string, qty int64) error {
	for _, l := range f.lines {
		if l.UserID == userID && l.ProductID == productID {
			l.Quantity += qty
			return nil
		}
	}
	f.lines = append(f.lines, &entity.CartLine{UserID: userID, ProductID: productID, Quantity: qty})
	return nil
}

func (f *fakeCartRepo) SetQuantity(userID, productID string, qty int64) error {
	for _, l := range f.lines {
		if l.UserID == userID && l.ProductID == productID {
			l.Quantity = qty
		}
	}
	return nil
}

func (f *fakeCartRepo) Get(userID, productID string) (*entity.CartLine, error) {
	for _, l := range f.lines {
		if l.UserID == userID && l.ProductID == productID {
			return l, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) ListByUser(userID string) ([]*entity.CartLine, error) {
	var out []*entity.CartLine
	for _, l := range f.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Remove(userID, productID string) error {
	out := f.lines[:0]
	for _, l := range f.lines {
		if !(l.UserID == userID && l.ProductID == productID) {
			out = append(out, l)
		}
	}
	f.lines = out
	return nil
}

func (f *fakeCartRepo) Clear(userID string) error {
	out := f.lines[:0]
	for _, l := range f.lines {
		if l.UserID != userID {
			out = append(out, l)
		}
	}
	f.lines = out
	return nil
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
func (f *fakeOrderRepo) ListByUser(string, int, int) ([]*entity.Order, error)   { return nil, nil }
func (f *fakeOrderRepo) ListByVendor(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) List(int, int) ([]*entity.Order, error)                 { return f.orders, nil }
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

// fakeTxRunner simula la semántica transaccional: si el callback falla,
// restaura el estado previo de carrito, stock y órdenes.
type fakeTxRunner struct {
	cart     *fakeCartRepo
	products *fakeProductRepo
	orders   *fakeOrderRepo
}

func (f *fakeTxRunner) RunCheckout(_ context.Context, fn func(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	cartSnap := make([]*entity.CartLine, len(f.cart.lines))
	for i, l := range f.cart.lines {
		cp := *l
		cartSnap[i] = &cp
	}
	stockSnap := make(map[string]int64, len(f.products.products))
	for id, p := range f.products.products {
		stockSnap[id] = p.Stock
	}
	ordersSnap := len(f.orders.orders)

	if err := fn(f.cart, f.products, f.orders); err != nil {
		f.cart.lines = cartSnap
		for id, stock := range stockSnap {
			f.products.products[id].Stock = stock
		}
		f.orders.orders = f.orders.orders[:ordersSnap]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const buyerID = "user-1"

func setup() (*checkout.UseCase, *fakeCartRepo, *fakeProductRepo, *fakeOrderRepo) {
	cart := &fakeCartRepo{}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", VendorID: "vendor-a", Name: "Teclado", Price: decimal.NewFromInt(100), Stock: 10, Active: true},
		"p2": {ID: "p2", VendorID: "vendor-a", Name: "Mouse", Price: decimal.NewFromInt(50), Stock: 5, Active: true},
		"p3": {ID: "p3", VendorID: "vendor-b", Name: "Monitor", Price: decimal.NewFromInt(300), Stock: 2, Active: true},
	}}
	orders := &fakeOrderRepo{}
	runner := &fakeTxRunner{cart: cart, products: products, orders: orders}
	uc := checkout.NewUseCase(runner, 30*time.Second, 60*time.Second, zerolog.Nop())
	return uc, cart, products, orders
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Un carrito con líneas de dos vendedores produce dos órdenes pending que
// comparten checkout_id, con totales por vendedor y el carrito vacío al final.
func TestCheckout_UnaOrdenPorVendedor(t *testing.T) {
	uc, cart, products, orders := setup()
	require.NoError(t, cart.Add(buyerID, "p1", 2)) // vendor-a: 2 x 100
	require.NoError(t, cart.Add(buyerID, "p2", 1)) // vendor-a: 1 x 50
	require.NoError(t, cart.Add(buyerID, "p3", 1)) // vendor-b: 1 x 300

	out, err := uc.Checkout(context.Background(), buyerID)
	require.NoError(t, err)
	require.Len(t, out.Orders, 2, "dos vendedores deben producir dos órdenes")

	assert.Equal(t, "250", out.Orders[0].Total.String(), "total de vendor-a")
	assert.Equal(t, "vendor-a", out.Orders[0].VendorID)
	assert.Equal(t, "300", out.Orders[1].Total.String(), "total de vendor-b")
	assert.Equal(t, "vendor-b", out.Orders[1].VendorID)
	assert.Equal(t, "550", out.Total.String(), "gran total")

	for _, o := range out.Orders {
		assert.Equal(t, out.CheckoutID, o.CheckoutID, "las órdenes comparten checkout_id")
		assert.Equal(t, entity.OrderStatusPending, o.Status)
		require.NotNil(t, o.NextStatusDue, "pending debe tener transición programada")
	}

	// Stock descontado y carrito vacío
	assert.Equal(t, int64(8), products.products["p1"].Stock)
	assert.Equal(t, int64(4), products.products["p2"].Stock)
	assert.Equal(t, int64(1), products.products["p3"].Stock)
	remaining, _ := cart.ListByUser(buyerID)
	assert.Empty(t, remaining, "el carrito debe quedar vacío")
	assert.Len(t, orders.orders, 2)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc, _, _, _ := setup()
	_, err := uc.Checkout(context.Background(), buyerID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// Si CUALQUIER línea no tiene stock, no se descuenta nada y el carrito queda intacto.
func TestCheckout_StockInsuficienteHaceRollback(t *testing.T) {
	uc, cart, products, orders := setup()
	require.NoError(t, cart.Add(buyerID, "p1", 2))
	require.NoError(t, cart.Add(buyerID, "p3", 5)) // solo hay 2

	_, err := uc.Checkout(context.Background(), buyerID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, int64(10), products.products["p1"].Stock, "el stock de p1 debe restaurarse")
	assert.Equal(t, int64(2), products.products["p3"].Stock)
	remaining, _ := cart.ListByUser(buyerID)
	assert.Len(t, remaining, 2, "el carrito debe quedar intacto")
	assert.Empty(t, orders.orders, "no debe persistirse ninguna orden")
}

// Un producto desactivado después de agregarse al carrito aborta el checkout.
func TestCheckout_ProductoInactivo(t *testing.T) {
	uc, cart, products, _ := setup()
	require.NoError(t, cart.Add(buyerID, "p1", 1))
	products.products["p1"].Active = false

	_, err := uc.Checkout(context.Background(), buyerID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// El snapshot congela precio y nombre: cambios posteriores no afectan la orden.
func TestCheckout_SnapshotDePrecios(t *testing.T) {
	uc, cart, products, orders := setup()
	require.NoError(t, cart.Add(buyerID, "p1", 1))

	out, err := uc.Checkout(context.Background(), buyerID)
	require.NoError(t, err)

	products.products["p1"].Price = decimal.NewFromInt(999)
	products.products["p1"].Name = "Teclado Pro"

	persisted, err := orders.GetByID(out.Orders[0].ID)
	require.NoError(t, err)
	items, err := persisted.DecodeItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Teclado", items[0].Name)
	assert.Equal(t, "100", items[0].UnitPrice.String())
	assert.Equal(t, "100", persisted.Total.String())
}
