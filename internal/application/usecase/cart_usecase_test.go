package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
)

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
	f.lines = append(f.lines, &entity.CartLine{UserID: userID, ProductID: productID, Quantity: qty, CreatedAt: time.Now()})
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

type fakeVendorRepo struct {
	profiles map[string]*entity.VendorProfile
}

func (f *fakeVendorRepo) Create(p *entity.VendorProfile) error { f.profiles[p.UserID] = p; return nil }
func (f *fakeVendorRepo) GetByUserID(userID string) (*entity.VendorProfile, error) {
	return f.profiles[userID], nil
}
func (f *fakeVendorRepo) Update(p *entity.VendorProfile) error { f.profiles[p.UserID] = p; return nil }
func (f *fakeVendorRepo) SetApproval(userID string, approved bool) error {
	if p := f.profiles[userID]; p != nil {
		p.Approved = approved
	}
	return nil
}
func (f *fakeVendorRepo) List(int, int) ([]*entity.VendorProfile, error) { return nil, nil }

func setupCart(t *testing.T) (*usecase.CartUseCase, *fakeCartRepo, *fakeProductRepo, *fakeVendorRepo) {
	t.Helper()
	cart := &fakeCartRepo{}
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", VendorID: vendorID, Name: "Teclado", Price: decimal.NewFromInt(100), Stock: 10, Active: true},
		"p2": {ID: "p2", VendorID: "vendor-b", Name: "Mouse", Price: decimal.NewFromInt(50), Stock: 5, Active: false},
	}}
	vendors := &fakeVendorRepo{profiles: map[string]*entity.VendorProfile{
		vendorID:   {UserID: vendorID, BrandName: "Tienda A", Approved: true},
		"vendor-b": {UserID: "vendor-b", BrandName: "Tienda B", Approved: false},
	}}
	uc := usecase.NewCartUseCase(cart, products, vendors)
	return uc, cart, products, vendors
}

// Agregar dos veces el mismo producto suma cantidades en una sola línea.
func TestCartAdd_SumaCantidades(t *testing.T) {
	uc, _, _, _ := setupCart(t)

	_, err := uc.Add(buyerID, dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	out, err := uc.Add(buyerID, dto.AddToCartRequest{ProductID: "p1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].Quantity)
	assert.Equal(t, "500", out.Total.String())
}

// Un producto inactivo no se puede agregar.
func TestCartAdd_ProductoInactivo(t *testing.T) {
	uc, _, _, _ := setupCart(t)
	_, err := uc.Add(buyerID, dto.AddToCartRequest{ProductID: "p2", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto de un vendedor sin aprobar no se puede agregar.
func TestCartAdd_VendedorSinAprobar(t *testing.T) {
	uc, _, products, _ := setupCart(t)
	products.products["p2"].Active = true

	_, err := uc.Add(buyerID, dto.AddToCartRequest{ProductID: "p2", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrVendorNotApproved)
}

// Cantidad 0 elimina la línea.
func TestCartSetQuantity_CeroElimina(t *testing.T) {
	uc, _, _, _ := setupCart(t)
	_, err := uc.Add(buyerID, dto.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	out, err := uc.SetQuantity(buyerID, "p1", 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// Una línea cuyo producto fue borrado se purga al listar el carrito.
func TestCartGet_PurgaProductosBorrados(t *testing.T) {
	uc, _, products, _ := setupCart(t)
	_, err := uc.Add(buyerID, dto.AddToCartRequest{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, products.Delete("p1"))

	out, err := uc.Get(buyerID)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Total.IsZero())
}
