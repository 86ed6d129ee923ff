package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/application/usecase"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
)

func setupProducts(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, *fakeVendorRepo) {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	vendors := &fakeVendorRepo{profiles: map[string]*entity.VendorProfile{
		vendorID:   {UserID: vendorID, BrandName: "Tienda A", Approved: true},
		"vendor-b": {UserID: "vendor-b", BrandName: "Tienda B", Approved: false},
	}}
	ratings := &fakeRatingRepo{ratings: map[string]*entity.Rating{}}
	uc := usecase.NewProductUseCase(products, vendors, ratings)
	return uc, products, vendors
}

func TestCreateForVendor_VendedorAprobado(t *testing.T) {
	uc, products, _ := setupProducts(t)

	out, err := uc.CreateForVendor(vendorID, dto.CreateProductRequest{
		Name:     "Teclado",
		Price:    decimal.NewFromInt(100),
		Stock:    10,
		Category: "perifericos",
	})
	require.NoError(t, err)
	assert.Equal(t, vendorID, out.VendorID)
	assert.True(t, out.Active, "los productos nacen activos por defecto")
	assert.Len(t, products.products, 1)
}

func TestCreateForVendor_VendedorSinAprobar(t *testing.T) {
	uc, _, _ := setupProducts(t)

	_, err := uc.CreateForVendor("vendor-b", dto.CreateProductRequest{
		Name:     "Mouse",
		Price:    decimal.NewFromInt(50),
		Category: "perifericos",
	})
	assert.ErrorIs(t, err, domain.ErrVendorNotApproved)
}

func TestCreateForVendor_PrecioInvalido(t *testing.T) {
	uc, _, _ := setupProducts(t)

	_, err := uc.CreateForVendor(vendorID, dto.CreateProductRequest{
		Name:     "Gratis",
		Price:    decimal.Zero,
		Category: "otros",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateForVendor_ProductoAjeno(t *testing.T) {
	uc, products, _ := setupProducts(t)
	products.products["p1"] = &entity.Product{
		ID: "p1", VendorID: "vendor-b", Name: "Mouse",
		Price: decimal.NewFromInt(50), Category: "perifericos", Active: true,
	}

	name := "Mouse Pro"
	_, err := uc.UpdateForVendor(vendorID, "p1", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteForVendor_ProductoPropio(t *testing.T) {
	uc, products, _ := setupProducts(t)
	products.products["p1"] = &entity.Product{
		ID: "p1", VendorID: vendorID, Name: "Teclado",
		Price: decimal.NewFromInt(100), Category: "perifericos", Active: true,
	}

	require.NoError(t, uc.DeleteForVendor(vendorID, "p1"))
	assert.Empty(t, products.products)

	err := uc.DeleteForVendor(vendorID, "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
