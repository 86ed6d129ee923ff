package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase catálogo público y gestión de productos del vendedor.
// Stock se descuenta solo vía checkout; aquí únicamente se fija el valor publicado.
type ProductUseCase struct {
	repo       repository.ProductRepository
	vendorRepo repository.VendorProfileRepository
	ratingRepo repository.RatingRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, vendorRepo repository.VendorProfileRepository, ratingRepo repository.RatingRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, vendorRepo: vendorRepo, ratingRepo: ratingRepo}
}

// List catálogo público: solo productos activos, filtrados por categoría y búsqueda.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	active := true
	filter := repository.ProductFilter{
		Category: in.Category,
		Query:    in.Query,
		Active:   &active,
	}
	list, err := uc.repo.List(filter, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// GetByID detalle público de un producto, con resumen de calificaciones.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	if summary, err := uc.ratingRepo.SummaryByProduct(id); err == nil && summary != nil {
		out.RatingAverage = summary.Average
		out.RatingCount = summary.Count
	}
	return out, nil
}

// Categories categorías distintas de productos activos.
func (uc *ProductUseCase) Categories() ([]string, error) {
	return uc.repo.Categories()
}

// CreateForVendor publica un producto. El vendedor debe estar aprobado;
// name, price > 0 y category son obligatorios.
func (uc *ProductUseCase) CreateForVendor(vendorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Category == "" || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.vendorRepo.GetByUserID(vendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	if !profile.Approved {
		return nil, domain.ErrVendorNotApproved
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		VendorID:    vendorID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateForVendor actualiza un producto del vendedor (ownership obligatorio).
func (uc *ProductUseCase) UpdateForVendor(vendorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if product.VendorID != vendorID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Category = *in.Category
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	// El stock publicado se ajusta aparte con los métodos atómicos para no
	// pisar descuentos concurrentes del checkout.
	if in.Stock != nil {
		delta := *in.Stock - product.Stock
		switch {
		case delta > 0:
			if err := uc.repo.IncrementStock(id, delta); err != nil {
				return nil, err
			}
		case delta < 0:
			ok, err := uc.repo.DecrementStock(id, -delta)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, domain.ErrConflict
			}
		}
		product.Stock = *in.Stock
	}
	return toProductResponse(product), nil
}

// DeleteForVendor elimina un producto del vendedor (ownership obligatorio).
func (uc *ProductUseCase) DeleteForVendor(vendorID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.VendorID != vendorID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ListByVendor productos del vendedor (incluye inactivos).
func (uc *ProductUseCase) ListByVendor(vendorID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	filter := repository.ProductFilter{VendorID: vendorID}
	list, err := uc.repo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// AdminDelete elimina cualquier producto (acción admin, sin ownership).
func (uc *ProductUseCase) AdminDelete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
