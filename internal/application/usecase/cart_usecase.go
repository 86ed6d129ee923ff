package usecase

import (
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CartUseCase gestión del carrito del comprador. Los precios mostrados son
// estimados: el precio definitivo se congela recién en el checkout.
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	vendorRepo  repository.VendorProfileRepository
}

// NewCartUseCase construye el caso de uso de carrito.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository, vendorRepo repository.VendorProfileRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo, vendorRepo: vendorRepo}
}

// Add suma qty a la línea del producto, creándola si no existe. El producto
// debe estar activo y su vendedor aprobado. Agregar no reserva stock: la
// validación de disponibilidad ocurre en el checkout.
func (uc *CartUseCase) Add(userID string, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.Active {
		return nil, domain.ErrNotFound
	}
	profile, err := uc.vendorRepo.GetByUserID(product.VendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.Approved {
		return nil, domain.ErrVendorNotApproved
	}
	if err := uc.cartRepo.Add(userID, in.ProductID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// SetQuantity fija la cantidad exacta de una línea; cantidad 0 la elimina.
func (uc *CartUseCase) SetQuantity(userID, productID string, qty int64) (*dto.CartResponse, error) {
	if qty < 0 {
		return nil, domain.ErrInvalidInput
	}
	line, err := uc.cartRepo.Get(userID, productID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	if qty == 0 {
		if err := uc.cartRepo.Remove(userID, productID); err != nil {
			return nil, err
		}
	} else if err := uc.cartRepo.SetQuantity(userID, productID, qty); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// Remove quita una línea del carrito.
func (uc *CartUseCase) Remove(userID, productID string) (*dto.CartResponse, error) {
	if err := uc.cartRepo.Remove(userID, productID); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(userID string) error {
	return uc.cartRepo.Clear(userID)
}

// Get devuelve el carrito enriquecido con los datos actuales de cada producto.
// Las líneas cuyo producto fue borrado se purgan silenciosamente.
func (uc *CartUseCase) Get(userID string) (*dto.CartResponse, error) {
	lines, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CartLineResponse, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			_ = uc.cartRepo.Remove(userID, line.ProductID)
			continue
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(line.Quantity))
		items = append(items, dto.CartLineResponse{
			ProductID:   product.ID,
			ProductName: product.Name,
			VendorID:    product.VendorID,
			UnitPrice:   product.Price,
			Quantity:    line.Quantity,
			Subtotal:    subtotal,
			AddedAt:     line.CreatedAt,
		})
		total = total.Add(subtotal)
	}
	return &dto.CartResponse{Items: items, Total: total}, nil
}
