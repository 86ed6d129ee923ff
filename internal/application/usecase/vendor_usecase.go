package usecase

import (
	"time"

	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// VendorUseCase perfil del vendedor y aprobación por parte del admin.
type VendorUseCase struct {
	vendorRepo repository.VendorProfileRepository
	log        zerolog.Logger
}

// NewVendorUseCase construye el caso de uso de vendedores.
func NewVendorUseCase(vendorRepo repository.VendorProfileRepository, log zerolog.Logger) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo, log: log}
}

// GetProfile perfil del vendedor autenticado.
func (uc *VendorUseCase) GetProfile(userID string) (*dto.VendorProfileResponse, error) {
	profile, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return toVendorProfileResponse(profile), nil
}

// UpdateProfile actualiza los campos editables del perfil. La aprobación no se
// toca por esta vía: solo el admin la cambia con SetApproval.
func (uc *VendorUseCase) UpdateProfile(userID string, in dto.UpdateVendorProfileRequest) (*dto.VendorProfileResponse, error) {
	profile, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	if in.BrandName != nil {
		if *in.BrandName == "" {
			return nil, domain.ErrInvalidInput
		}
		profile.BrandName = *in.BrandName
	}
	if in.Description != nil {
		profile.Description = *in.Description
	}
	if in.Website != nil {
		profile.Website = *in.Website
	}
	if in.TaxID != nil {
		profile.TaxID = *in.TaxID
	}
	profile.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(profile); err != nil {
		return nil, err
	}
	return toVendorProfileResponse(profile), nil
}

// List perfiles de vendedor paginados (panel admin).
func (uc *VendorUseCase) List(page dto.PageRequest) (*dto.VendorListResponse, error) {
	page.DefaultPage()
	profiles, err := uc.vendorRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		items = append(items, *toVendorProfileResponse(p))
	}
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// SetApproval aprueba o revoca a un vendedor (admin). Revocar no toca sus
// productos: simplemente dejan de poder comprarse hasta una nueva aprobación.
func (uc *VendorUseCase) SetApproval(userID string, approved bool) (*dto.VendorProfileResponse, error) {
	profile, err := uc.vendorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	if err := uc.vendorRepo.SetApproval(userID, approved); err != nil {
		return nil, err
	}
	profile.Approved = approved
	profile.UpdatedAt = time.Now()
	uc.log.Info().Str("vendor_id", userID).Bool("approved", approved).Msg("Aprobación de vendedor actualizada")
	return toVendorProfileResponse(profile), nil
}

func toVendorProfileResponse(p *entity.VendorProfile) *dto.VendorProfileResponse {
	return &dto.VendorProfileResponse{
		UserID:      p.UserID,
		BrandName:   p.BrandName,
		Description: p.Description,
		Website:     p.Website,
		TaxID:       p.TaxID,
		Approved:    p.Approved,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
