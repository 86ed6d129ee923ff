package dto

import "time"

// UpdateVendorProfileRequest datos del perfil editables por el vendedor.
type UpdateVendorProfileRequest struct {
	BrandName   *string `json:"brand_name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	TaxID       *string `json:"tax_id"`
}

// VendorProfileResponse salida del perfil de vendedor.
type VendorProfileResponse struct {
	UserID      string    `json:"user_id"`
	BrandName   string    `json:"brand_name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	TaxID       string    `json:"tax_id,omitempty"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VendorListResponse lista paginada de perfiles (panel admin).
type VendorListResponse struct {
	Items []VendorProfileResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// SetVendorApprovalRequest aprobación/revocación de un vendedor (admin).
type SetVendorApprovalRequest struct {
	Approved bool `json:"approved"`
}
