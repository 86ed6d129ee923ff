package repository

import "github.com/jhoicas/softshop-api/internal/domain/entity"

// VendorProfileRepository puerto de persistencia para perfiles de vendedor.
type VendorProfileRepository interface {
	Create(profile *entity.VendorProfile) error
	GetByUserID(userID string) (*entity.VendorProfile, error)
	Update(profile *entity.VendorProfile) error
	SetApproval(userID string, approved bool) error
	List(limit, offset int) ([]*entity.VendorProfile, error)
}
