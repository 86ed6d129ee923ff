package entity

import "time"

// VendorProfile extensión 1:1 de un User con rol vendor.
// Approved lo controla el admin; un vendedor sin aprobar no puede vender.
type VendorProfile struct {
	UserID      string
	BrandName   string
	Description string
	Website     string
	TaxID       string
	Approved    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
