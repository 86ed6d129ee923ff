package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
)

var _ repository.VendorProfileRepository = (*VendorProfileRepo)(nil)

// VendorProfileRepo implementación de VendorProfileRepository sobre PostgreSQL.
type VendorProfileRepo struct {
	q Querier
}

// NewVendorProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorProfileRepository(q Querier) *VendorProfileRepo {
	return &VendorProfileRepo{q: q}
}

const vendorProfileColumns = `user_id, brand_name, description, website, tax_id, approved, created_at, updated_at`

// Create persiste el perfil de vendedor (1:1 con el usuario).
func (r *VendorProfileRepo) Create(profile *entity.VendorProfile) error {
	query := `
		INSERT INTO vendor_profiles (user_id, brand_name, description, website, tax_id, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.BrandName, nullIfEmpty(profile.Description),
		nullIfEmpty(profile.Website), nullIfEmpty(profile.TaxID), profile.Approved,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor profile: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil por el ID del usuario vendedor.
func (r *VendorProfileRepo) GetByUserID(userID string) (*entity.VendorProfile, error) {
	query := `SELECT ` + vendorProfileColumns + ` FROM vendor_profiles WHERE user_id = $1`
	var p entity.VendorProfile
	var description, website, taxID *string
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.BrandName, &description, &website, &taxID, &p.Approved,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor profile: %w", err)
	}
	p.Description = deref(description)
	p.Website = deref(website)
	p.TaxID = deref(taxID)
	return &p, nil
}

// Update actualiza los datos del perfil (no toca Approved; eso es SetApproval).
func (r *VendorProfileRepo) Update(profile *entity.VendorProfile) error {
	query := `
		UPDATE vendor_profiles SET brand_name = $2, description = $3, website = $4, tax_id = $5, updated_at = $6
		WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.BrandName, nullIfEmpty(profile.Description),
		nullIfEmpty(profile.Website), nullIfEmpty(profile.TaxID), profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor profile: %w", err)
	}
	return nil
}

// SetApproval cambia el flag de aprobación (acción admin).
func (r *VendorProfileRepo) SetApproval(userID string, approved bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendor_profiles SET approved = $2, updated_at = now() WHERE user_id = $1`,
		userID, approved,
	)
	if err != nil {
		return fmt.Errorf("set vendor approval: %w", err)
	}
	return nil
}

// List lista perfiles de vendedor con paginación, más recientes primero.
func (r *VendorProfileRepo) List(limit, offset int) ([]*entity.VendorProfile, error) {
	query := `SELECT ` + vendorProfileColumns + ` FROM vendor_profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendor profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.VendorProfile
	for rows.Next() {
		var p entity.VendorProfile
		var description, website, taxID *string
		if err := rows.Scan(&p.UserID, &p.BrandName, &description, &website, &taxID,
			&p.Approved, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor profile: %w", err)
		}
		p.Description = deref(description)
		p.Website = deref(website)
		p.TaxID = deref(taxID)
		list = append(list, &p)
	}
	return list, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
