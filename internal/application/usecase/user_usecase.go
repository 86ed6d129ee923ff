package usecase

import (
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// UserUseCase administración de cuentas (panel admin).
type UserUseCase struct {
	userRepo repository.UserRepository
	log      zerolog.Logger
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, log: log}
}

// GetByID devuelve un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List usuarios paginados.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// SetStatus activa o desactiva una cuenta. Una cuenta inactiva no puede
// loguearse; sus tokens vigentes expiran solos.
func (uc *UserUseCase) SetStatus(id, status string) (*dto.UserResponse, error) {
	if status != entity.StatusActive && status != entity.StatusInactive {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.userRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	user.Status = status
	uc.log.Info().Str("user_id", id).Str("status", status).Msg("Estado de cuenta actualizado")
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
