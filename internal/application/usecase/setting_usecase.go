package usecase

import (
	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettingUseCase configuración de plataforma: mapa plano clave -> valor.
// Los valores se guardan como string; Bool/Decimal de entity.Settings parsean.
type SettingUseCase struct {
	settingRepo repository.SettingRepository
	log         zerolog.Logger
}

// NewSettingUseCase construye el caso de uso de configuración.
func NewSettingUseCase(settingRepo repository.SettingRepository, log zerolog.Logger) *SettingUseCase {
	return &SettingUseCase{settingRepo: settingRepo, log: log}
}

// All devuelve el mapa completo de configuración.
func (uc *SettingUseCase) All() (*dto.SettingsResponse, error) {
	settings, err := uc.settingRepo.All()
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Settings: settings}, nil
}

// Update upsert masivo: cada clave del request se crea o sobreescribe; las
// claves ausentes no se tocan.
func (uc *SettingUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if len(in.Settings) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for key, value := range in.Settings {
		if key == "" {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.settingRepo.Upsert(key, value); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Int("keys", len(in.Settings)).Msg("Configuración de plataforma actualizada")
	return uc.All()
}

// MaintenanceMode indica si la plataforma está en mantenimiento.
// Ante error de lectura se asume false para no dejar el sitio caído.
func (uc *SettingUseCase) MaintenanceMode() bool {
	settings, err := uc.settingRepo.All()
	if err != nil {
		uc.log.Warn().Err(err).Msg("No se pudo leer maintenance_mode")
		return false
	}
	return settings.Bool(entity.SettingMaintenanceMode)
}

// CommissionRate porcentaje de comisión de la plataforma (0 si no está configurado).
func (uc *SettingUseCase) CommissionRate() decimal.Decimal {
	settings, err := uc.settingRepo.All()
	if err != nil {
		return decimal.Zero
	}
	return settings.Decimal(entity.SettingCommissionRate, decimal.Zero)
}
