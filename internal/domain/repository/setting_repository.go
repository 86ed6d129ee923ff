package repository

import "github.com/jhoicas/softshop-api/internal/domain/entity"

// SettingRepository puerto de persistencia para la configuración de plataforma.
type SettingRepository interface {
	Get(key string) (*entity.Setting, error)
	All() (entity.Settings, error)
	Upsert(key, value string) error
}
