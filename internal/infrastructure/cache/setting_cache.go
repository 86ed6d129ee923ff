package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var _ repository.SettingRepository = (*CachedSettingRepository)(nil)

const settingsKey = "settings:all"

// CachedSettingRepository decora SettingRepository con cache-aside en Redis.
// El mapa completo de settings se lee en cada request (maintenance_mode,
// commission_rate), así que se cachea entero y se invalida en cada escritura.
// Un fallo de Redis degrada a la DB, nunca bloquea la request.
type CachedSettingRepository struct {
	real  repository.SettingRepository
	redis *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedSettingRepository construye el decorador.
func NewCachedSettingRepository(real repository.SettingRepository, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedSettingRepository {
	return &CachedSettingRepository{real: real, redis: rdb, ttl: ttl, log: log}
}

// All devuelve el mapa de settings, sirviéndolo desde Redis si está cacheado.
func (c *CachedSettingRepository) All() (entity.Settings, error) {
	ctx := context.Background()
	data, err := c.redis.Get(ctx, settingsKey).Bytes()
	switch {
	case err == nil:
		var settings entity.Settings
		if err := json.Unmarshal(data, &settings); err == nil {
			return settings, nil
		}
		c.log.Warn().Err(err).Msg("settings cacheados ilegibles, leyendo de DB")
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		c.log.Warn().Err(err).Msg("error de redis, leyendo settings de DB")
	}

	settings, err := c.real.All()
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(settings); err == nil {
		if err := c.redis.Set(ctx, settingsKey, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Msg("no se pudo cachear settings")
		}
	}
	return settings, nil
}

// Get lee una clave puntual a través del mapa cacheado.
func (c *CachedSettingRepository) Get(key string) (*entity.Setting, error) {
	settings, err := c.All()
	if err != nil {
		return nil, err
	}
	value, ok := settings[key]
	if !ok {
		return nil, nil
	}
	return &entity.Setting{Key: key, Value: value}, nil
}

// Upsert escribe en la DB e invalida el caché para que el próximo read vea el cambio.
func (c *CachedSettingRepository) Upsert(key, value string) error {
	if err := c.real.Upsert(key, value); err != nil {
		return err
	}
	if err := c.redis.Del(context.Background(), settingsKey).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("no se pudo invalidar caché de settings")
	}
	return nil
}
