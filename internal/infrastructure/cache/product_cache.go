package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var _ repository.ProductRepository = (*CachedProductRepository)(nil)

const notFoundSentinel = "notfound"

// CachedProductRepository decora ProductRepository con cache-aside en Redis para
// las lecturas por ID (la página de detalle del catálogo). Los not-found se
// cachean con TTL corto para no martillar la DB con IDs inexistentes.
// Listados y escrituras pasan directo; las escrituras invalidan la clave.
type CachedProductRepository struct {
	real  repository.ProductRepository
	redis *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedProductRepository construye el decorador.
func NewCachedProductRepository(real repository.ProductRepository, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedProductRepository {
	return &CachedProductRepository{real: real, redis: rdb, ttl: ttl, log: log}
}

func productKey(id string) string { return fmt.Sprintf("product:%s", id) }

// GetByID sirve el producto desde Redis si está cacheado; un fallo de Redis
// degrada a la DB sin bloquear la request.
func (c *CachedProductRepository) GetByID(id string) (*entity.Product, error) {
	ctx := context.Background()
	key := productKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFoundSentinel {
			return nil, nil
		}
		var product entity.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return &product, nil
		}
		c.log.Warn().Err(err).Str("key", key).Msg("producto cacheado ilegible, leyendo de DB")
	case errors.Is(err, redis.Nil):
		// cache miss
	default:
		c.log.Warn().Err(err).Msg("error de redis, leyendo producto de DB")
	}

	product, err := c.real.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		if err := c.redis.Set(ctx, key, notFoundSentinel, time.Minute).Err(); err != nil {
			c.log.Warn().Err(err).Msg("no se pudo cachear notfound")
		}
		return nil, nil
	}
	if payload, err := json.Marshal(product); err == nil {
		if err := c.redis.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear producto")
		}
	}
	return product, nil
}

func (c *CachedProductRepository) invalidate(id string) {
	if err := c.redis.Del(context.Background(), productKey(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("product_id", id).Msg("no se pudo invalidar caché de producto")
	}
}

// Create pasa directo (no hay clave previa que invalidar para un ID nuevo).
func (c *CachedProductRepository) Create(product *entity.Product) error {
	return c.real.Create(product)
}

// Update escribe e invalida.
func (c *CachedProductRepository) Update(product *entity.Product) error {
	if err := c.real.Update(product); err != nil {
		return err
	}
	c.invalidate(product.ID)
	return nil
}

// Delete borra e invalida.
func (c *CachedProductRepository) Delete(id string) error {
	if err := c.real.Delete(id); err != nil {
		return err
	}
	c.invalidate(id)
	return nil
}

// List pasa directo: los listados cambian con cada filtro y no se cachean.
func (c *CachedProductRepository) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	return c.real.List(filter, limit, offset)
}

// Categories pasa directo.
func (c *CachedProductRepository) Categories() ([]string, error) {
	return c.real.Categories()
}

// DecrementStock escribe e invalida (el stock cacheado quedaría viejo).
func (c *CachedProductRepository) DecrementStock(productID string, qty int64) (bool, error) {
	ok, err := c.real.DecrementStock(productID, qty)
	if err == nil {
		c.invalidate(productID)
	}
	return ok, err
}

// IncrementStock escribe e invalida.
func (c *CachedProductRepository) IncrementStock(productID string, qty int64) error {
	if err := c.real.IncrementStock(productID, qty); err != nil {
		return err
	}
	c.invalidate(productID)
	return nil
}
