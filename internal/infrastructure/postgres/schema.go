package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente de la plataforma. El proveedor gestionado es dueño del
// esquema en producción; esto cubre entornos locales y CI.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'user',
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS vendor_profiles (
	user_id     UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
	brand_name  TEXT NOT NULL,
	description TEXT,
	website     TEXT,
	tax_id      TEXT,
	approved    BOOLEAN NOT NULL DEFAULT false,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS products (
	id          UUID PRIMARY KEY,
	vendor_id   UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       NUMERIC(12,2) NOT NULL,
	stock       BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0),
	category    TEXT NOT NULL DEFAULT '',
	active      BOOLEAN NOT NULL DEFAULT true,
	search_text TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_vendor   ON products(vendor_id);

CREATE TABLE IF NOT EXISTS cart_lines (
	user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	quantity   BIGINT NOT NULL CHECK (quantity > 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, product_id)
);

CREATE TABLE IF NOT EXISTS orders (
	id              UUID PRIMARY KEY,
	checkout_id     UUID NOT NULL,
	user_id         UUID NOT NULL REFERENCES users(id),
	vendor_id       UUID NOT NULL REFERENCES users(id),
	items           JSONB NOT NULL,
	total           NUMERIC(12,2) NOT NULL,
	status          TEXT NOT NULL DEFAULT 'pending',
	next_status_due TIMESTAMPTZ,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_orders_user   ON orders(user_id);
CREATE INDEX IF NOT EXISTS idx_orders_vendor ON orders(vendor_id);
CREATE INDEX IF NOT EXISTS idx_orders_due    ON orders(next_status_due) WHERE next_status_due IS NOT NULL;

CREATE TABLE IF NOT EXISTS ratings (
	id         UUID PRIMARY KEY,
	user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	product_id UUID NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	order_id   UUID NOT NULL,
	score      INT NOT NULL CHECK (score BETWEEN 1 AND 5),
	comment    TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, product_id)
);

CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Migrate aplica el DDL. Todas las sentencias son IF NOT EXISTS, por lo que es
// seguro ejecutarlo en cada arranque de entorno local.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
