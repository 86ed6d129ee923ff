package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CountsResult conteos globales de la plataforma.
type CountsResult struct {
	Users    int64
	Vendors  int64
	Products int64
	Orders   int64
}

// TopProductRow producto con sus unidades vendidas e ingreso en el período.
type TopProductRow struct {
	ProductID string
	Name      string
	UnitsSold int64
	Revenue   decimal.Decimal
}

// StatsRepository consultas agregadas de solo lectura para el panel admin.
type StatsRepository interface {
	Counts(ctx context.Context) (*CountsResult, error)
	// Revenue suma los totales de órdenes paid y fulfilled del período.
	Revenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	OrdersByStatus(ctx context.Context) (map[string]int64, error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductRow, error)
}
