package dto

import "github.com/shopspring/decimal"

// PlatformStatsResponse panel de estadísticas del admin.
type PlatformStatsResponse struct {
	Users          int64              `json:"users"`
	Vendors        int64              `json:"vendors"`
	Products       int64              `json:"products"`
	Orders         int64              `json:"orders"`
	OrdersByStatus map[string]int64   `json:"orders_by_status"`
	Revenue        decimal.Decimal    `json:"revenue"`
	Commission     decimal.Decimal    `json:"commission"`
	TopProducts    []TopProductDTO    `json:"top_products"`
}

// TopProductDTO producto destacado del período.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// StatsRequest período del reporte (YYYY-MM-DD; vacío = últimos 30 días).
type StatsRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	TopN      int    `query:"top_n"`
}

// UpdateSettingsRequest upsert masivo del mapa plano clave -> valor.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required"`
}

// SettingsResponse mapa plano clave -> valor.
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}
