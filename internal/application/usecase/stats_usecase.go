package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/softshop-api/internal/application/dto"
	"github.com/jhoicas/softshop-api/internal/domain"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

const statsDateLayout = "2006-01-02"

// StatsUseCase estadísticas agregadas para el panel admin.
type StatsUseCase struct {
	statsRepo   repository.StatsRepository
	settingRepo repository.SettingRepository
}

// NewStatsUseCase construye el caso de uso de estadísticas.
func NewStatsUseCase(statsRepo repository.StatsRepository, settingRepo repository.SettingRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo, settingRepo: settingRepo}
}

// Platform arma el reporte del período: conteos, ingresos de órdenes pagadas y
// entregadas, comisión estimada (ingreso x commission_rate / 100) y productos
// más vendidos. Sin fechas el período son los últimos 30 días.
func (uc *StatsUseCase) Platform(ctx context.Context, in dto.StatsRequest) (*dto.PlatformStatsResponse, error) {
	start, end, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	topN := in.TopN
	if topN <= 0 || topN > 50 {
		topN = 5
	}

	counts, err := uc.statsRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.statsRepo.Revenue(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.statsRepo.OrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.statsRepo.TopProducts(ctx, start, end, topN)
	if err != nil {
		return nil, err
	}

	rate := decimal.Zero
	if settings, err := uc.settingRepo.All(); err == nil {
		rate = settings.Decimal(entity.SettingCommissionRate, decimal.Zero)
	}
	commission := revenue.Mul(rate).Div(decimal.NewFromInt(100))

	topDTOs := make([]dto.TopProductDTO, 0, len(top))
	for _, row := range top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID: row.ProductID,
			Name:      row.Name,
			UnitsSold: row.UnitsSold,
			Revenue:   row.Revenue,
		})
	}

	return &dto.PlatformStatsResponse{
		Users:          counts.Users,
		Vendors:        counts.Vendors,
		Products:       counts.Products,
		Orders:         counts.Orders,
		OrdersByStatus: byStatus,
		Revenue:        revenue,
		Commission:     commission,
		TopProducts:    topDTOs,
	}, nil
}

func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if startDate != "" {
		parsed, err := time.Parse(statsDateLayout, startDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		start = parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(statsDateLayout, endDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		// fin de día inclusivo
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return start, end, nil
}
