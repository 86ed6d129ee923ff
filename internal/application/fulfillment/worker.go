package fulfillment

import (
	"context"
	"time"

	"github.com/jhoicas/softshop-api/internal/domain/entity"
	"github.com/jhoicas/softshop-api/internal/domain/repository"
	"github.com/rs/zerolog"
)

// Worker aplica las transiciones de órdenes vencidas: pending -> paid -> fulfilled.
// Cada transición está persistida en next_status_due, así que un reinicio del
// proceso no pierde nada: al volver, las órdenes vencidas se reconcilian en la
// primera pasada. AdvanceStatus es compare-and-swap, por lo que varios workers
// (o una cancelación concurrente del usuario) nunca aplican la misma transición
// dos veces.
type Worker struct {
	orderRepo    repository.OrderRepository
	fulfillDelay time.Duration
	pollInterval time.Duration
	batch        int
	log          zerolog.Logger
}

// NewWorker construye el worker de fulfillment.
func NewWorker(orderRepo repository.OrderRepository, fulfillDelay, pollInterval time.Duration, batch int, log zerolog.Logger) *Worker {
	if batch <= 0 {
		batch = 50
	}
	return &Worker{
		orderRepo:    orderRepo,
		fulfillDelay: fulfillDelay,
		pollInterval: pollInterval,
		batch:        batch,
		log:          log,
	}
}

// Run ejecuta el loop de polling hasta que el contexto se cancele.
func (w *Worker) Run(ctx context.Context) {
	w.log.Info().
		Dur("poll_interval", w.pollInterval).
		Msg("Worker de fulfillment iniciado")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Primera pasada inmediata para reconciliar lo vencido durante un reinicio.
	w.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker de fulfillment detenido")
			return
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick procesa un lote de órdenes vencidas. Exportado para poder invocarlo
// directamente en tests sin arrancar el loop.
func (w *Worker) Tick(ctx context.Context) {
	now := time.Now()
	due, err := w.orderRepo.ListDue(ctx, now, w.batch)
	if err != nil {
		w.log.Error().Err(err).Msg("No se pudieron listar órdenes vencidas")
		return
	}
	for _, order := range due {
		w.advance(ctx, order, now)
	}
}

func (w *Worker) advance(ctx context.Context, order *entity.Order, now time.Time) {
	next := entity.NextStatus(order.Status)
	if next == "" {
		return
	}

	// paid programa la entrega; fulfilled es terminal y no programa nada.
	var nextDue *time.Time
	if next == entity.OrderStatusPaid {
		due := now.Add(w.fulfillDelay)
		nextDue = &due
	}

	ok, err := w.orderRepo.AdvanceStatus(ctx, order.ID, order.Status, next, nextDue)
	if err != nil {
		w.log.Error().Err(err).
			Str("order_id", order.ID).
			Str("from", order.Status).
			Str("to", next).
			Msg("No se pudo avanzar la orden")
		return
	}
	if !ok {
		// Otro worker o una cancelación ganaron la carrera; nada que hacer.
		return
	}
	w.log.Info().
		Str("order_id", order.ID).
		Str("from", order.Status).
		Str("to", next).
		Msg("Orden avanzada")
}
