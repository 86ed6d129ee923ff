package fulfillment_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/softshop-api/internal/application/fulfillment"
	"github.com/jhoicas/softshop-api/internal/domain/entity"
)

// fakeOrderRepo implementa el puerto de órdenes con semántica CAS real.
type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error { f.orders = append(f.orders, o); return nil }
func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}
func (f *fakeOrderRepo) ListByUser(string, int, int) ([]*entity.Order, error)   { return nil, nil }
func (f *fakeOrderRepo) ListByVendor(string, int, int) ([]*entity.Order, error) { return nil, nil }
func (f *fakeOrderRepo) List(int, int) ([]*entity.Order, error)                 { return f.orders, nil }

func (f *fakeOrderRepo) ListDue(_ context.Context, now time.Time, limit int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.IsTerminal() || o.NextStatusDue == nil || o.NextStatusDue.After(now) {
			continue
		}
		// Copia: el worker ve un snapshot, como haría una fila leída de la DB.
		cp := *o
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) AdvanceStatus(_ context.Context, id, from, to string, nextDue *time.Time) (bool, error) {
	for _, o := range f.orders {
		if o.ID == id && o.Status == from {
			o.Status = to
			o.NextStatusDue = nextDue
			return true, nil
		}
	}
	return false, nil
}

func newWorker(repo *fakeOrderRepo) *fulfillment.Worker {
	return fulfillment.NewWorker(repo, 60*time.Second, time.Second, 50, zerolog.Nop())
}

func dueOrder(id, status string, due time.Time) *entity.Order {
	return &entity.Order{ID: id, Status: status, NextStatusDue: &due, Items: []byte("[]")}
}

// Una orden pending vencida pasa a paid y queda programada su entrega.
func TestWorker_PendingPasaAPaid(t *testing.T) {
	repo := &fakeOrderRepo{}
	past := time.Now().Add(-time.Second)
	require.NoError(t, repo.Create(dueOrder("o1", entity.OrderStatusPending, past)))

	newWorker(repo).Tick(context.Background())

	o, _ := repo.GetByID("o1")
	assert.Equal(t, entity.OrderStatusPaid, o.Status)
	require.NotNil(t, o.NextStatusDue, "paid debe programar la entrega")
	assert.True(t, o.NextStatusDue.After(time.Now()), "la entrega queda en el futuro")
}

// Una orden paid vencida pasa a fulfilled, estado terminal sin próxima transición.
func TestWorker_PaidPasaAFulfilled(t *testing.T) {
	repo := &fakeOrderRepo{}
	past := time.Now().Add(-time.Second)
	require.NoError(t, repo.Create(dueOrder("o1", entity.OrderStatusPaid, past)))

	newWorker(repo).Tick(context.Background())

	o, _ := repo.GetByID("o1")
	assert.Equal(t, entity.OrderStatusFulfilled, o.Status)
	assert.Nil(t, o.NextStatusDue, "fulfilled no programa nada")
}

// Una orden aún no vencida no se toca.
func TestWorker_NoVencidaNoSeToca(t *testing.T) {
	repo := &fakeOrderRepo{}
	future := time.Now().Add(time.Minute)
	require.NoError(t, repo.Create(dueOrder("o1", entity.OrderStatusPending, future)))

	newWorker(repo).Tick(context.Background())

	o, _ := repo.GetByID("o1")
	assert.Equal(t, entity.OrderStatusPending, o.Status)
}

// Si la orden fue cancelada entre el listado y el avance, el CAS no aplica nada.
func TestWorker_CancelacionGanaLaCarrera(t *testing.T) {
	repo := &fakeOrderRepo{}
	past := time.Now().Add(-time.Second)
	require.NoError(t, repo.Create(dueOrder("o1", entity.OrderStatusPending, past)))

	worker := newWorker(repo)

	// Simula la carrera: cancelación luego del ListDue, antes del avance.
	o, _ := repo.GetByID("o1")
	o.Status = entity.OrderStatusCancelled
	o.NextStatusDue = nil

	worker.Tick(context.Background())

	o, _ = repo.GetByID("o1")
	assert.Equal(t, entity.OrderStatusCancelled, o.Status, "cancelled no debe ser pisado")
}

// Dos pasadas seguidas no duplican transiciones: la segunda no encuentra nada vencido.
func TestWorker_TickIdempotente(t *testing.T) {
	repo := &fakeOrderRepo{}
	past := time.Now().Add(-time.Second)
	require.NoError(t, repo.Create(dueOrder("o1", entity.OrderStatusPending, past)))

	worker := newWorker(repo)
	worker.Tick(context.Background())
	worker.Tick(context.Background())

	o, _ := repo.GetByID("o1")
	assert.Equal(t, entity.OrderStatusPaid, o.Status, "una sola transición por vencimiento")
}
