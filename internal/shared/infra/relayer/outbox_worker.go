package relayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	auctionDomain "github.com/davicafu/apollo-events/internal/auction/domain"
	sharedDomain "github.com/davicafu/apollo-events/internal/shared/domain"
)

// Router enruta un evento crudo por su kind. Lo implementa el EventRouter.
type Router interface {
	Route(ctx context.Context, kind string, raw []byte) error
}

// Worker procesa eventos pendientes de la tabla outbox y los pasa por el Router.
type Worker struct {
	repo      sharedDomain.OutboxRepository
	router    Router
	interval  time.Duration
	batchSize int
	log       *zap.Logger
}

func NewOutboxWorker(
	repo sharedDomain.OutboxRepository,
	router Router,
	interval time.Duration,
	batchSize int,
	log *zap.Logger,
) *Worker {
	return &Worker{
		repo:      repo,
		router:    router,
		interval:  interval,
		batchSize: batchSize,
		log:       log,
	}
}

// Start inicia el bucle de polling del worker.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("🚀 Outbox worker iniciado", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("🛑 Outbox worker detenido.")
			return
		case <-ticker.C:
			w.log.Debug("🔄 Ejecutando polling de outbox")
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch enruta los eventos pendientes en orden de creación.
// Un fallo de publicación detiene el lote para no adelantar eventos posteriores.
func (w *Worker) ProcessBatch(ctx context.Context) {
	events, err := w.repo.FetchPendingOutbox(ctx, w.batchSize)
	if err != nil {
		w.log.Warn("⚠️ Error al obtener eventos pendientes", zap.Error(err))
		return
	}
	if len(events) > 0 {
		w.log.Info(fmt.Sprintf("📬 %d eventos encontrados para procesar", len(events)))
	}

	for _, evt := range events {
		if !w.routeAndMark(ctx, evt) {
			return
		}
	}
}

// routeAndMark devuelve false si el lote debe detenerse.
func (w *Worker) routeAndMark(ctx context.Context, evt sharedDomain.OutboxEvent) bool {
	err := w.router.Route(ctx, evt.EventType, evt.Payload)
	switch {
	case err == nil:
	case errors.Is(err, auctionDomain.ErrUnknownEventKind), errors.Is(err, auctionDomain.ErrMalformedEvent):
		// Reintentar no lo arreglaría: se descarta.
		w.log.Warn("⚠️ Evento de outbox descartado",
			zap.String("event_id", evt.ID.String()),
			zap.String("event_type", evt.EventType),
			zap.Error(err),
		)
	default:
		w.log.Warn("⚠️ No se pudo publicar evento",
			zap.String("event_id", evt.ID.String()),
			zap.Error(err),
		)
		return false // No lo marcamos como procesado para que se reintente
	}

	if err := w.repo.MarkOutboxProcessed(ctx, evt.ID); err != nil {
		w.log.Warn("⚠️ No se pudo marcar evento como procesado",
			zap.String("event_id", evt.ID.String()),
			zap.Error(err),
		)
		return true
	}
	w.log.Debug("✅ Evento enrutado y marcado", zap.String("event_id", evt.ID.String()))
	return true
}
