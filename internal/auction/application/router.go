package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// handler decodifica el payload crudo y lo traduce. No tiene efectos secundarios.
type handler func(raw []byte, ids domain.IDGenerator) ([]domain.Output, error)

func bind[T any](kind domain.Kind, rules fieldRules, translate func(T, domain.IDGenerator) []domain.Output) handler {
	return func(raw []byte, ids domain.IDGenerator) ([]domain.Output, error) {
		evt, err := decode[T](kind, raw, rules)
		if err != nil {
			return nil, err
		}
		return translate(evt, ids), nil
	}
}

var (
	auctionRules = fieldRules{required: []string{"auction_id"}}

	lotRules = fieldRules{
		required: []string{"auction_id", "lot_number"},
		numeric:  []string{"lot_number"},
	}

	// De la puja previa solo se usa el pujador.
	bidRules = fieldRules{
		required: append([]string{"auction_id", "lot_number"}, prefixed("current_bid", bidFields)...),
		nested:   map[string][]string{"previous_bid": {"user_id"}},
		numeric:  []string{"lot_number", "current_bid.amount.value", "previous_bid.amount.value"},
	}

	lotWonRules = fieldRules{numeric: []string{"number", "amount"}}
)

// handlers es de solo lectura tras la inicialización del paquete.
var handlers = map[domain.Kind]handler{
	domain.AuctionStarted:   bind(domain.AuctionStarted, auctionRules, TranslateAuctionStarted),
	domain.AuctionExtended:  bind(domain.AuctionExtended, auctionRules, TranslateAuctionExtended),
	domain.AuctionKilled:    bind(domain.AuctionKilled, auctionRules, TranslateAuctionKilled),
	domain.AuctionEnded:     bind(domain.AuctionEnded, auctionRules, TranslateAuctionEnded),
	domain.AuctionLotsEnded: bind(domain.AuctionLotsEnded, auctionRules, TranslateAuctionLotsEnded),
	domain.LotExtended:      bind(domain.LotExtended, lotRules, TranslateLotExtended),
	domain.LotWithdrawn:     bind(domain.LotWithdrawn, lotRules, TranslateLotWithdrawn),
	domain.BidPlaced:        bind(domain.BidPlaced, bidRules, TranslateBidPlaced),
	domain.UserLotWon:       bind(domain.UserLotWon, lotWonRules, TranslateUserLotWon),
}

// EventRouter traduce eventos de dominio y los publica en orden.
// Es seguro para uso concurrente si el Publisher y el IDGenerator lo son.
type EventRouter struct {
	publisher domain.Publisher
	ids       domain.IDGenerator
	log       *zap.Logger
}

func NewEventRouter(publisher domain.Publisher, ids domain.IDGenerator, log *zap.Logger) *EventRouter {
	return &EventRouter{
		publisher: publisher,
		ids:       ids,
		log:       log,
	}
}

// Translate decodifica y traduce sin publicar nada.
func (r *EventRouter) Translate(kind string, raw []byte) ([]domain.Output, error) {
	h, ok := handlers[domain.Kind(kind)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventKind, kind)
	}
	return h(raw, r.ids)
}

// Route publica cada salida en el orden producido y se detiene en el primer fallo.
// Un tipo desconocido devuelve ErrUnknownEventKind sin publicar; el llamador decide si lo descarta.
func (r *EventRouter) Route(ctx context.Context, kind string, raw []byte) error {
	outputs, err := r.Translate(kind, raw)
	if err != nil {
		return err
	}

	for _, out := range outputs {
		if err := r.publisher.Publish(ctx, out.Channel, out.Message); err != nil {
			return &domain.PublishError{
				Channel: out.Channel,
				Type:    out.Message.MessageType(),
				Err:     err,
			}
		}
	}

	r.log.Debug("Event routed",
		zap.String("kind", kind),
		zap.Int("messages", len(outputs)),
	)
	return nil
}

func prefixed(parent string, children []string) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, parent+"."+c)
	}
	return out
}
