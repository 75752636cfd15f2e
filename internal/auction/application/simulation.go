package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/davicafu/apollo-events/internal/auction/domain"
)

// Router es lo que los adapters inbound necesitan del EventRouter.
type Router interface {
	Route(ctx context.Context, kind string, raw []byte) error
}

var _ Router = (*EventRouter)(nil)

// SimulateLotWon enruta n eventos UserLotWon sintéticos (lotes 0..n-1).
// Sirve para comprobar de punta a punta la publicación en users.LotWon.
func SimulateLotWon(ctx context.Context, router Router, n int) error {
	for i := 0; i < n; i++ {
		payload, err := json.Marshal(map[string]interface{}{
			"email":    fmt.Sprintf("email_%d@test.com", i),
			"number":   i,
			"title":    fmt.Sprintf("Lot %d", i),
			"currency": "USD",
			"amount":   i,
		})
		if err != nil {
			return err
		}
		if err := router.Route(ctx, string(domain.UserLotWon), payload); err != nil {
			return fmt.Errorf("simulated lot %d: %w", i, err)
		}
	}
	return nil
}
