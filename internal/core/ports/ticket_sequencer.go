package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// TicketSequencer issues gapless per-tenant ticket codes. Each call
// advances the counter for the given series and returns the formatted
// code. Issuance must share the transaction that persists the order so
// an aborted creation does not burn a number.
type TicketSequencer interface {
	// Next reserves and formats the next ticket code for the series.
	// Returns SequenceExhaustedError once the series reaches its cap.
	Next(ctx context.Context, tenantID kernel.UUID, series order.TicketSeries) (string, error)
}
