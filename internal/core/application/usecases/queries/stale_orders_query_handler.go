package queries

import (
	"context"

	"pos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// StaleOrdersQueryHandler finds orders stuck in Pending.
type StaleOrdersQueryHandler struct {
	db *gorm.DB
}

// NewStaleOrdersQueryHandler creates a handler for stale order queries.
// Requires a GORM database connection for query execution.
func NewStaleOrdersQueryHandler(db *gorm.DB) StaleOrdersQueryHandler {
	return StaleOrdersQueryHandler{db: db}
}

// Handle executes the query, oldest orders first.
func (h StaleOrdersQueryHandler) Handle(ctx context.Context, query StaleOrdersQuery) ([]StaleOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", int(order.Pending), query.Cutoff()).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	stale := make([]StaleOrderResponse, 0, len(rows))
	for _, row := range rows {
		stale = append(stale, StaleOrderResponse{
			ID:            row.ID.String(),
			TenantID:      row.TenantID.String(),
			KitchenTicket: row.KitchenTicket,
			CreatedAt:     row.CreatedAt,
		})
	}

	return stale, nil
}
