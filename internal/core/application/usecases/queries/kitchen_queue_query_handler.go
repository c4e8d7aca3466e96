package queries

import (
	"context"

	"pos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// KitchenQueueQueryHandler retrieves the active kitchen workload.
type KitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewKitchenQueueQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection for query execution.
func NewKitchenQueueQueryHandler(db *gorm.DB) KitchenQueueQueryHandler {
	return KitchenQueueQueryHandler{db: db}
}

// Handle executes the query. Returns Pending and InPreparation orders
// sorted by creation time ascending, so the oldest order is worked first.
func (h KitchenQueueQueryHandler) Handle(ctx context.Context, query KitchenQueueQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Preload("LineItems").
		Where("tenant_id = ? AND status IN ?",
			query.TenantID().Bytes(),
			[]int{int(order.Pending), int(order.InPreparation)},
		).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	names, err := loadCustomerNames(ctx, h.db, rows)
	if err != nil {
		return nil, err
	}

	queue := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		queue = append(queue, toOrderResponse(row, names))
	}

	return queue, nil
}
