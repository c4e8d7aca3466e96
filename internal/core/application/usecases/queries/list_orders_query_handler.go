package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the matching orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Payment").
		Where("tenant_id = ?", query.TenantID().Bytes())

	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]int, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, int(status))
		}
		db = db.Where("status IN ?", values)
	}

	if customerID := query.CustomerID(); customerID != nil {
		db = db.Where("customer_id = ?", customerID.Bytes())
	}

	var rows []orderRow
	err := db.Order("created_at DESC").
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	names, err := loadCustomerNames(ctx, h.db, rows)
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toOrderResponse(row, names))
	}

	return orders, nil
}
