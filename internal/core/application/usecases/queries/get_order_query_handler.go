package queries

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves single orders from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the full order view.
// Returns ObjectNotFoundError when the order does not exist or belongs
// to a different tenant.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Payment").
		First(&row, "id = ? AND tenant_id = ?", query.OrderID().Bytes(), query.TenantID().Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	names, err := loadCustomerNames(ctx, h.db, []orderRow{row})
	if err != nil {
		return OrderResponse{}, err
	}

	return toOrderResponse(row, names), nil
}
