package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountOrdersQueryHandler counts orders in the database.
type CountOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersQueryHandler creates a handler for order counting queries.
// Requires a GORM database connection for query execution.
func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle executes the count.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	db := h.db.WithContext(ctx).Model(&orderRow{}).
		Where("tenant_id = ?", query.TenantID().Bytes())

	if status := query.Status(); status != nil {
		db = db.Where("status = ?", int(*status))
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
