package orderrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and payment to the database.
// A duplicate ticket code within the tenant surfaces as a conflict error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("order", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The line item set is
// replaced wholesale, mirroring the aggregate's replace-all edit
// semantics. A payment is inserted at most once per order; a second
// insert surfaces as a conflict error.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND tenant_id = ?", dto.ID, dto.TenantID).
		Select("OrderType", "Status", "Total", "Note", "CustomerID", "CustomerName", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.LineItems) > 0 {
		if err := db.Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	if dto.Payment != nil {
		// The unique index on payments.order_id is the arbiter between two
		// transactions that both loaded the order unpaid: the loser's insert
		// must fail loudly, never be skipped.
		if err := db.Create(dto.Payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errs.NewConflictErrorWithCause("payment", err)
			}
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID within the tenant, with line items and payment.
func (r *GormOrderRepository) Get(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*order.Order, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		Preload("Payment").
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and its dependent rows within the tenant.
func (r *GormOrderRepository) Delete(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) error {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	result := db.Where("id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	if err := db.Where("order_id = ?", id.Bytes()).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	return db.Where("order_id = ?", id.Bytes()).Delete(&PaymentDTO{}).Error
}

// TicketCodeExists reports whether a ticket code of the given series is
// already taken within the tenant.
func (r *GormOrderRepository) TicketCodeExists(
	ctx context.Context,
	tenantID kernel.UUID,
	series order.TicketSeries,
	code string,
) (bool, error) {
	if err := errors.Join(tenantID.Validate(), series.Validate()); err != nil {
		return false, err
	}

	column := "kitchen_ticket"
	if series == order.CustomerSeries {
		column = "customer_ticket"
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("tenant_id = ? AND "+column+" = ?", tenantID.Bytes(), code).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
