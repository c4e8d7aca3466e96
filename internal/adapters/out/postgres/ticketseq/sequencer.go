package ticketseq

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTicketSequencer implements TicketSequencer using a locked counter row.
// Must run inside a transaction: the row lock taken by Next is what makes
// two concurrent creations for the same tenant receive distinct numbers.
type GormTicketSequencer struct {
	db *gorm.DB
}

// NewGormTicketSequencer creates a sequencer bound to the given connection,
// normally the transaction held by a unit of work.
func NewGormTicketSequencer(db *gorm.DB) *GormTicketSequencer {
	return &GormTicketSequencer{db: db}
}

// Next reserves the next number for the tenant's series and returns the
// formatted code. The counter row is created on first use, then selected
// FOR UPDATE so concurrent callers queue rather than duplicate.
func (s *GormTicketSequencer) Next(
	ctx context.Context,
	tenantID kernel.UUID,
	series order.TicketSeries,
) (string, error) {
	if err := errors.Join(tenantID.Validate(), series.Validate()); err != nil {
		return "", err
	}

	db := s.db.WithContext(ctx)

	seed := TicketCounterDTO{
		TenantID:   tenantID.Bytes(),
		Series:     series.String(),
		LastNumber: 0,
	}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
	if err != nil {
		return "", err
	}

	var counter TicketCounterDTO
	err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&counter, "tenant_id = ? AND series = ?", tenantID.Bytes(), series.String()).Error
	if err != nil {
		return "", err
	}

	next := counter.LastNumber + 1
	if next > order.MaxTicketNumber {
		return "", errs.NewSequenceExhaustedError(series.String(), tenantID.String(), order.MaxTicketNumber)
	}

	err = db.Model(&TicketCounterDTO{}).
		Where("tenant_id = ? AND series = ?", tenantID.Bytes(), series.String()).
		Update("last_number", next).Error
	if err != nil {
		return "", err
	}

	return series.FormatCode(next)
}
