// Package ticketseq implements ticket code issuance on top of a counter
// table. Each (tenant, series) pair owns one row; issuing a code locks
// that row for the rest of the enclosing transaction, which serializes
// concurrent creations per tenant and keeps the sequence gapless under
// load.
package ticketseq

import (
	"github.com/google/uuid"
)

// TicketCounterDTO holds the last issued number per tenant and series.
type TicketCounterDTO struct {
	TenantID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Series     string    `gorm:"primaryKey;size:1"`
	LastNumber int
}

// TableName specifies the database table name for ticket counters.
func (TicketCounterDTO) TableName() string {
	return "ticket_counters"
}
