// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Ticket uniqueness is enforced per tenant at the database level, so two
// concurrent creations can never commit the same code.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:ux_orders_tenant_kitchen_ticket,priority:1;uniqueIndex:ux_orders_tenant_customer_ticket,priority:1"`
	OrderType      int             `gorm:"type:smallint"`
	Status         int             `gorm:"type:smallint;index"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2)"`
	Note           string
	KitchenTicket  string        `gorm:"uniqueIndex:ux_orders_tenant_kitchen_ticket,priority:2"`
	CustomerTicket string        `gorm:"uniqueIndex:ux_orders_tenant_customer_ticket,priority:2"`
	CustomerID     *uuid.UUID    `gorm:"type:uuid;index"`
	CustomerName   string
	LineItems      []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment        *PaymentDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time     `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one ordered product row with its price snapshot.
type LineItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid"`
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2)"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2)"`
	Note        string
}

// TableName specifies the database table name for line item rows.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// PaymentDTO represents the settlement record of a paid order.
// The unique index on OrderID is the second line of defense against
// double payment after the aggregate-level conflict check.
type PaymentDTO struct {
	ID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Method  int             `gorm:"type:smallint"`
	Amount  decimal.Decimal `gorm:"type:numeric(10,2)"`
	PaidAt  time.Time
}

// TableName specifies the database table name for payment rows.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, LineItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			Note:        item.Note(),
		})
	}

	var payment *PaymentDTO
	if p := aggregate.Payment(); p != nil {
		payment = &PaymentDTO{
			ID:      p.ID().Bytes(),
			OrderID: aggregate.ID().Bytes(),
			Method:  int(p.Method()),
			Amount:  p.Amount(),
			PaidAt:  p.PaidAt(),
		}
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		TenantID:       aggregate.TenantID().Bytes(),
		OrderType:      int(aggregate.Type()),
		Status:         int(aggregate.Status()),
		Total:          aggregate.Total(),
		Note:           aggregate.Note(),
		KitchenTicket:  aggregate.KitchenTicket(),
		CustomerTicket: aggregate.CustomerTicket(),
		CustomerID:     customerID,
		CustomerName:   aggregate.CustomerName(),
		LineItems:      items,
		Payment:        payment,
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items and payment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreLineItem(
			itemID,
			productID,
			itemDTO.ProductName,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.Subtotal,
			itemDTO.Note,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	var payment *order.Payment
	if dto.Payment != nil {
		paymentID, paymentErr := kernel.UUIDFromBytes(dto.Payment.ID[:])
		if paymentErr != nil {
			return nil, paymentErr
		}

		payment, err = order.RestorePayment(
			paymentID,
			order.PaymentMethod(dto.Payment.Method),
			dto.Payment.Amount,
			dto.Payment.PaidAt,
		)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		tenantID,
		order.OrderType(dto.OrderType),
		order.Status(dto.Status),
		dto.Note,
		dto.KitchenTicket,
		dto.CustomerTicket,
		customerID,
		dto.CustomerName,
		items,
		payment,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
