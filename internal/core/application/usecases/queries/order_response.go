// Package queries contains read-only operations for the CQRS read side.
// Query handlers talk to the database directly, bypassing the domain
// aggregate, and return response structs shaped for the API surface.
package queries

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Read models scanned straight from the order tables.
type orderRow struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	OrderType      int
	Status         int
	Total          decimal.Decimal
	Note           string
	KitchenTicket  string
	CustomerTicket string
	CustomerID     *uuid.UUID
	CustomerName   string
	LineItems      []lineItemRow `gorm:"foreignKey:OrderID"`
	Payment        *paymentRow   `gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (orderRow) TableName() string {
	return "orders"
}

type lineItemRow struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Note        string
}

func (lineItemRow) TableName() string {
	return "line_items"
}

type paymentRow struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	Method  int
	Amount  decimal.Decimal
	PaidAt  time.Time
}

func (paymentRow) TableName() string {
	return "payments"
}

type customerRow struct {
	ID   uuid.UUID
	Name string
}

func (customerRow) TableName() string {
	return "customers"
}

// LineItemResponse represents one ordered product in API responses.
type LineItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Note        string          `json:"note,omitempty"`
}

// PaymentResponse represents the settlement record of a paid order.
type PaymentResponse struct {
	ID     string          `json:"id"`
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paidAt"`
}

// OrderResponse is the canonical order view returned by every query.
// CustomerDisplayName resolves to the linked customer's registered name
// when one exists, falling back to the free-text name taken at the till.
type OrderResponse struct {
	ID                  string             `json:"id"`
	TenantID            string             `json:"tenantId"`
	Type                string             `json:"type"`
	Status              string             `json:"status"`
	Total               decimal.Decimal    `json:"total"`
	Note                string             `json:"note,omitempty"`
	KitchenTicket       string             `json:"kitchenTicket"`
	CustomerTicket      string             `json:"customerTicket"`
	CustomerID          *string            `json:"customerId,omitempty"`
	CustomerName        string             `json:"customerName,omitempty"`
	CustomerDisplayName string             `json:"customerDisplayName,omitempty"`
	LineItems           []LineItemResponse `json:"lineItems"`
	Payment             *PaymentResponse   `json:"payment,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

func toOrderResponse(row orderRow, customerNames map[uuid.UUID]string) OrderResponse {
	items := make([]LineItemResponse, 0, len(row.LineItems))
	for _, item := range row.LineItems {
		items = append(items, LineItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
			Note:        item.Note,
		})
	}

	var payment *PaymentResponse
	if row.Payment != nil {
		payment = &PaymentResponse{
			ID:     row.Payment.ID.String(),
			Method: order.PaymentMethod(row.Payment.Method).String(),
			Amount: row.Payment.Amount,
			PaidAt: row.Payment.PaidAt,
		}
	}

	var customerID *string
	displayName := row.CustomerName
	if row.CustomerID != nil {
		id := row.CustomerID.String()
		customerID = &id
		if name, ok := customerNames[*row.CustomerID]; ok && name != "" {
			displayName = name
		}
	}

	return OrderResponse{
		ID:                  row.ID.String(),
		TenantID:            row.TenantID.String(),
		Type:                order.OrderType(row.OrderType).String(),
		Status:              order.Status(row.Status).String(),
		Total:               row.Total,
		Note:                row.Note,
		KitchenTicket:       row.KitchenTicket,
		CustomerTicket:      row.CustomerTicket,
		CustomerID:          customerID,
		CustomerName:        row.CustomerName,
		CustomerDisplayName: displayName,
		LineItems:           items,
		Payment:             payment,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

// loadCustomerNames batch-resolves the registered names for the linked
// customers referenced by the given rows.
func loadCustomerNames(ctx context.Context, db *gorm.DB, rows []orderRow) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0)
	seen := make(map[uuid.UUID]bool)
	for _, row := range rows {
		if row.CustomerID != nil && !seen[*row.CustomerID] {
			seen[*row.CustomerID] = true
			ids = append(ids, *row.CustomerID)
		}
	}

	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var customers []customerRow
	if err := db.WithContext(ctx).Find(&customers, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	for _, customer := range customers {
		names[customer.ID] = customer.Name
	}

	return names, nil
}
