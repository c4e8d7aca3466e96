package http

import (
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"
)

// toOrderResponse maps a freshly mutated aggregate to the same view the
// read side returns, so command and query endpoints stay symmetrical.
// The display name falls back to the free-text customer name; linked
// customer resolution happens only on the read side.
func toOrderResponse(aggregate *order.Order) queries.OrderResponse {
	items := make([]queries.LineItemResponse, 0, len(aggregate.LineItems()))
	for _, item := range aggregate.LineItems() {
		items = append(items, queries.LineItemResponse{
			ID:          item.ID().String(),
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
			Note:        item.Note(),
		})
	}

	var payment *queries.PaymentResponse
	if p := aggregate.Payment(); p != nil {
		payment = &queries.PaymentResponse{
			ID:     p.ID().String(),
			Method: p.Method().String(),
			Amount: p.Amount(),
			PaidAt: p.PaidAt(),
		}
	}

	var customerID *string
	if id := aggregate.CustomerID(); id != nil {
		value := id.String()
		customerID = &value
	}

	return queries.OrderResponse{
		ID:                  aggregate.ID().String(),
		TenantID:            aggregate.TenantID().String(),
		Type:                aggregate.Type().String(),
		Status:              aggregate.Status().String(),
		Total:               aggregate.Total(),
		Note:                aggregate.Note(),
		KitchenTicket:       aggregate.KitchenTicket(),
		CustomerTicket:      aggregate.CustomerTicket(),
		CustomerID:          customerID,
		CustomerName:        aggregate.CustomerName(),
		CustomerDisplayName: aggregate.CustomerName(),
		LineItems:           items,
		Payment:             payment,
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}
