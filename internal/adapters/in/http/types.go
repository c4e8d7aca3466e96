package http

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest describes one requested line item. Prices and product
// names are resolved server-side from the catalog.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Type         string             `json:"type"`
	CustomerID   *string            `json:"customerId,omitempty"`
	CustomerName string             `json:"customerName,omitempty"`
	Note         string             `json:"note,omitempty"`
	Items        []OrderItemRequest `json:"items"`
}

// UpdateOrderRequest is the body of PUT /orders/:orderId. The item set
// replaces the existing one entirely.
type UpdateOrderRequest struct {
	Type         string             `json:"type"`
	CustomerID   *string            `json:"customerId,omitempty"`
	CustomerName string             `json:"customerName,omitempty"`
	Note         string             `json:"note,omitempty"`
	Items        []OrderItemRequest `json:"items"`
}

// RecordPaymentRequest is the body of POST /orders/:orderId/payment.
// The settled amount is always the order total; only the method is chosen
// by the caller.
type RecordPaymentRequest struct {
	Method string `json:"method"`
}

// ChangeStatusRequest is the body of PUT /orders/:orderId/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// CountResponse is the body returned by the count endpoints.
type CountResponse struct {
	Count int64 `json:"count"`
}
