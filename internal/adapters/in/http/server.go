// Package http exposes the order lifecycle over a REST API built on echo.
// Handlers translate between JSON payloads and application commands or
// queries, and map domain error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	recordPaymentHandler commands.RecordPaymentCommandHandler
	changeStatusHandler  commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	kitchenQueueHandler queries.KitchenQueueQueryHandler
	countOrdersHandler  queries.CountOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	kitchenQueueHandler queries.KitchenQueueQueryHandler,
	countOrdersHandler queries.CountOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		recordPaymentHandler: recordPaymentHandler,
		changeStatusHandler:  changeStatusHandler,
		deleteOrderHandler:   deleteOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		kitchenQueueHandler:  kitchenQueueHandler,
		countOrdersHandler:   countOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/tenants/:tenantId")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/count", s.CountOrders)
	api.GET("/orders/kitchen-queue", s.KitchenQueue)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/payment", s.RecordPayment)
	api.PUT("/orders/:orderId/status", s.ChangeStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/v1/tenants/:tenantId/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderType, err := order.OrderTypeFromString(req.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		return badRequest(ctx, "invalid item product id")
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), tenantID, orderType, customerID, req.CustomerName, req.Note, items,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetOrder handles GET /api/v1/tenants/:tenantId/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(tenantID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListOrders handles GET /api/v1/tenants/:tenantId/orders.
// Accepts optional status (repeatable, comma-separated), customerId,
// page, and pageSize query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	page, pageSize, err := pagination(ctx)
	if err != nil {
		return badRequest(ctx, "invalid pagination parameters")
	}

	var query queries.ListOrdersQuery
	switch {
	case ctx.QueryParam("customerId") != "":
		customerID, parseErr := kernel.UUIDFromString(ctx.QueryParam("customerId"))
		if parseErr != nil {
			return badRequest(ctx, "invalid customer id")
		}
		query, err = queries.NewListOrdersByCustomerQuery(tenantID, customerID, page, pageSize)
	case ctx.QueryParam("status") != "":
		statuses, parseErr := parseStatuses(ctx.QueryParam("status"))
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		query, err = queries.NewListOrdersByStatusesQuery(tenantID, statuses, page, pageSize)
	default:
		query, err = queries.NewListOrdersQuery(tenantID, page, pageSize)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// KitchenQueue handles GET /api/v1/tenants/:tenantId/orders/kitchen-queue.
func (s *Server) KitchenQueue(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	query, err := queries.NewKitchenQueueQuery(tenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	queue, err := s.kitchenQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queue)
}

// CountOrders handles GET /api/v1/tenants/:tenantId/orders/count.
// Accepts an optional status query parameter.
func (s *Server) CountOrders(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	var query queries.CountOrdersQuery
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := order.StatusFromString(raw)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		query, err = queries.NewCountOrdersByStatusQuery(tenantID, status)
	} else {
		query, err = queries.NewCountOrdersQuery(tenantID)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	count, err := s.countOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// UpdateOrder handles PUT /api/v1/tenants/:tenantId/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderType, err := order.OrderTypeFromString(req.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		return badRequest(ctx, "invalid item product id")
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, tenantID, orderType, customerID, req.CustomerName, req.Note, items,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// RecordPayment handles POST /api/v1/tenants/:tenantId/orders/:orderId/payment.
func (s *Server) RecordPayment(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	method, err := order.PaymentMethodFromString(req.Method)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, tenantID, method)
	if err != nil {
		return writeError(ctx, err)
	}

	paid, err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(paid))
}

// ChangeStatus handles PUT /api/v1/tenants/:tenantId/orders/:orderId/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.applyStatusChange(ctx, orderID, tenantID, target)
}

// CancelOrder handles POST /api/v1/tenants/:tenantId/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	return s.applyStatusChange(ctx, orderID, tenantID, order.Cancelled)
}

func (s *Server) applyStatusChange(
	ctx echo.Context,
	orderID, tenantID kernel.UUID,
	target order.Status,
) error {
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, tenantID, target)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/tenants/:tenantId/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	tenantID, err := pathUUID(ctx, "tenantId")
	if err != nil {
		return badRequest(ctx, "invalid tenant id")
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, tenantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func toItemInputs(items []OrderItemRequest) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, commands.ItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	return inputs, nil
}

func parseStatuses(raw string) ([]order.Status, error) {
	parts := strings.Split(raw, ",")
	statuses := make([]order.Status, 0, len(parts))
	for _, part := range parts {
		status, err := order.StatusFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func pagination(ctx echo.Context) (int, int, error) {
	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		pageSize = parsed
	}

	return page, pageSize, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain error kinds onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
