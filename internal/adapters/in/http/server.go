// Package http exposes the storefront API over echo.
// Public endpoints serve checkout and order tracking; operator
// endpoints behind the token middleware drive the kitchen workflow.
package http

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	getMenuHandler    queries.GetMenuQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getMenuHandler:           getMenuHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
// Operator endpoints sit behind the token middleware.
func RegisterRoutes(e *echo.Echo, s *Server, operatorToken string) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/menu", s.GetMenu)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:id", s.GetOrder)

	operator := e.Group("/api/v1", RequireOperatorToken(operatorToken))
	operator.GET("/orders", s.GetOrders)
	operator.PATCH("/orders/:id/status", s.ChangeOrderStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - returns the full dish catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	result, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load menu",
		})
	}
	return ctx.JSON(http.StatusOK, result)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// The server assigns the order ID and recomputes the total from the
// submitted lines; the created order is returned with status 201.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := kernel.NewOrderID(time.Now())
	cmd, err := buildPlaceOrderCommand(orderID, request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		status := errorStatus(handleErr)
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to place order: " + handleErr.Error(),
		})
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /api/v1/orders/:id - returns one order.
// Malformed IDs cannot match any order and report 404 like unknown ones.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// GetOrders handles GET /api/v1/orders - returns every order, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	rows, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list orders",
		})
	}

	response := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orderResp, convErr := toOrderResponse(row)
		if convErr != nil {
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "Failed to render orders",
			})
		}
		response = append(response, orderResp)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
// Moves the order one step along the workflow or cancels it.
// Illegal moves report 409 and leave the order untouched.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}

	var request ChangeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + request.Status,
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		status := errorStatus(handleErr)
		return ctx.JSON(status, ErrorResponse{
			Code:    status,
			Message: "Failed to change order status: " + handleErr.Error(),
		})
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// respondWithOrder reads the order back through the query side and
// writes it with the given status code.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.OrderID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load order",
		})
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		errStatus := errorStatus(err)
		message := "Failed to load order"
		if errStatus == http.StatusNotFound {
			message = "Order not found"
		}
		return ctx.JSON(errStatus, ErrorResponse{Code: errStatus, Message: message})
	}

	response, err := toOrderResponse(row)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render order",
		})
	}

	return ctx.JSON(status, response)
}

// buildPlaceOrderCommand validates the checkout payload and assembles
// the command from domain values.
func buildPlaceOrderCommand(
	orderID kernel.OrderID,
	request CreateOrderRequest,
) (commands.PlaceOrderCommand, error) {
	items := make([]order.LineItem, 0, len(request.Items))
	for _, payload := range request.Items {
		item, err := buildLineItem(payload)
		if err != nil {
			return commands.PlaceOrderCommand{}, err
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomer(
		request.CustomerName,
		request.CustomerPhone,
		request.CustomerEmail,
	)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	fulfillment, err := buildFulfillment(request)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(orderID, items, customer, fulfillment)
}

func buildLineItem(payload OrderItemPayload) (order.LineItem, error) {
	unitPrice, err := kernel.NewPriceFromFloat(payload.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	supplements := make([]order.Supplement, 0, len(payload.Supplements))
	for _, s := range payload.Supplements {
		price, priceErr := kernel.NewPriceFromFloat(s.Price)
		if priceErr != nil {
			return order.LineItem{}, priceErr
		}
		supplement, supErr := order.NewSupplement(s.Name, price)
		if supErr != nil {
			return order.LineItem{}, supErr
		}
		supplements = append(supplements, supplement)
	}

	uniqueID := payload.UniqueID
	if uniqueID == "" {
		uniqueID = uuid.NewString()
	}

	return order.NewLineItem(
		uniqueID,
		payload.DishID,
		payload.Name,
		unitPrice,
		payload.Quantity,
		supplements,
		payload.Notes,
	)
}

func buildFulfillment(request CreateOrderRequest) (order.Fulfillment, error) {
	orderType, err := kernel.OrderTypeFromString(request.OrderType)
	if err != nil {
		return order.Fulfillment{}, err
	}

	if orderType == kernel.Delivery {
		return order.NewDeliveryFulfillment(request.DeliveryAddress, request.DeliveryNotes)
	}
	return order.NewTakeawayFulfillment(request.PickupTime)
}

// errorStatus maps application errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
