// Package http provides the inbound HTTP adapter. It exposes the
// simulation's state and operations over a small JSON API and translates
// between transport types and application commands and queries.
package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
// It is bound to a single warehouse so routes stay flat.
type Server struct {
	warehouseID kernel.ID

	// Command handlers
	submitOrderHandler   commands.SubmitOrderCommandHandler
	deliverSupplyHandler commands.DeliverSupplyCommandHandler

	// Query handlers
	getStockHandler         queries.GetStockQueryHandler
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	warehouseID kernel.ID,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	deliverSupplyHandler commands.DeliverSupplyCommandHandler,
	getStockHandler queries.GetStockQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
) *Server {
	return &Server{
		warehouseID:             warehouseID,
		submitOrderHandler:      submitOrderHandler,
		deliverSupplyHandler:    deliverSupplyHandler,
		getStockHandler:         getStockHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
	}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/stock", s.GetStock)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/orders", s.SubmitOrder)
	api.POST("/supplies", s.DeliverSupply)
}

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StockLine is one product's on-hand quantity.
type StockLine struct {
	Product  string  `json:"product"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PendingOrder is one queued order awaiting a future cycle.
type PendingOrder struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	CustomerX  int    `json:"customer_x"`
	CustomerY  int    `json:"customer_y"`
	TotalUnits int    `json:"total_units"`
	Partial    bool   `json:"partial"`
}

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerX int            `json:"customer_x"`
	CustomerY int            `json:"customer_y"`
	Items     []NewOrderItem `json:"items"`
}

// NewOrderItem is one line of a new order request.
type NewOrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewSupplyRequest is the body of POST /api/v1/supplies.
type NewSupplyRequest struct {
	SupplierID string `json:"supplier_id"`
	Amount     int    `json:"amount"`
}

// GetStock handles GET /api/v1/stock - retrieves current stock levels.
func (s *Server) GetStock(ctx echo.Context) error {
	query, err := queries.NewGetStockQuery(s.warehouseID)
	if err != nil {
		return internalError(ctx, "Failed to build stock query")
	}

	lines, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve stock")
	}

	response := make([]StockLine, len(lines))
	for i, line := range lines {
		response[i] = StockLine{
			Product:  line.Product,
			Price:    line.Price,
			Quantity: line.Quantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves the queue.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query, err := queries.NewGetPendingOrdersQuery(s.warehouseID)
	if err != nil {
		return internalError(ctx, "Failed to build pending orders query")
	}

	pending, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve pending orders")
	}

	response := make([]PendingOrder, len(pending))
	for i, o := range pending {
		response[i] = PendingOrder{
			ID:         o.ID.String(),
			Status:     o.Status,
			CustomerX:  int(o.CustomerLocation.X()),
			CustomerY:  int(o.CustomerLocation.Y()),
			TotalUnits: o.TotalUnits,
			Partial:    o.Partial,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitOrder handles POST /api/v1/orders - places a new customer order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewLocation(kernel.Coordinate(req.CustomerX), kernel.Coordinate(req.CustomerY))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	items := make([]commands.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = commands.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	orderID := kernel.NewID(kernel.TagOrder)

	cmd, err := commands.NewSubmitOrderCommand(orderID, s.warehouseID, location, items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx, "Failed to submit order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// DeliverSupply handles POST /api/v1/supplies - delivers stock directly.
func (s *Server) DeliverSupply(ctx echo.Context) error {
	var req NewSupplyRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.IDFromString(req.SupplierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeliverSupplyCommand(s.warehouseID, supplierID, req.Amount)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	delivered, err := s.deliverSupplyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to deliver supply")
	}

	return ctx.JSON(http.StatusOK, map[string]int{"delivered": delivered})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
