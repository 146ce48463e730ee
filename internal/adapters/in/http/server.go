// Package http provides the inbound HTTP adapter. It translates JSON
// requests into application commands and queries, and maps domain errors
// onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/model/purchaseorder"
	"warehouse/internal/core/domain/model/slot"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPalletHandler  commands.CreatePalletCommandHandler
	updatePalletHandler  commands.UpdatePalletCommandHandler
	deletePalletHandler  commands.DeletePalletCommandHandler
	createOrderHandler   commands.CreateOrderCommandHandler
	updateOrderHandler   commands.UpdateOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	createPOHandler      commands.CreatePurchaseOrderCommandHandler
	advancePOHandler     commands.AdvancePurchaseOrderStatusCommandHandler
	attachPalletHandler  commands.AttachPalletCommandHandler

	// Query handlers
	getStoredPalletsHandler queries.GetStoredPalletsQueryHandler
	getOrdersByUserHandler  queries.GetOrdersByUserQueryHandler
	getPOsByStatusHandler   queries.GetPurchaseOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPalletHandler commands.CreatePalletCommandHandler,
	updatePalletHandler commands.UpdatePalletCommandHandler,
	deletePalletHandler commands.DeletePalletCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createPOHandler commands.CreatePurchaseOrderCommandHandler,
	advancePOHandler commands.AdvancePurchaseOrderStatusCommandHandler,
	attachPalletHandler commands.AttachPalletCommandHandler,
	getStoredPalletsHandler queries.GetStoredPalletsQueryHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getPOsByStatusHandler queries.GetPurchaseOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createPalletHandler:     createPalletHandler,
		updatePalletHandler:     updatePalletHandler,
		deletePalletHandler:     deletePalletHandler,
		createOrderHandler:      createOrderHandler,
		updateOrderHandler:      updateOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		createPOHandler:         createPOHandler,
		advancePOHandler:        advancePOHandler,
		attachPalletHandler:     attachPalletHandler,
		getStoredPalletsHandler: getStoredPalletsHandler,
		getOrdersByUserHandler:  getOrdersByUserHandler,
		getPOsByStatusHandler:   getPOsByStatusHandler,
	}
}

// RegisterRoutes binds all warehouse endpoints on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/pallets/stored", s.GetStoredPallets)
	api.POST("/pallets", s.CreatePallet)
	api.PUT("/pallets/:palletID", s.UpdatePallet)
	api.DELETE("/pallets/:palletID", s.DeletePallet)

	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:orderID", s.UpdateOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.GET("/users/:userID/orders", s.GetOrdersByUser)

	api.GET("/purchase-orders", s.GetPurchaseOrdersByStatus)
	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.POST("/purchase-orders/:purchaseOrderID/advance", s.AdvancePurchaseOrderStatus)
	api.POST("/purchase-orders/:purchaseOrderID/pallets", s.AttachPallet)
}

// ErrorResponse is the JSON error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested order line.
type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PalletRequest is the body for creating or updating a pallet.
type PalletRequest struct {
	Name        string  `json:"name"`
	ProductID   string  `json:"productId"`
	Quantity    int     `json:"quantity"`
	MaxCapacity int     `json:"maxCapacity"`
	Status      string  `json:"status"`
	SlotID      *string `json:"slotId,omitempty"`
}

// OrderRequest is the body for creating or updating an order.
type OrderRequest struct {
	UserID          string             `json:"userId,omitempty"`
	CustomerName    string             `json:"customerName"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentLast4    string             `json:"paymentLast4"`
	Status          string             `json:"status,omitempty"`
	Lines           []OrderLineRequest `json:"lines"`
}

// PurchaseOrderLineRequest is one requested purchase order line.
type PurchaseOrderLineRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	ExpectedPallets int    `json:"expectedPallets"`
}

// PurchaseOrderRequest is the body for opening a purchase order.
type PurchaseOrderRequest struct {
	SupplierName    string                     `json:"supplierName"`
	ExpectedArrival time.Time                  `json:"expectedArrival"`
	Lines           []PurchaseOrderLineRequest `json:"lines"`
}

// AdvanceStatusRequest is the body for advancing a purchase order.
type AdvanceStatusRequest struct {
	Target string `json:"target"`
}

// AttachPalletRequest is the body for attaching an inbound pallet.
type AttachPalletRequest struct {
	Name        string `json:"name"`
	ProductID   string `json:"productId"`
	Quantity    int    `json:"quantity"`
	MaxCapacity int    `json:"maxCapacity"`
}

// StoredPalletResponse is one row of the stored-pallet inventory view.
type StoredPalletResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SlotID    string `json:"slotId"`
	SlotName  string `json:"slotName"`
}

// UserOrderResponse is one order in a customer's history.
type UserOrderResponse struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Status       string `json:"status"`
	ItemCount    int    `json:"itemCount"`
	TotalCents   int64  `json:"totalCents"`
}

// PurchaseOrderResponse is one purchase order on the workflow board.
type PurchaseOrderResponse struct {
	ID              string    `json:"id"`
	SupplierName    string    `json:"supplierName"`
	ExpectedArrival time.Time `json:"expectedArrival"`
	TotalCents      int64     `json:"totalCents"`
	PalletCount     int       `json:"palletCount"`
}

// CreatedResponse echoes the server-assigned identifier on creation.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreatePallet handles POST /api/v1/pallets.
func (s *Server) CreatePallet(ctx echo.Context) error {
	var req PalletRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	status, err := pallet.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	slotID, err := parseOptionalUUID(req.SlotID)
	if err != nil {
		return badRequest(ctx, "Invalid slot id: "+err.Error())
	}

	palletID := kernel.NewUUID()
	cmd, err := commands.NewCreatePalletCommand(
		palletID, req.Name, productID, req.Quantity, req.MaxCapacity, status, slotID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid pallet data: "+err.Error())
	}

	if err := s.createPalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: palletID.String()})
}

// UpdatePallet handles PUT /api/v1/pallets/:palletID.
func (s *Server) UpdatePallet(ctx echo.Context) error {
	palletID, err := kernel.UUIDFromString(ctx.Param("palletID"))
	if err != nil {
		return badRequest(ctx, "Invalid pallet id: "+err.Error())
	}

	var req PalletRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := pallet.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	slotID, err := parseOptionalUUID(req.SlotID)
	if err != nil {
		return badRequest(ctx, "Invalid slot id: "+err.Error())
	}

	cmd, err := commands.NewUpdatePalletCommand(
		palletID, req.Name, req.Quantity, req.MaxCapacity, status, slotID,
	)
	if err != nil {
		return badRequest(ctx, "Invalid pallet data: "+err.Error())
	}

	if err := s.updatePalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeletePallet handles DELETE /api/v1/pallets/:palletID.
func (s *Server) DeletePallet(ctx echo.Context) error {
	palletID, err := kernel.UUIDFromString(ctx.Param("palletID"))
	if err != nil {
		return badRequest(ctx, "Invalid pallet id: "+err.Error())
	}

	cmd, err := commands.NewDeletePalletCommand(palletID)
	if err != nil {
		return badRequest(ctx, "Invalid pallet data: "+err.Error())
	}

	if err := s.deletePalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStoredPallets handles GET /api/v1/pallets/stored.
func (s *Server) GetStoredPallets(ctx echo.Context) error {
	query := queries.NewGetStoredPalletsQuery()

	pallets, err := s.getStoredPalletsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve stored pallets")
	}

	response := make([]StoredPalletResponse, len(pallets))
	for i, p := range pallets {
		response[i] = StoredPalletResponse{
			ID:        p.ID.String(),
			Name:      p.Name,
			ProductID: p.ProductID.String(),
			Quantity:  p.Quantity,
			SlotID:    p.SlotID.String(),
			SlotName:  p.SlotName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	lines, err := toOrderLineInputs(req.Lines)
	if err != nil {
		return badRequest(ctx, "Invalid order lines: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, userID, req.CustomerName, req.ShippingAddress, req.PaymentLast4, lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// UpdateOrder handles PUT /api/v1/orders/:orderID.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	lines, err := toOrderLineInputs(req.Lines)
	if err != nil {
		return badRequest(ctx, "Invalid order lines: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.CustomerName, req.ShippingAddress, req.PaymentLast4, status, lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersByUser handles GET /api/v1/users/:userID/orders.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userID"))
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]UserOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = UserOrderResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			Status:       o.Status,
			ItemCount:    o.ItemCount,
			TotalCents:   o.TotalCents,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var req PurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.PurchaseOrderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return badRequest(ctx, "Invalid product id: "+err.Error())
		}
		lines = append(lines, commands.PurchaseOrderLineInput{
			ProductID:       productID,
			Quantity:        line.Quantity,
			ExpectedPallets: line.ExpectedPallets,
		})
	}

	purchaseOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(
		purchaseOrderID, req.SupplierName, req.ExpectedArrival, lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid purchase order data: "+err.Error())
	}

	if err := s.createPOHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: purchaseOrderID.String()})
}

// AdvancePurchaseOrderStatus handles POST /api/v1/purchase-orders/:purchaseOrderID/advance.
func (s *Server) AdvancePurchaseOrderStatus(ctx echo.Context) error {
	purchaseOrderID, err := kernel.UUIDFromString(ctx.Param("purchaseOrderID"))
	if err != nil {
		return badRequest(ctx, "Invalid purchase order id: "+err.Error())
	}

	var req AdvanceStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := purchaseorder.StatusFromString(req.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+err.Error())
	}

	cmd, err := commands.NewAdvancePurchaseOrderStatusCommand(purchaseOrderID, target)
	if err != nil {
		return badRequest(ctx, "Invalid purchase order data: "+err.Error())
	}

	if err := s.advancePOHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachPallet handles POST /api/v1/purchase-orders/:purchaseOrderID/pallets.
func (s *Server) AttachPallet(ctx echo.Context) error {
	purchaseOrderID, err := kernel.UUIDFromString(ctx.Param("purchaseOrderID"))
	if err != nil {
		return badRequest(ctx, "Invalid purchase order id: "+err.Error())
	}

	var req AttachPalletRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	palletID := kernel.NewUUID()
	cmd, err := commands.NewAttachPalletCommand(
		purchaseOrderID, palletID, req.Name, productID, req.Quantity, req.MaxCapacity,
	)
	if err != nil {
		return badRequest(ctx, "Invalid pallet data: "+err.Error())
	}

	if err := s.attachPalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: palletID.String()})
}

// GetPurchaseOrdersByStatus handles GET /api/v1/purchase-orders?status=...
func (s *Server) GetPurchaseOrdersByStatus(ctx echo.Context) error {
	status, err := purchaseorder.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	query, err := queries.NewGetPurchaseOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	purchaseOrders, err := s.getPOsByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve purchase orders")
	}

	response := make([]PurchaseOrderResponse, len(purchaseOrders))
	for i, po := range purchaseOrders {
		response[i] = PurchaseOrderResponse{
			ID:              po.ID.String(),
			SupplierName:    po.SupplierName,
			ExpectedArrival: po.ExpectedArrival,
			TotalCents:      po.TotalCents,
			PalletCount:     po.PalletCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps application and domain errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, slot.ErrSlotAlreadyOccupied):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
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

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toOrderLineInputs(lines []OrderLineRequest) ([]commands.OrderLineInput, error) {
	inputs := make([]commands.OrderLineInput, 0, len(lines))
	for _, line := range lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.OrderLineInput{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}
	return inputs, nil
}
