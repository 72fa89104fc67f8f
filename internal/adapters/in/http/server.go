// Package http is the inbound HTTP adapter. It translates REST requests
// into commands and queries, and application errors into status codes.
package http

import (
	"net/http"
	"strconv"

	"sokoni/internal/core/application/usecases/commands"
	"sokoni/internal/core/application/usecases/queries"
	"sokoni/internal/core/domain/model/delivery"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/core/domain/model/rider"
	"sokoni/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the marketplace use cases to the REST API.
type Server struct {
	// Command handlers
	addCartItemHandler          commands.AddCartItemCommandHandler
	updateCartItemHandler       commands.UpdateCartItemCommandHandler
	removeCartItemHandler       commands.RemoveCartItemCommandHandler
	clearCartHandler            commands.ClearCartCommandHandler
	checkoutHandler             commands.CheckoutCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	registerRiderHandler        commands.RegisterRiderCommandHandler
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler
	acceptDeliveryHandler       commands.AcceptDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler

	// Query handlers
	getCartHandler                queries.GetCartQueryHandler
	getOrderHandler               queries.GetOrderQueryHandler
	getOrdersHandler              queries.GetOrdersQueryHandler
	getProductsHandler            queries.GetProductsQueryHandler
	getRiderStatsHandler          queries.GetRiderStatsQueryHandler
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler
	getActiveDeliveryHandler      queries.GetActiveDeliveryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	registerRiderHandler commands.RegisterRiderCommandHandler,
	setRiderAvailabilityHandler commands.SetRiderAvailabilityCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getRiderStatsHandler queries.GetRiderStatsQueryHandler,
	getAvailableDeliveriesHandler queries.GetAvailableDeliveriesQueryHandler,
	getActiveDeliveryHandler queries.GetActiveDeliveryQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:            addCartItemHandler,
		updateCartItemHandler:         updateCartItemHandler,
		removeCartItemHandler:         removeCartItemHandler,
		clearCartHandler:              clearCartHandler,
		checkoutHandler:               checkoutHandler,
		updateOrderStatusHandler:      updateOrderStatusHandler,
		cancelOrderHandler:            cancelOrderHandler,
		registerRiderHandler:          registerRiderHandler,
		setRiderAvailabilityHandler:   setRiderAvailabilityHandler,
		acceptDeliveryHandler:         acceptDeliveryHandler,
		updateDeliveryStatusHandler:   updateDeliveryStatusHandler,
		getCartHandler:                getCartHandler,
		getOrderHandler:               getOrderHandler,
		getOrdersHandler:              getOrdersHandler,
		getProductsHandler:            getProductsHandler,
		getRiderStatsHandler:          getRiderStatsHandler,
		getAvailableDeliveriesHandler: getAvailableDeliveriesHandler,
		getActiveDeliveryHandler:      getActiveDeliveryHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	v1 := e.Group("/api/v1", middleware...)

	v1.GET("/cart", s.GetCart)
	v1.POST("/cart/items", s.AddCartItem)
	v1.PATCH("/cart/items/:productId", s.UpdateCartItem)
	v1.DELETE("/cart/items/:productId", s.RemoveCartItem)
	v1.DELETE("/cart", s.ClearCart)

	v1.POST("/orders", s.Checkout)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)

	v1.GET("/products", s.GetProducts)

	v1.POST("/riders", s.RegisterRider)
	v1.PATCH("/riders/availability", s.SetRiderAvailability)
	v1.GET("/riders/stats", s.GetRiderStats)

	v1.GET("/deliveries/available", s.GetAvailableDeliveries)
	v1.GET("/deliveries/active", s.GetActiveDelivery)
	v1.POST("/deliveries/:id/accept", s.AcceptDelivery)
	v1.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCartQuery(a.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(view))
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("product_id", err))
	}

	cmd, err := commands.NewAddCartItemCommand(a.ID, productID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:productId.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
	}

	var req UpdateCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewUpdateCartItemCommand(a.ID, productID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
	}

	cmd, err := commands.NewRemoveCartItemCommand(a.ID, productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClearCartCommand(a.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders. The cart is split per shop, so a
// single checkout may produce several orders.
func (s *Server) Checkout(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCheckoutCommand(a.ID, req.DeliveryAddress, req.Phone, req.Notes, req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	orderIDs, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := CheckoutResponse{OrderIDs: make([]string, len(orderIDs))}
	for i, id := range orderIDs {
		response.OrderIDs[i] = id.String()
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrders handles GET /api/v1/orders. The listing is scoped by the
// actor's role; ?status= narrows it further.
func (s *Server) GetOrders(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(a.ID, a.Role, statusFilter)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	if _, err := actorFrom(ctx); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(detail))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, a.ID, a.Role, status, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleCustomer {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "cancel an order"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, a.ID, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products. No actor is required; the
// catalog is public. ?shop_id= narrows to one shop.
func (s *Server) GetProducts(ctx echo.Context) error {
	var shopID *kernel.UUID
	if raw := ctx.QueryParam("shop_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("shop_id", err))
		}
		shopID = &id
	}

	query, err := queries.NewGetProductsQuery(shopID)
	if err != nil {
		return writeError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProductResponses(products))
}

// RegisterRider handles POST /api/v1/riders.
func (s *Server) RegisterRider(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "register as a rider"))
	}

	var req RegisterRiderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	vehicleType, err := rider.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterRiderCommand(a.ID, vehicleType, req.VehiclePlate, req.LicenseNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerRiderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetRiderAvailability handles PATCH /api/v1/riders/availability.
func (s *Server) SetRiderAvailability(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "set rider availability"))
	}

	var req SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewSetRiderAvailabilityCommand(a.ID, req.Available)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setRiderAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderStats handles GET /api/v1/riders/stats.
func (s *Server) GetRiderStats(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "view rider stats"))
	}

	query, err := queries.NewGetRiderStatsQuery(a.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.getRiderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toRiderStatsResponse(stats))
}

// GetAvailableDeliveries handles GET /api/v1/deliveries/available.
func (s *Server) GetAvailableDeliveries(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "browse available deliveries"))
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
		}
	}

	query, err := queries.NewGetAvailableDeliveriesQuery(limit)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getAvailableDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAvailableDeliveryResponses(deliveries))
}

// GetActiveDelivery handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDelivery(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "view the active delivery"))
	}

	query, err := queries.NewGetActiveDeliveryQuery(a.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	active, err := s.getActiveDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toActiveDeliveryResponse(active))
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept. The claim is
// atomic; losing riders get a conflict response.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "claim a delivery"))
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, a.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	a, err := actorFrom(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if a.Role != kernel.RoleRider {
		return writeError(ctx, errs.NewActorNotAllowedError(a.Role.String(), "update a delivery"))
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req UpdateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, a.ID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
