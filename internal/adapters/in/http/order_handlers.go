package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	lines := make([]services.CartLine, 0, len(body.Items))
	var lineErrs []error
	for _, item := range body.Items {
		id, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			lineErrs = append(lineErrs, err)
			continue
		}
		lines = append(lines, services.CartLine{MenuItemID: id, Quantity: item.Quantity, Note: item.Note})
	}
	if err := errors.Join(lineErrs...); err != nil {
		return s.writeError(c, err)
	}

	a := body.DeliveryAddress
	address, err := kernel.NewAddress(a.Label, a.Line1, a.Line2, a.City, a.Zip)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(actorOf(c), lines, address)
	if err != nil {
		return s.writeError(c, err)
	}

	placed, err := s.commands.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, orderOf(placed))
}

// ListOrders handles GET /api/v1/orders. Results are scoped to the actor.
func (s *Server) ListOrders(c echo.Context) error {
	var filter queries.OrdersFilter

	status, err := queryString(c, "status")
	if err != nil {
		return s.writeError(c, err)
	}
	if status != nil {
		st, parseErr := order.ParseStatus(*status)
		if parseErr != nil {
			return s.writeError(c, parseErr)
		}
		filter.Status = &st
	}

	if filter.VendorID, err = queryUUID(c, "vendorId"); err != nil {
		return s.writeError(c, err)
	}
	if filter.CustomerID, err = queryUUID(c, "customerId"); err != nil {
		return s.writeError(c, err)
	}

	page, err := queryPage(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewListOrdersQuery(actorOf(c), filter, page)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderPageOf(result))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderQuery(actorOf(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.queries.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderViewOf(view))
}

// AdvanceOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	status, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(actorOf(c), orderID, status)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.AdvanceOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actorOf(c), orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
