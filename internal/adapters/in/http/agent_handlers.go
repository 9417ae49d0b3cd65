package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateDeliveryAgent handles POST /api/v1/delivery-agents.
func (s *Server) CreateDeliveryAgent(c echo.Context) error {
	var body NewDeliveryAgent
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	userID, err := kernel.UUIDFromString(body.UserID)
	if err != nil {
		return s.writeError(c, err)
	}
	location, err := body.CurrentLocation.toPoint()
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateAgentCommand(actorOf(c), userID, body.Name, body.Contact, location)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.commands.CreateAgent.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, deliveryAgentOf(created))
}

// DeleteDeliveryAgent handles DELETE /api/v1/delivery-agents/{agentId}.
func (s *Server) DeleteDeliveryAgent(c echo.Context) error {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteAgentCommand(actorOf(c), agentID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.DeleteAgent.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateDeliveryAgentLocation handles PUT /api/v1/delivery-agents/{agentId}/location.
func (s *Server) UpdateDeliveryAgentLocation(c echo.Context) error {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return s.writeError(c, err)
	}

	var body Location
	if err = c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	location, err := kernel.NewPoint(body.Longitude, body.Latitude)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateAgentLocationCommand(actorOf(c), agentID, location)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.UpdateAgentLocation.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignDelivery handles POST /api/v1/delivery-agents/{agentId}/assign.
func (s *Server) AssignDelivery(c echo.Context) error {
	agentID, orderID, err := s.agentAndOrder(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(actorOf(c), agentID, orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.AssignDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AcceptDelivery handles POST /api/v1/delivery-agents/{agentId}/accept-delivery.
func (s *Server) AcceptDelivery(c echo.Context) error {
	agentID, orderID, err := s.agentAndOrder(c)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(actorOf(c), agentID, orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.AcceptDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) agentAndOrder(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var body OrderRef
	if err = c.Bind(&body); err != nil {
		return kernel.UUID{}, kernel.UUID{}, badRequest("Invalid request body", err)
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return agentID, orderID, nil
}

// UpdateDeliveryStatus handles PUT /api/v1/delivery-agents/{agentId}/update-status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return s.writeError(c, err)
	}

	var body DeliveryUpdate
	if err = c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	orderID, err := kernel.UUIDFromString(body.OrderID)
	if err != nil {
		return s.writeError(c, err)
	}
	status, err := order.ParseDeliveryStatus(body.Status)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(actorOf(c), agentID, orderID, status)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeliveryHistory handles GET /api/v1/delivery-agents/{agentId}/history.
func (s *Server) DeliveryHistory(c echo.Context) error {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return s.writeError(c, err)
	}

	page, err := queryPage(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewDeliveryHistoryQuery(actorOf(c), agentID, page)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.DeliveryHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, orderPageOf(result))
}

// ListDeliveryAgents handles GET /api/v1/delivery-agents.
func (s *Server) ListDeliveryAgents(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewListAgentsQuery(actorOf(c), page)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.ListAgents.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, agentPageOf(result))
}

// GetDeliveryAgent handles GET /api/v1/delivery-agents/{agentId}.
func (s *Server) GetDeliveryAgent(c echo.Context) error {
	agentID, err := pathUUID(c, "agentId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetAgentQuery(actorOf(c), agentID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.queries.GetAgent.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, agentViewOf(view))
}
