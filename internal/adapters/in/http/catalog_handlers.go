package http

import (
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateVendor handles POST /api/v1/vendors.
func (s *Server) CreateVendor(c echo.Context) error {
	var body NewVendor
	if err := c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	location, err := body.Location.toPoint()
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewCreateVendorCommand(actorOf(c), body.Name, body.Description, location)
	if err != nil {
		return s.writeError(c, err)
	}

	vendor, err := s.commands.CreateVendor.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, vendorOf(vendor))
}

// AddMenuItem handles POST /api/v1/vendors/{vendorId}/menu-items.
func (s *Server) AddMenuItem(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.writeError(c, err)
	}

	var body NewMenuItem
	if err = c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}

	price, err := kernel.NewMoney(body.Price)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewAddMenuItemCommand(actorOf(c), vendorID, body.Name, body.Description, price)
	if err != nil {
		return s.writeError(c, err)
	}

	item, err := s.commands.AddMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, menuItemOf(item))
}

// SetMenuItemAvailability handles PUT /api/v1/menu-items/{itemId}/availability.
func (s *Server) SetMenuItemAvailability(c echo.Context) error {
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return s.writeError(c, err)
	}

	var body Availability
	if err = c.Bind(&body); err != nil {
		return s.writeError(c, badRequest("Invalid request body", err))
	}
	if body.Available == nil {
		return s.writeError(c, badRequest("Availability must be a boolean value", nil))
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(actorOf(c), itemID, *body.Available)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.commands.SetMenuItemAvailable.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListVendors handles GET /api/v1/vendors. It is public.
func (s *Server) ListVendors(c echo.Context) error {
	search, err := queryString(c, "search")
	if err != nil {
		return s.writeError(c, err)
	}
	minRating, err := queryFloat(c, "rating")
	if err != nil {
		return s.writeError(c, err)
	}
	page, err := queryPage(c)
	if err != nil {
		return s.writeError(c, err)
	}

	var text string
	if search != nil {
		text = *search
	}

	query, err := queries.NewListVendorsQuery(text, minRating, page)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.ListVendors.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, vendorPageOf(result))
}

// GetVendor handles GET /api/v1/vendors/{vendorId}. The vendor comes with its menu.
func (s *Server) GetVendor(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetVendorQuery(vendorID)
	if err != nil {
		return s.writeError(c, err)
	}

	view, err := s.queries.GetVendor.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, vendorViewOf(view))
}

// ListVendorMenuItems handles GET /api/v1/vendors/{vendorId}/menu-items.
func (s *Server) ListVendorMenuItems(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.writeError(c, err)
	}

	return s.listMenuItems(c, &vendorID)
}

// ListMenuItems handles GET /api/v1/menu-items with an optional vendorId filter.
func (s *Server) ListMenuItems(c echo.Context) error {
	vendorID, err := queryUUID(c, "vendorId")
	if err != nil {
		return s.writeError(c, err)
	}

	return s.listMenuItems(c, vendorID)
}

func (s *Server) listMenuItems(c echo.Context, vendorID *kernel.UUID) error {
	available, err := queryBool(c, "availability")
	if err != nil {
		return s.writeError(c, err)
	}
	search, err := queryString(c, "search")
	if err != nil {
		return s.writeError(c, err)
	}
	page, err := queryPage(c)
	if err != nil {
		return s.writeError(c, err)
	}

	filter := queries.MenuItemsFilter{VendorID: vendorID, Available: available}
	if search != nil {
		filter.Search = *search
	}

	query, err := queries.NewListMenuItemsQuery(filter, page)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.ListMenuItems.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, menuItemPageOf(result))
}

// VendorAnalytics handles GET /api/v1/vendors/{vendorId}/analytics.
func (s *Server) VendorAnalytics(c echo.Context) error {
	vendorID, err := pathUUID(c, "vendorId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewVendorAnalyticsQuery(actorOf(c), vendorID)
	if err != nil {
		return s.writeError(c, err)
	}

	result, err := s.queries.VendorAnalytics.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, vendorAnalyticsOf(result))
}
