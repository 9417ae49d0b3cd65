package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const APIPrefix = "/api/v1"

// NewRouter builds the echo instance with every route of the service.
// gatherer backs /metrics; nil means the default registry.
func NewRouter(ctx context.Context, s *Server, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	docJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSwagger(docJSON)

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.RequestLogger())
	e.Use(s.MetricsMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix)
	api.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})

	auth := s.ActorMiddleware()

	api.GET("/vendors", s.ListVendors)
	api.POST("/vendors", s.CreateVendor, auth)
	api.GET("/vendors/:vendorId", s.GetVendor)
	api.GET("/vendors/:vendorId/menu-items", s.ListVendorMenuItems)
	api.GET("/vendors/:vendorId/analytics", s.VendorAnalytics, auth)
	api.POST("/vendors/:vendorId/menu-items", s.AddMenuItem, auth)
	api.GET("/vendors/:vendorId/reviews", s.ListVendorReviews)
	api.GET("/menu-items", s.ListMenuItems)
	api.PUT("/menu-items/:itemId/availability", s.SetMenuItemAvailability, auth)

	api.POST("/orders", s.PlaceOrder, auth)
	api.GET("/orders", s.ListOrders, auth)
	api.GET("/orders/:orderId", s.GetOrder, auth)
	api.PUT("/orders/:orderId/status", s.AdvanceOrderStatus, auth)
	api.PUT("/orders/:orderId/cancel", s.CancelOrder, auth)
	api.GET("/orders/:orderId/payments", s.ListOrderPayments, auth)

	api.POST("/payments/initiate", s.InitiatePayment, auth)
	api.POST("/payments/success", s.ReportPaymentSuccess, auth)
	api.POST("/payments/failure", s.ReportPaymentFailure, auth)
	api.POST("/payments/retry", s.RetryPayment, auth)
	api.POST("/payments/refund", s.RefundPayment, auth)

	api.GET("/delivery-agents", s.ListDeliveryAgents, auth)
	api.POST("/delivery-agents", s.CreateDeliveryAgent, auth)
	api.GET("/delivery-agents/:agentId", s.GetDeliveryAgent, auth)
	api.DELETE("/delivery-agents/:agentId", s.DeleteDeliveryAgent, auth)
	api.PUT("/delivery-agents/:agentId/location", s.UpdateDeliveryAgentLocation, auth)
	api.POST("/delivery-agents/:agentId/assign", s.AssignDelivery, auth)
	api.POST("/delivery-agents/:agentId/accept-delivery", s.AcceptDelivery, auth)
	api.PUT("/delivery-agents/:agentId/update-status", s.UpdateDeliveryStatus, auth)
	api.GET("/delivery-agents/:agentId/history", s.DeliveryHistory, auth)

	api.POST("/reviews", s.SubmitReview, auth)
	api.PUT("/reviews/:reviewId", s.UpdateReview, auth)
	api.DELETE("/reviews/:reviewId", s.DeleteReview, auth)

	return e, nil
}
