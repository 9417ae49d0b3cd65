package http

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/metrics"
)

// Handler runs a use case that returns nothing but an error.
type Handler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a use case that returns a value.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

type CommandHandlers struct {
	CreateVendor         ResultHandler[commands.CreateVendorCommand, *catalog.Vendor]
	AddMenuItem          ResultHandler[commands.AddMenuItemCommand, *catalog.MenuItem]
	SetMenuItemAvailable Handler[commands.SetMenuItemAvailabilityCommand]
	PlaceOrder           ResultHandler[commands.PlaceOrderCommand, *order.Order]
	AdvanceOrderStatus   Handler[commands.AdvanceOrderStatusCommand]
	CancelOrder          Handler[commands.CancelOrderCommand]
	InitiatePayment      ResultHandler[commands.InitiatePaymentCommand, *payment.Payment]
	ReportPaymentSuccess Handler[commands.ReportPaymentSuccessCommand]
	ReportPaymentFailure Handler[commands.ReportPaymentFailureCommand]
	RetryPayment         ResultHandler[commands.RetryPaymentCommand, *payment.Payment]
	RefundPayment        Handler[commands.RefundPaymentCommand]
	CreateAgent          ResultHandler[commands.CreateAgentCommand, *agent.DeliveryAgent]
	DeleteAgent          Handler[commands.DeleteAgentCommand]
	UpdateAgentLocation  Handler[commands.UpdateAgentLocationCommand]
	AssignDelivery       Handler[commands.AssignDeliveryCommand]
	AcceptDelivery       Handler[commands.AcceptDeliveryCommand]
	UpdateDeliveryStatus Handler[commands.UpdateDeliveryStatusCommand]
	SubmitReview         ResultHandler[commands.SubmitReviewCommand, *review.Review]
	UpdateReview         Handler[commands.UpdateReviewCommand]
	DeleteReview         Handler[commands.DeleteReviewCommand]
}

type QueryHandlers struct {
	GetOrder          ResultHandler[queries.GetOrderQuery, queries.OrderView]
	ListOrders        ResultHandler[queries.ListOrdersQuery, queries.OrderPage]
	ListOrderPayments ResultHandler[queries.ListOrderPaymentsQuery, []queries.PaymentView]
	DeliveryHistory   ResultHandler[queries.DeliveryHistoryQuery, queries.OrderPage]
	ListVendorReviews ResultHandler[queries.ListVendorReviewsQuery, queries.ReviewPage]
	ListVendors       ResultHandler[queries.ListVendorsQuery, queries.VendorPage]
	GetVendor         ResultHandler[queries.GetVendorQuery, queries.VendorView]
	ListMenuItems     ResultHandler[queries.ListMenuItemsQuery, queries.MenuItemPage]
	VendorAnalytics   ResultHandler[queries.VendorAnalyticsQuery, queries.VendorAnalytics]
	ListAgents        ResultHandler[queries.ListAgentsQuery, queries.AgentPage]
	GetAgent          ResultHandler[queries.GetAgentQuery, queries.AgentView]
}

// Server adapts HTTP requests to application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewServer(cmds CommandHandlers, qs QueryHandlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}
